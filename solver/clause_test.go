package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/lit"
	"github.com/ericr/backdoor/tribool"
)

func TestDetectClauseTrue(t *testing.T) {
	s := New(config.New())

	lits := []lit.Lit{lit.New(0, false)}
	addLits(s, lits)
	s.assigns[0] = tribool.True

	ok, ref := s.newClause(lits, false)
	require.True(t, ok)
	require.Equal(t, RefUndef, ref)
}

func TestDetectClauseTautology(t *testing.T) {
	s := New(config.New())

	lits := []lit.Lit{lit.New(0, false), lit.New(0, true)}
	addLits(s, lits)

	ok, ref := s.newClause(lits, false)
	require.True(t, ok)
	require.Equal(t, RefUndef, ref)
}

func TestDetectClauseEmpty(t *testing.T) {
	s := New(config.New())

	ok, _ := s.newClause([]lit.Lit{}, false)
	require.False(t, ok)
}

func TestDetectClauseFalseLits(t *testing.T) {
	s := New(config.New())

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, true)}
	addLits(s, lits)
	s.assigns[1] = tribool.False

	_, ref := s.newClause(lits, false)
	require.NotEqual(t, RefUndef, ref)
	require.Len(t, s.clause(ref).lits, 2)
}

func TestDetectClauseDuplicates(t *testing.T) {
	s := New(config.New())

	lits := []lit.Lit{lit.New(0, false), lit.New(0, false), lit.New(1, true)}
	addLits(s, lits)

	_, ref := s.newClause(lits, false)
	require.NotEqual(t, RefUndef, ref)
	require.Len(t, s.clause(ref).lits, 2)
}

func TestClauseLockedAndRemove(t *testing.T) {
	s := New(config.New())

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false)}
	addLits(s, lits)

	_, ref := s.newClause(lits, false)
	require.NotEqual(t, RefUndef, ref)

	s.reason[0] = ref
	require.True(t, s.clauseLocked(ref))

	s.clauseRemove(ref)
	require.True(t, s.clause(ref).mark)
}

func addLits(s *Solver, lits []lit.Lit) {
	for _, l := range lits {
		s.newVar(l)
	}
}
