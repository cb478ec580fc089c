package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/config"
)

// buildTwoVarFormula encodes (x1 | x2) & (-x1 | -x2) and returns the
// solver's internal 0-based indices for x1 and x2.
func buildTwoVarFormula(t *testing.T) (*Solver, []int) {
	t.Helper()

	s := New(config.New())
	require.True(t, s.AddClause([]int{1, 2}))
	require.True(t, s.AddClause([]int{-1, -2}))
	require.True(t, s.Simplify())

	return s, []int{0, 1}
}

func TestEnumerateBackdoorMatchesOracle(t *testing.T) {
	s, vars := buildTwoVarFormula(t)

	got := s.EnumerateBackdoor(vars, -1)
	require.EqualValues(t, 2, got.Hard)

	want := s.EnumerateBackdoorOracle(vars, -1)
	require.Equal(t, want.Hard, got.Hard)
}

func TestEnumerateBackdoorLimitCapsCubes(t *testing.T) {
	s, vars := buildTwoVarFormula(t)

	got := s.EnumerateBackdoor(vars, 1)
	require.EqualValues(t, 2, got.Hard)
	require.Len(t, got.Cubes, 1)
}

func TestEnumerateBackdoorEmptySet(t *testing.T) {
	s, _ := buildTwoVarFormula(t)

	got := s.EnumerateBackdoor(nil, -1)
	require.EqualValues(t, 1, got.Hard)
	require.Equal(t, [][]bool{{}}, got.Cubes)
}

// TestEnumerateBackdoorOutOfOrderDeclaration pins down the fix for a formula
// whose first clause references its variables out of ascending declared
// order: ReserveVars must be called first so that declared 0-based variable
// ids passed into EnumerateBackdoor agree with the solver's internal
// numbering. Without it, vars []int{0, 1} would actually reach declared
// variables 2 and 1.
func TestEnumerateBackdoorOutOfOrderDeclaration(t *testing.T) {
	s := New(config.New())
	s.ReserveVars(2)
	require.True(t, s.AddClause([]int{2, 1}))
	require.True(t, s.AddClause([]int{-2, -1}))
	require.True(t, s.Simplify())

	got := s.EnumerateBackdoor([]int{0, 1}, -1)
	require.EqualValues(t, 2, got.Hard)
}

func TestEnumerateBackdoorRejectsOutOfRangeVars(t *testing.T) {
	s, _ := buildTwoVarFormula(t)

	got := s.EnumerateBackdoor([]int{0, 99}, -1)
	require.Zero(t, got.Hard)
	require.Empty(t, got.Cubes)
}
