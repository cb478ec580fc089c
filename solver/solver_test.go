package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/tribool"
)

func TestReserveVarsMakesInternalNumberingMatchDeclared(t *testing.T) {
	s := New(config.New())
	s.ReserveVars(3)

	// Add a clause that references variables out of ascending order; without
	// ReserveVars, newVar's lazy first-appearance numbering would assign
	// internal index 0 to declared variable 3, not declared variable 1.
	require.True(t, s.AddClause([]int{3, 1, 2}))
	require.True(t, s.Simplify())

	require.Equal(t, 3, s.NVars())
	for declared := 0; declared < 3; declared++ {
		require.Equal(t, tribool.Undef, s.Value(declared))
	}
}

func TestValueOutOfRangeReturnsUndef(t *testing.T) {
	s := New(config.New())
	s.ReserveVars(1)

	require.Equal(t, tribool.Undef, s.Value(-1))
	require.Equal(t, tribool.Undef, s.Value(5))
}
