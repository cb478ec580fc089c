package ea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/solver"
)

// buildTwoVarFormula encodes (x1 | x2) & (-x1 | -x2); its 0-based internal
// variables are 0 and 1, and exactly 2 of the 4 assignments are hard.
func buildTwoVarFormula(t *testing.T) *solver.Solver {
	t.Helper()

	s := solver.New(config.New())
	require.True(t, s.AddClause([]int{1, 2}))
	require.True(t, s.AddClause([]int{-1, -2}))
	require.True(t, s.Simplify())

	return s
}

func TestEvaluateEmptySetSortsLast(t *testing.T) {
	got := Evaluate(nil, nil)

	require.True(t, math.IsInf(got.Score, 1))
	require.Zero(t, got.Rho)
	require.EqualValues(t, 1, got.Hard)
}

func TestEvaluateComputesRhoAndScore(t *testing.T) {
	s := buildTwoVarFormula(t)

	got := Evaluate(s, []int{0, 1})

	require.EqualValues(t, 2, got.Hard)
	require.InDelta(t, 0.5, got.Rho, 1e-9)
	require.InDelta(t, 0.5, got.Score, 1e-9)
}

func TestFitnessLessAndLessOrEqual(t *testing.T) {
	better := Fitness{Score: 0.1}
	worse := Fitness{Score: 0.9}

	require.True(t, better.Less(worse))
	require.False(t, worse.Less(better))
	require.True(t, better.LessOrEqual(Fitness{Score: 0.1}))
}
