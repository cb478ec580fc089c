package ea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIntervals(t *testing.T) {
	got, err := ParseIntervals("1,3-5,9")
	require.NoError(t, err)
	require.Equal(t, map[int]bool{1: true, 3: true, 4: true, 5: true, 9: true}, got)
}

func TestParseIntervalsReversedBounds(t *testing.T) {
	got, err := ParseIntervals("5-3")
	require.NoError(t, err)
	require.Equal(t, map[int]bool{3: true, 4: true, 5: true}, got)
}

func TestParseIntervalsEmpty(t *testing.T) {
	got, err := ParseIntervals("")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestParseIntervalsInvalid(t *testing.T) {
	_, err := ParseIntervals("abc")
	require.Error(t, err)
}

func TestHoles(t *testing.T) {
	// Variable 1 (0-based, DIMACS var 2) never appears in any clause.
	clauses := [][]int{{1, -3}, {3}}
	got := Holes(3, clauses)

	require.Equal(t, map[int]bool{1: true}, got)
}

func TestBuildPoolExcludesBansHolesAndAssigned(t *testing.T) {
	clauses := [][]int{{1, -3}, {3}}
	assigned := func(v int) bool { return v == 2 }

	// var0 banned, var1 a hole, var2 already assigned: nothing survives.
	pool, err := BuildPool(3, clauses, "", "0", assigned)
	require.NoError(t, err)
	require.Equal(t, []int{}, pool)
}

func TestBuildPoolRestrictsToVarsSpec(t *testing.T) {
	clauses := [][]int{{1, 2, 3}}
	pool, err := BuildPool(3, clauses, "0,2", "", nil)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, pool)
}
