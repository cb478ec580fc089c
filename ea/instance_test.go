package ea

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInstanceDrawsWithoutReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inst := NewInstance([]int{0, 1, 2, 3, 4}, 3, rng)

	require.Len(t, inst.Data, 3)
	require.Equal(t, 3, inst.NumVariables())

	seen := map[int]bool{}
	for _, v := range inst.Data {
		require.False(t, seen[v], "variable %d drawn twice", v)
		seen[v] = true
	}
	require.Len(t, inst.Pool, 2)
}

func TestNewInstanceShrinksToPoolSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inst := NewInstance([]int{0, 1}, 5, rng)

	require.Equal(t, 2, inst.NumVariables())
	require.Empty(t, inst.Pool)
}

func TestCanonicalKeyIgnoresSlotOrder(t *testing.T) {
	a := &Instance{Data: []int{3, None, 1}}
	b := &Instance{Data: []int{1, 3, None}}

	require.Equal(t, a.CanonicalKey(), b.CanonicalKey())
	require.Equal(t, []int{1, 3}, a.Variables())
}

func TestCopyDropsNoData(t *testing.T) {
	orig := &Instance{Data: []int{1, 2}, Pool: []int{3}}
	cp := orig.Copy()

	cp.Data[0] = 99
	require.Equal(t, 1, orig.Data[0], "copy must not alias the original")
}

func TestMutateKeepsSlotCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	orig := NewInstance([]int{0, 1, 2, 3}, 2, rng)

	mutated := orig.Mutate(rng)
	require.Len(t, mutated.Data, len(orig.Data))
}
