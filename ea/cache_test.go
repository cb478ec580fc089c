package ea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheMemoizesByCanonicalKey(t *testing.T) {
	s := buildTwoVarFormula(t)
	cache := NewCache()

	a := &Instance{Data: []int{0, 1}}
	b := &Instance{Data: []int{1, 0}}

	fa := cache.Fitness(s, a)
	require.Equal(t, 1, cache.Len())

	fb := cache.Fitness(s, b)
	require.Equal(t, 1, cache.Len(), "same variable set in a different slot order must hit the cache")
	require.Equal(t, fa, fb)
}

func TestCacheDistinguishesVariableSets(t *testing.T) {
	s := buildTwoVarFormula(t)
	cache := NewCache()

	cache.Fitness(s, &Instance{Data: []int{0}})
	cache.Fitness(s, &Instance{Data: []int{1}})

	require.Equal(t, 2, cache.Len())
}
