package lit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromInt(t *testing.T) {
	require.Equal(t, 12, NewFromInt(12).Var())
	require.Equal(t, 12, NewFromInt(-12).Var())
}

func TestNot(t *testing.T) {
	require.Equal(t, New(12, true), New(12, false).Not())
}

func TestSign(t *testing.T) {
	require.True(t, New(12, true).Sign())
	require.False(t, New(12, false).Sign())
}

func TestVar(t *testing.T) {
	require.Equal(t, 24, New(23, false).Var())
	require.Equal(t, 24, New(23, true).Var())
}

func TestIndex(t *testing.T) {
	require.Equal(t, 23, New(23, false).Index())
	require.Equal(t, 23, New(23, true).Index())
}
