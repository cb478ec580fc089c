package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendAndTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdoors.txt")

	require.NoError(t, Truncate(path))
	require.NoError(t, Append(path, Line{Score: 0.5, Rho: 0.5, Hard: 2, Iteration: 3, Vars: []int{0, 2}}))
	require.NoError(t, Append(path, Line{Score: math.Inf(1), Rho: 0, Hard: 1, Iteration: 0, Vars: nil}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t,
		"Best fitness 0.5 (rho=0.5, hard=2) on iteration 3 with 2 variables: [0,2]\n"+
			"Best fitness +Inf (rho=0, hard=1) on iteration 0 with 0 variables: []\n",
		string(data),
	)
}

func TestTruncateClearsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdoors.txt")

	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))
	require.NoError(t, Truncate(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}
