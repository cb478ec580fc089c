package ea

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/config"
)

func TestRunFindsBestWithinBudget(t *testing.T) {
	s := buildTwoVarFormula(t)
	cfg := config.New()
	cfg.EAInstanceSize = 2
	cfg.EANumIters = 20

	rng := rand.New(rand.NewSource(1))
	res := Run(cfg, s, []int{0, 1}, rng)

	require.InDelta(t, 0.5, res.Best.Score, 1e-9)
	require.Greater(t, res.CacheSize, 0)
}

func TestRunAllTruncatesAndAppendsPerRun(t *testing.T) {
	s := buildTwoVarFormula(t)
	cfg := config.New()
	cfg.EAInstanceSize = 2
	cfg.EANumIters = 5
	cfg.EANumRuns = 2
	cfg.EAOutputPath = t.TempDir() + "/backdoors.txt"

	results, err := RunAll(cfg, s, []int{0, 1})
	require.NoError(t, err)
	require.Len(t, results, 2)

	contents, err := os.ReadFile(cfg.EAOutputPath)
	require.NoError(t, err)
	require.Equal(t, 2, countLines(string(contents)))
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
