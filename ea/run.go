package ea

import (
	"math/rand"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/report"
	"github.com/ericr/backdoor/solver"
)

// RunResult is one (1+1) EA run's outcome.
type RunResult struct {
	Best          Fitness
	BestIteration int
	BestVars      []int
	CacheSize     int
}

// Run drives a single (1+1) EA run of cfg.EANumIters iterations against the
// given pool, starting from a freshly drawn Instance. It owns rng
// exclusively: every initialization, mutation and pool draw derives from
// it, independent of any PRNG the solver uses internally.
func Run(cfg *config.Config, s *solver.Solver, pool []int, rng *rand.Rand) RunResult {
	cache := NewCache()

	current := NewInstance(pool, cfg.EAInstanceSize, rng)
	currentFitness := cache.Fitness(s, current)

	best := currentFitness
	bestVars := current.Variables()
	bestIteration := 0

	for i := 1; i <= cfg.EANumIters; i++ {
		mutated := current.Mutate(rng)
		mutatedFitness := cache.Fitness(s, mutated)

		if mutatedFitness.LessOrEqual(currentFitness) {
			current = mutated
			currentFitness = mutatedFitness
		}
		if currentFitness.Less(best) {
			best = currentFitness
			bestVars = current.Variables()
			bestIteration = i
		}
		if shouldLog(i) {
			cfg.Logf(1, "iteration %d: fitness=%.4f (rho=%.4f, hard=%d) best=%.4f at %d",
				i, currentFitness.Score, currentFitness.Rho, currentFitness.Hard, best.Score, bestIteration)
		}
	}

	return RunResult{Best: best, BestIteration: bestIteration, BestVars: bestVars, CacheSize: cache.Len()}
}

// shouldLog implements the logarithmic throttle: dense at first, sparser as
// the run goes on.
func shouldLog(i int) bool {
	switch {
	case i <= 10:
		return true
	case i < 1000:
		return i%100 == 0
	case i < 10000:
		return i%1000 == 0
	default:
		return i%10000 == 0
	}
}

// RunAll truncates cfg.EAOutputPath once, then drives cfg.EANumRuns
// independent EA runs against pool, appending one result line per run.
// Each run gets its own deterministic PRNG derived from cfg.EASeed so that
// identical configuration always reproduces identical results.
func RunAll(cfg *config.Config, s *solver.Solver, pool []int) ([]RunResult, error) {
	if err := report.Truncate(cfg.EAOutputPath); err != nil {
		return nil, err
	}

	results := make([]RunResult, 0, cfg.EANumRuns)

	for run := 0; run < cfg.EANumRuns; run++ {
		rng := rand.New(rand.NewSource(cfg.EASeed + int64(run)))
		res := Run(cfg, s, pool, rng)
		results = append(results, res)

		err := report.Append(cfg.EAOutputPath, report.Line{
			Score:     res.Best.Score,
			Rho:       res.Best.Rho,
			Hard:      res.Best.Hard,
			Iteration: res.BestIteration,
			Vars:      res.BestVars,
		})
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
