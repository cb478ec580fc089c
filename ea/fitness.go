package ea

import (
	"math"

	"github.com/ericr/backdoor/solver"
)

// Fitness totally orders candidates by Score alone; smaller is better.
// Rho and Hard are carried for reporting, not comparison.
type Fitness struct {
	Score float64
	Rho   float64
	Hard  uint64
}

// Less reports whether f is strictly better than other.
func (f Fitness) Less(other Fitness) bool {
	return f.Score < other.Score
}

// LessOrEqual implements the (1+1) EA's acceptance rule: the mutant
// replaces the incumbent iff its fitness is no worse.
func (f Fitness) LessOrEqual(other Fitness) bool {
	return f.Score <= other.Score
}

// Evaluate computes the fitness of vars (0-based internal indices) against
// s by enumerating all 2^|vars| assignments. An empty variable set sorts
// last: score is +Inf, rho is 0, hard is 1, matching the reference
// implementation's empty-instance fitness.
func Evaluate(s *solver.Solver, vars []int) Fitness {
	if len(vars) == 0 {
		return Fitness{Score: math.Inf(1), Rho: 0, Hard: 1}
	}

	result := s.EnumerateBackdoor(vars, 0)
	n := math.Pow(2, float64(len(vars)))
	rho := 1 - float64(result.Hard)/n

	return Fitness{Score: 1 - rho, Rho: rho, Hard: result.Hard}
}
