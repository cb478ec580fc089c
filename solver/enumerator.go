package solver

import "github.com/ericr/backdoor/lit"

// enumState is the propagation-assumption enumerator's position in its
// depth-first walk of the 2^|vars| assignment tree.
type enumState int

const (
	descending enumState = iota
	propagating
	ascending
)

// BackdoorResult is the outcome of walking every assignment to a candidate
// backdoor: how many of the 2^|vars| leaves were hard (propagation reached
// the leaf with no conflict), and up to Limit of their sign vectors.
type BackdoorResult struct {
	Hard  uint64
	Cubes [][]bool
}

// EnumerateBackdoor walks the full binary decision tree over vars (0-based
// internal indices, cube[i]==true meaning the negative literal), counting
// hard leaves. It reuses the solver's own trail across sibling cubes: each
// internal node costs one propagate call, and each backtrack only cancels
// back to the branching level rather than restarting from scratch. limit<0
// means collect every hard cube; the solver is left at its original
// decision level on return.
func (s *Solver) EnumerateBackdoor(vars []int, limit int) *BackdoorResult {
	n := len(vars)
	result := &BackdoorResult{}

	if n == 0 {
		result.Hard = 1
		result.Cubes = [][]bool{{}}
		return result
	}
	for _, v := range vars {
		if v < 0 || v >= s.NVars() {
			return result
		}
	}

	cube := make([]int, n)
	levelBefore := make([]int, n+1)
	startLevel := s.decisionLevel()
	levelBefore[0] = startLevel

	depth := 0
	state := descending

	for {
		switch state {
		case descending:
			if depth == n {
				result.Hard++
				if limit < 0 || len(result.Cubes) < limit {
					signs := make([]bool, n)
					for i, b := range cube {
						signs[i] = b == 1
					}
					result.Cubes = append(result.Cubes, signs)
				}
				state = ascending
				continue
			}

			v := vars[depth]
			neg := cube[depth] == 1
			p := lit.New(v, neg)

			switch {
			case s.litValue(p).True():
				depth++
				levelBefore[depth] = s.decisionLevel()
			case s.litValue(p).False():
				depth++
				state = ascending
			default:
				s.trailLim = append(s.trailLim, s.NAssigns())
				s.enqueue(p, RefUndef)
				depth++
				levelBefore[depth] = s.decisionLevel()
				state = propagating
			}

		case propagating:
			if s.propagate() != RefUndef {
				state = ascending
			} else {
				state = descending
			}

		case ascending:
			i := depth - 1
			for i >= 0 && cube[i] == 1 {
				i--
			}
			if i < 0 {
				s.cancelUntil(startLevel)
				return result
			}
			cube[i] = 1
			for j := i + 1; j < n; j++ {
				cube[j] = 0
			}
			s.cancelUntil(levelBefore[i])
			depth = i
			state = descending
		}
	}
}

// EnumerateBackdoorOracle is an independent, from-scratch reference
// implementation: it assumes every one of the 2^|vars| cubes individually,
// propagating and cancelling back to level 0 each time, instead of reusing
// the trail across siblings. It exists solely to cross-check
// EnumerateBackdoor's total hard count in tests; it is not used on any
// hot path.
func (s *Solver) EnumerateBackdoorOracle(vars []int, limit int) *BackdoorResult {
	n := len(vars)
	result := &BackdoorResult{}

	if n == 0 {
		result.Hard = 1
		result.Cubes = [][]bool{{}}
		return result
	}
	if n > 62 {
		return result
	}
	for _, v := range vars {
		if v < 0 || v >= s.NVars() {
			return result
		}
	}

	startLevel := s.decisionLevel()
	total := uint64(1) << uint64(n)

	for cube := uint64(0); cube < total; cube++ {
		conflict := false

		for i := 0; i < n; i++ {
			neg := (cube>>uint(i))&1 == 1
			p := lit.New(vars[i], neg)

			if s.litValue(p).False() {
				conflict = true
				break
			}
			if s.litValue(p).True() {
				continue
			}
			s.trailLim = append(s.trailLim, s.NAssigns())
			s.enqueue(p, RefUndef)
			if s.propagate() != RefUndef {
				conflict = true
				break
			}
		}
		if !conflict {
			result.Hard++
			if limit < 0 || len(result.Cubes) < limit {
				signs := make([]bool, n)
				for i := 0; i < n; i++ {
					signs[i] = (cube>>uint(i))&1 == 1
				}
				result.Cubes = append(result.Cubes, signs)
			}
		}
		s.cancelUntil(startLevel)
	}
	return result
}
