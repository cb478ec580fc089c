package solver

import (
	"github.com/ericr/backdoor/lit"
	"github.com/ericr/backdoor/tribool"
)

// searchParams are decay params supported by search.
type searchParams struct {
	varDecay float64
	claDecay float64
}

// search assumes and propagates until a conflict is found. When this
// happens, the conflict is learnt and backtracking is performed until the
// search can continue, up to the current restart's conflict budget.
func (s *Solver) search(params searchParams) tribool.Tribool {
	s.varDecay = 1 / params.varDecay
	s.claDecay = 1 / params.claDecay

	s.model = map[int]bool{}
	nConflicts := 0

	for {
		if confl := s.propagate(); confl != RefUndef {
			nConflicts++
			s.conflicts++

			if s.decisionLevel() == s.rootLevel {
				return tribool.False
			}

			learntClause, backtrackLevel := s.analyze(confl)

			if backtrackLevel > s.rootLevel {
				s.cancelUntil(backtrackLevel)
			} else {
				s.cancelUntil(s.rootLevel)
			}
			s.record(learntClause)

			s.decayActivities()
			s.maxLearntsCtr -= 1
			if s.maxLearntsCtr == 0 {
				s.maxLearntsCtrInc *= s.maxLearntsCtrIncGrowth
				s.maxLearntsCtr = int(s.maxLearntsCtrInc)
				s.maxLearnts *= s.maxLearntsGrowth
			}
		} else {
			if s.NAssigns() == s.NVars() {
				for i := 0; i < s.NVars(); i++ {
					s.model[s.internalVars[i]] = s.assigns[i] == tribool.True
				}
				s.cancelUntil(s.rootLevel)

				return tribool.True
			}

			if s.decisionLevel() == 0 {
				s.Simplify()
			}

			if s.NLearnts()-s.NAssigns() >= int(s.maxLearnts) {
				s.reduceDB()
			}

			if nConflicts >= int(s.maxConflicts) {
				s.cancelUntil(s.rootLevel)

				return tribool.Undef
			}

			next := s.pickBranchLit()
			if next == lit.Undef {
				s.cancelUntil(s.rootLevel)
				return tribool.True
			}
			s.assume(next)
			s.decisions++
		}
	}
}

// pickBranchLit chooses the next decision literal: with probability
// RandomVarFreq a uniformly random undecided decidable variable, otherwise
// the highest-activity undecided decidable variable from the order heap.
// Phase follows the saved polarity unless RndPolarity flips a coin.
func (s *Solver) pickBranchLit() lit.Lit {
	v := -1

	if s.config.RandomVarFreq > 0 && s.drand() < s.config.RandomVarFreq {
		candidates := make([]int, 0, s.NVars())
		for i := 0; i < s.NVars(); i++ {
			if s.assigns[i].Undef() && s.decision[i] {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) > 0 {
			v = candidates[s.irand(len(candidates))]
		}
	}

	if v == -1 {
		for {
			cand := s.order.Choose() - 1
			if cand < 0 {
				break
			}
			if cand >= s.NVars() {
				break
			}
			if !s.assigns[cand].Undef() {
				continue
			}
			if !s.decision[cand] {
				continue
			}
			v = cand
			break
		}
	}
	if v == -1 {
		return lit.Undef
	}

	sign := !s.polarity[v]
	if s.config.RndPolarity {
		sign = s.drand() < 0.5
	}
	return lit.New(v, sign)
}

// assume opens a new decision level and enqueues p as a decision.
func (s *Solver) assume(p lit.Lit) bool {
	s.trailLim = append(s.trailLim, s.NAssigns())

	return s.enqueue(p, RefUndef)
}

// undoOne unbinds the most recently assigned variable, saving its phase.
func (s *Solver) undoOne() {
	p := s.trail[s.NAssigns()-1]

	s.polarity[p.Index()] = !p.Sign()
	s.assigns[p.Index()] = tribool.Undef
	s.reason[p.Index()] = RefUndef
	s.level[p.Index()] = -1
	s.trail = s.trail[:s.NAssigns()-1]
	s.order.Push(p.Index())
}

// cancel reverts all variable assignments since the last decision level.
func (s *Solver) cancel() {
	c := s.NAssigns() - s.trailLim[s.decisionLevel()-1]
	for ; c > 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:s.decisionLevel()-1]
}

// cancelUntil cancels all variable assignments since the given level.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

// decisionLevel returns the solver's current decision level.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}
