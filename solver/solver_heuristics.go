package solver

import (
	"sort"

	"github.com/ericr/backdoor/lit"
)

// varBumpActivity bumps a variable's activity and rescales if it overflows.
func (s *Solver) varBumpActivity(p lit.Lit) {
	s.activity[p.Index()] += s.varInc

	if s.activity[p.Index()] > 1e100 {
		s.varRescaleActivity()
	}
	s.order.Fix(p.Index())
}

// varDecayActivity applies decay to varInc, the effective activity bump.
func (s *Solver) varDecayActivity() {
	s.varInc *= s.varDecay
}

// varRescaleActivity rescales every variable's activity to avoid overflow.
func (s *Solver) varRescaleActivity() {
	for i := 0; i < s.NVars(); i++ {
		s.activity[i] *= 1e-100
	}
	s.varInc *= 1e-100
}

// claBumpActivity bumps a learnt clause's activity.
func (s *Solver) claBumpActivity(ref ClauseRef) {
	c := s.clause(ref)
	c.activity += s.claInc

	if c.activity+s.claInc > 1e20 {
		s.claRescaleActivity()
	}
}

// claDecayActivity applies decay to claInc, the effective activity bump.
func (s *Solver) claDecayActivity() {
	s.claInc *= s.claDecay
}

// claRescaleActivity rescales every learnt clause's activity.
func (s *Solver) claRescaleActivity() {
	for i := 0; i < s.NLearnts(); i++ {
		s.clause(s.learnts[i]).activity *= 1e-20
	}
	s.claInc *= 1e-20
}

// decayActivities calls both activity decay functions.
func (s *Solver) decayActivities() {
	s.varDecayActivity()
	s.claDecayActivity()
}

// sortLearnts orders learnt clauses by ascending activity, used by reduceDB.
func (s *Solver) sortLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.clause(s.learnts[i]).activity < s.clause(s.learnts[j]).activity
	})
}
