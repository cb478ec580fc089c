package solver

import (
	"github.com/ericr/backdoor/lit"
	"github.com/ericr/backdoor/tribool"
)

// enqueue puts a new fact, p, into the propagation queue with the given
// reason (RefUndef for a decision or assumption).
func (s *Solver) enqueue(p lit.Lit, from ClauseRef) bool {
	if s.litValue(p) != tribool.Undef {
		return s.litValue(p).True()
	}
	s.assigns[p.Index()] = tribool.NewFromBool(!p.Sign())
	s.level[p.Index()] = s.decisionLevel()
	s.reason[p.Index()] = from
	s.trail = append(s.trail, p)
	s.propQ.Insert(p)

	return true
}

// propagate propagates all enqueued facts, returning the conflicting
// clause's ref, or RefUndef if the queue drained cleanly.
func (s *Solver) propagate() ClauseRef {
	for s.propQ.Size() > 0 {
		p := s.propQ.Dequeue()

		tmp := s.watches[p]
		s.watches[p] = []watcher{}
		s.propagations++

		for i := 0; i < len(tmp); i++ {
			w := tmp[i]

			// Blocker hint: if it is already satisfied, the clause must be
			// too, so keep the watch without dereferencing the clause.
			if s.litValue(w.blocker).True() {
				s.watches[p] = append(s.watches[p], w)
				continue
			}
			if !s.clausePropagate(w.ref, p) {
				for j := i + 1; j < len(tmp); j++ {
					s.watches[p] = append(s.watches[p], tmp[j])
				}
				s.propQ.Clear()

				return w.ref
			}
		}
	}
	return RefUndef
}

// clausePropagate attempts to re-establish the two-watched-literal
// invariant for ref after p was just assigned false, returning false on
// conflict.
func (s *Solver) clausePropagate(ref ClauseRef, p lit.Lit) bool {
	c := s.clause(ref)

	if c.lits[0] == p.Not() {
		c.lits[0], c.lits[1] = c.lits[1], p.Not()
	}
	if s.litValue(c.lits[0]).True() {
		s.addToWatcher(p, ref, c.lits[0])
		return true
	}
	for i := 2; i < len(c.lits); i++ {
		if !s.litValue(c.lits[i]).False() {
			c.lits[1], c.lits[i] = c.lits[i], p.Not()
			s.addToWatcher(c.lits[1].Not(), ref, c.lits[0])
			return true
		}
	}
	s.addToWatcher(p, ref, c.lits[0])

	return s.enqueue(c.lits[0], ref)
}
