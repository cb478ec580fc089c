package solver

import "github.com/ericr/backdoor/lit"

// analyze performs first-UIP conflict analysis, returning the learnt clause
// (UIP negation first) and the level to backtrack to.
func (s *Solver) analyze(confl ClauseRef) ([]lit.Lit, int) {
	seen := make([]bool, s.NVars())
	p := lit.Undef
	learnts := []lit.Lit{lit.Undef}
	counter := 0

	for {
		pReason := s.clauseCalcReason(confl, p)

		for _, q := range pReason {
			if !seen[q.Index()] {
				seen[q.Index()] = true
				level := s.level[q.Index()]

				switch {
				case level == s.decisionLevel():
					counter++
				case level > 0:
					learnts = append(learnts, q.Not())
				}
			}
		}
		for {
			p = s.trail[s.NAssigns()-1]
			confl = s.reason[p.Index()]
			s.undoOne()

			if seen[p.Index()] {
				break
			}
		}
		counter--
		if counter == 0 {
			break
		}
	}
	learnts[0] = p.Not()

	if s.config.CCMinMode > 0 {
		learnts = s.minimizeConflict(learnts, seen)
	}

	btLevel := 0
	for _, q := range learnts[1:] {
		if lvl := s.level[q.Index()]; lvl > btLevel {
			btLevel = lvl
		}
	}

	return learnts, btLevel
}

// minimizeConflict drops learnt-clause literals that are redundant given
// the rest of the clause, per config.CCMinMode: 1 is a single-step check
// (every antecedent of the literal is already seen or at level 0), 2 adds
// the abstraction-filtered recursive check from litRedundant.
func (s *Solver) minimizeConflict(learnts []lit.Lit, seen []bool) []lit.Lit {
	out := []lit.Lit{learnts[0]}

	var abstraction uint32
	for _, q := range learnts[1:] {
		abstraction |= 1 << uint32(q.Index()&31)
	}

	for _, q := range learnts[1:] {
		ref := s.reason[q.Index()]
		redundant := false

		if ref != RefUndef {
			if s.config.CCMinMode >= 2 {
				redundant = s.litRedundant(q, abstraction, seen)
			} else {
				redundant = s.reasonAllSeen(ref, q, seen)
			}
		}
		if !redundant {
			out = append(out, q)
		}
	}
	return out
}

// reasonAllSeen is the mode-1 minimization check: q is redundant if every
// literal implying it is already in the learnt clause or fixed at level 0.
func (s *Solver) reasonAllSeen(ref ClauseRef, q lit.Lit, seen []bool) bool {
	for _, r := range s.clauseCalcReason(ref, q) {
		if !seen[r.Index()] && s.level[r.Index()] > 0 {
			return false
		}
	}
	return true
}

// litRedundant performs an abstraction-filtered depth-first search to
// decide whether p's implication chain bottoms out entirely in literals
// already seen or fixed at level 0, without ever having to leave the set
// of decision levels touched by the learnt clause (the abstraction bitmask
// is a cheap, conservative filter for that).
func (s *Solver) litRedundant(p lit.Lit, abstraction uint32, seen []bool) bool {
	stack := []lit.Lit{p}
	visited := map[int]bool{}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ref := s.reason[cur.Index()]
		if ref == RefUndef {
			return false
		}
		for _, r := range s.clauseCalcReason(ref, cur) {
			if seen[r.Index()] || r.Index() == p.Index() {
				continue
			}
			if s.level[r.Index()] == 0 {
				continue
			}
			if abstraction&(1<<uint32(r.Index()&31)) == 0 {
				return false
			}
			if s.reason[r.Index()] == RefUndef {
				return false
			}
			if visited[r.Index()] {
				continue
			}
			visited[r.Index()] = true
			stack = append(stack, r)
		}
	}
	return true
}

// record allocates and attaches a newly learnt clause, immediately
// enqueuing its asserting (UIP) literal.
func (s *Solver) record(lits []lit.Lit) {
	_, ref := s.newClause(lits, true)
	s.enqueue(lits[0], ref)

	if ref != RefUndef {
		s.learnts = append(s.learnts, ref)
	}
}
