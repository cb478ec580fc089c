package solver

// Simplify may be called at decision level 0 to simplify the constraint
// database: it propagates, drops learnt clauses satisfied at level 0
// (original clauses are kept), and runs
// the arena's garbage collector if enough space has been wasted. Returns
// false on a level-0 conflict.
func (s *Solver) Simplify() bool {
	if s.propagate() != RefUndef {
		return false
	}
	j := 0
	for i := 0; i < s.NLearnts(); i++ {
		ref := s.learnts[i]
		if s.clauseSimplify(ref) {
			s.clauseRemove(ref)
		} else {
			s.learnts[j] = ref
			j++
		}
	}
	s.learnts = s.learnts[:j]

	if s.arenaWasted > 0 && float64(s.arenaWasted)/float64(len(s.arena)+1) >= s.config.GCFrac {
		s.garbageCollect()
	}
	return true
}

// reduceDB removes half of the learnt clauses, skipping locked clauses and
// size-2 clauses, which are kept regardless of activity.
func (s *Solver) reduceDB() {
	s.sortLearnts()

	lim := s.claInc / float64(s.NLearnts())
	j := 0

	for i := 0; i < s.NLearnts(); i++ {
		ref := s.learnts[i]
		c := s.clause(ref)

		if len(c.lits) > 2 && !s.clauseLocked(ref) && (i < s.NLearnts()/2 || c.activity < lim) {
			s.clauseRemove(ref)
		} else {
			s.learnts[j] = ref
			j++
		}
	}
	s.learnts = s.learnts[:j]
}

// garbageCollect compacts the clause arena, dropping tombstoned clauses and
// rewriting every watch/reason/constraint/learnt reference to its new
// ClauseRef. ClauseRef values held externally are never dereferenced, so
// this is invisible to anyone outside the solver.
func (s *Solver) garbageCollect() {
	newArena := make([]*Clause, 0, len(s.arena)-s.arenaWasted)
	remap := make([]ClauseRef, len(s.arena))

	for i, c := range s.arena {
		if c.mark {
			remap[i] = RefUndef
			continue
		}
		remap[i] = ClauseRef(len(newArena))
		newArena = append(newArena, c)
	}

	relocList := func(refs []ClauseRef) []ClauseRef {
		out := make([]ClauseRef, 0, len(refs))
		for _, r := range refs {
			if nr := remap[r]; nr != RefUndef {
				out = append(out, nr)
			}
		}
		return out
	}

	s.constrs = relocList(s.constrs)
	s.learnts = relocList(s.learnts)

	for p, ws := range s.watches {
		out := make([]watcher, 0, len(ws))
		for _, w := range ws {
			if nr := remap[w.ref]; nr != RefUndef {
				out = append(out, watcher{ref: nr, blocker: w.blocker})
			}
		}
		s.watches[p] = out
	}
	for v := range s.reason {
		if s.reason[v] != RefUndef {
			s.reason[v] = remap[s.reason[v]]
		}
	}

	s.arena = newArena
	s.arenaWasted = 0
	s.arenaUsed = len(newArena)
}
