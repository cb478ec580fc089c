package solver

import (
	"sort"
	"strings"

	"github.com/ericr/backdoor/lit"
)

// ClauseRef is a handle into the solver's clause arena. Unlike a raw
// pointer it never needs to be chased during arena compaction: compaction
// rewrites the arena slice and then maps every ClauseRef held by watches,
// reasons and the clause lists to its new index through one old-to-new
// table.
type ClauseRef int

// RefUndef denotes the absence of a clause, used for decision/assumption
// reasons and for normalization outcomes that did not allocate anything.
const RefUndef = ClauseRef(-1)

// Clause is a CNF clause record. It intentionally holds no reference back to
// its owning solver; watches and reasons reference clauses by ClauseRef, and
// clauses never reference anything back, which is what makes arena
// compaction a one-directional rewrite instead of a graph walk.
type Clause struct {
	lits        []lit.Lit
	learnt      bool
	mark        bool
	activity    float64
	abstraction uint32
}

// watcher is one entry of a literal's watch list: the clause being watched,
// plus a cached literal (the "blocker") that is quick to check without
// dereferencing the clause at all.
type watcher struct {
	ref     ClauseRef
	blocker lit.Lit
}

// clause dereferences a ClauseRef. Callers never hold on to the returned
// pointer across a GC-triggering call.
func (s *Solver) clause(ref ClauseRef) *Clause {
	return s.arena[ref]
}

// allocClause appends a new clause to the arena and returns its handle.
func (s *Solver) allocClause(lits []lit.Lit, learnt bool) ClauseRef {
	c := &Clause{lits: lits, learnt: learnt}
	if !learnt {
		c.calcAbstraction()
	}
	s.arena = append(s.arena, c)
	s.arenaUsed++
	return ClauseRef(len(s.arena) - 1)
}

// calcAbstraction recomputes the clause's subsumption abstraction bitmask.
func (c *Clause) calcAbstraction() {
	var abs uint32
	for _, p := range c.lits {
		abs |= 1 << uint32(p.Index()&31)
	}
	c.abstraction = abs
}

// newClause normalizes a candidate clause, allocates it if it survives
// normalization, and attaches or enqueues it as appropriate. Original
// clauses are sorted and lose duplicate and false literals; learnt clauses
// keep their order, asserting literal first.
//
// Returns (false, RefUndef) on a top-level conflict (empty clause).
// Returns (true, RefUndef) when the clause is trivially satisfied or a
// tautology.
// Returns (ok, ref) when a clause of size >= 1 was allocated; a unit clause
// is enqueued instead of watched, and ok is the result of that enqueue.
func (s *Solver) newClause(lits []lit.Lit, learnt bool) (bool, ClauseRef) {
	ls := append([]lit.Lit{}, lits...)

	if !learnt {
		sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
		idx := 0
		last := lit.Undef

		for _, p := range ls {
			switch {
			case s.litValue(p).True():
				return true, RefUndef
			case p == last.Not():
				return true, RefUndef
			case s.litValue(p).False():
				continue
			case p == last:
				continue
			}
			ls[idx] = p
			last = p
			idx++
		}
		ls = ls[:idx]
	}

	switch len(ls) {
	case 0:
		return false, RefUndef
	case 1:
		ref := s.allocClause(ls, learnt)
		return s.enqueue(ls[0], ref), ref
	}

	ref := s.allocClause(ls, learnt)
	c := s.clause(ref)

	if learnt {
		idx := s.highestDecisionLevelIdx(ref)
		c.lits[1], c.lits[idx] = c.lits[idx], c.lits[1]

		s.claBumpActivity(ref)
		for i := 0; i < len(c.lits); i++ {
			s.varBumpActivity(c.lits[i])
		}
	}

	s.addToWatcher(c.lits[0].Not(), ref, c.lits[1])
	s.addToWatcher(c.lits[1].Not(), ref, c.lits[0])

	return true, ref
}

// clauseLocked reports whether the clause is the current reason for its own
// first literal, which makes it unsafe to garbage collect during reduceDB.
func (s *Solver) clauseLocked(ref ClauseRef) bool {
	c := s.clause(ref)
	return s.reason[c.lits[0].Index()] == ref
}

// clauseRemove detaches a clause from both of its watch lists and tombstones
// it; the arena slot is only actually reclaimed by a subsequent GC pass.
func (s *Solver) clauseRemove(ref ClauseRef) {
	c := s.clause(ref)
	s.removeFromWatcher(c.lits[0].Not(), ref)
	s.removeFromWatcher(c.lits[1].Not(), ref)
	c.mark = true
	s.arenaWasted++
}

// clauseSimplify drops literals already false at level 0 and reports
// whether the clause has become satisfied and can be removed outright.
func (s *Solver) clauseSimplify(ref ClauseRef) bool {
	c := s.clause(ref)
	j := 0
	for i := 0; i < len(c.lits); i++ {
		if s.litValue(c.lits[i]).True() {
			return true
		}
		if s.litValue(c.lits[i]).Undef() {
			c.lits[j] = c.lits[i]
			j++
		}
	}
	c.lits = c.lits[:j]
	return false
}

// clauseCalcReason returns the literals that imply p's assignment through
// this clause, i.e. the clause minus the implied literal, negated.
func (s *Solver) clauseCalcReason(ref ClauseRef, p lit.Lit) []lit.Lit {
	c := s.clause(ref)
	out := make([]lit.Lit, 0, len(c.lits))
	offset := 1
	if s.litValue(p).Undef() {
		offset = 0
	}
	for i := offset; i < len(c.lits); i++ {
		out = append(out, c.lits[i].Not())
	}
	if c.learnt {
		s.claBumpActivity(ref)
	}
	return out
}

// addToWatcher registers ref, with the given blocker hint, on p's watch list.
func (s *Solver) addToWatcher(p lit.Lit, ref ClauseRef, blocker lit.Lit) {
	s.watches[p] = append(s.watches[p], watcher{ref: ref, blocker: blocker})
}

// removeFromWatcher removes ref from p's watch list.
func (s *Solver) removeFromWatcher(p lit.Lit, ref ClauseRef) {
	ws := s.watches[p]
	for i, w := range ws {
		if w.ref == ref {
			n := len(ws)
			ws[i] = ws[n-1]
			s.watches[p] = ws[:n-1]
			return
		}
	}
}

// highestDecisionLevelIdx returns the index of the clause's literal assigned
// at the highest decision level, used to pick the second watched literal of
// a freshly learnt clause.
func (s *Solver) highestDecisionLevelIdx(ref ClauseRef) int {
	c := s.clause(ref)
	max, maxIdx := -1, 0
	for idx, p := range c.lits {
		dl := s.level[p.Index()]
		if dl > max {
			maxIdx = idx
			max = dl
		}
	}
	return maxIdx
}

// clauseString renders a clause for logging and tracing.
func (s *Solver) clauseString(ref ClauseRef) string {
	c := s.clause(ref)
	strs := make([]string, len(c.lits))
	for i, p := range c.lits {
		strs[i] = p.String()
	}
	return strings.Join(strs, ",")
}
