package solver

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/lit"
	"github.com/ericr/backdoor/order"
	"github.com/ericr/backdoor/tribool"
)

const (
	VersionMajor = 2
	VersionMinor = 0
)

// Solver is a CDCL SAT solver: two-watched-literal propagation, first-UIP
// conflict-driven learning, activity-based variable/clause decay, and
// Luby or geometric restarts. It is single-threaded and cooperative: the
// only way to stop it mid-search is Interrupt, polled between restarts.
type Solver struct {
	config *config.Config
	logger *log.Logger

	// Model Database Fields

	userVars     map[int]int
	internalVars map[int]int
	model        map[int]bool

	// Constraint Database Fields

	arena       []*Clause
	arenaUsed   int
	arenaWasted int
	constrs     []ClauseRef
	learnts     []ClauseRef
	claInc      float64
	claDecay    float64

	// Variable Order Fields

	activity []float64
	varInc   float64
	varDecay float64
	order    *order.Order
	polarity []bool
	decision []bool

	// Propagation Fields

	watches map[lit.Lit][]watcher
	propQ   *lit.Queue

	// Assignment Fields

	assigns   []tribool.Tribool
	trail     []lit.Lit
	trailLim  []int
	reason    []ClauseRef
	level     []int
	rootLevel int

	// Algorithmic Restart Fields

	maxLearnts              float64
	maxLearntsGrowth        float64
	maxLearntsCtr           int
	maxLearntsCtrInc        float64
	maxLearntsCtrIncGrowth  float64
	maxConflicts            float64
	maxConflictsGrowthStart float64
	maxConflictsGrowthBase  float64
	lubyRestart             bool

	// Solver-owned PRNG state (independent of any caller's PRNG), a
	// minisat-style double-based LCG.
	randSeed float64

	interrupted bool

	// Stats Fields

	propagations int
	conflicts    int
	restarts     int
	decisions    int
}

// New returns a new initialized solver wired from cfg.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:       c,
		logger:       c.Logger,
		userVars:     map[int]int{},
		internalVars: map[int]int{},
		model:        map[int]bool{},
		arena:        []*Clause{},
		learnts:      []ClauseRef{},
		activity:     []float64{},
		watches:      map[lit.Lit][]watcher{},
		propQ:        lit.NewQueue(),
		assigns:      []tribool.Tribool{},
		trail:        []lit.Lit{},
		trailLim:     []int{},
		reason:       []ClauseRef{},
		level:        []int{},
		claDecay:     c.ClaDecay,
		varDecay:     c.VarDecay,
		lubyRestart:  c.LubyRestart,
		randSeed:     c.RandomSeed,
	}
	if s.randSeed == 0 {
		s.randSeed = 91648253
	}
	s.order = order.New(&s.assigns, &s.activity)

	return s
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Solve accepts a list of DIMACS-style (1-based, signed) assumption
// literals and solves the problem, returning true when satisfiable.
func (s *Solver) Solve(ps []int) bool {
	return s.SolveLifted(ps).True()
}

// SolveLifted is Solve's three-valued form: True (SAT), False (UNSAT), or
// Undef when a resource limit or Interrupt stopped the search early.
func (s *Solver) SolveLifted(ps []int) tribool.Tribool {
	assumps := []lit.Lit{}
	params := searchParams{s.config.VarDecay, s.config.ClaDecay}
	status := tribool.Undef

	s.varInc = 1.0
	s.claInc = 1.0

	s.maxLearnts = float64(s.NConstrs()) / 3.0
	s.maxLearntsGrowth = s.config.LearntSizeInc
	s.maxLearntsCtrInc = 100.0
	s.maxLearntsCtr = int(s.maxLearntsCtrInc)
	s.maxLearntsCtrIncGrowth = 1.5

	s.maxConflictsGrowthStart = s.config.RestartFirst
	s.maxConflictsGrowthBase = s.config.RestartInc

	if !s.Simplify() {
		return tribool.False
	}
	s.order.Init()

	for _, p := range ps {
		assump := lit.NewFromInt(p)

		if _, ok := s.userVars[assump.Var()]; !ok {
			return tribool.False
		}
		assumps = append(assumps, s.newVar(assump))
	}
	for i := 0; i < len(assumps); i++ {
		if !s.assume(assumps[i]) || s.propagate() != RefUndef {
			s.cancelUntil(0)

			return tribool.False
		}
	}
	s.rootLevel = s.decisionLevel()

	for status.Undef() {
		if s.interrupted {
			s.cancelUntil(s.rootLevel)
			return tribool.Undef
		}
		if s.lubyRestart {
			s.maxConflicts = s.maxConflictsGrowthStart * luby(s.maxConflictsGrowthBase, s.restarts)
		} else {
			s.maxConflicts = s.maxConflictsGrowthStart * math.Pow(s.maxConflictsGrowthBase, float64(s.restarts))
		}
		status = s.search(params)
		s.restarts++
	}
	s.cancelUntil(0)

	return status
}

// AddClause adds a new clause given DIMACS-style (1-based, signed) literals.
func (s *Solver) AddClause(ps []int) bool {
	lits := make([]lit.Lit, 0, len(ps))

	for _, p := range ps {
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}
	ok, ref := s.newClause(lits, false)
	if ok && ref != RefUndef {
		s.constrs = append(s.constrs, ref)
	}
	return ok
}

// Answer returns the most recently discovered model as signed DIMACS ints.
func (s *Solver) Answer() []int {
	ps := []int{}

	for p, val := range s.model {
		if val {
			ps = append(ps, p)
		} else {
			ps = append(ps, -p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a < 0 {
			a = -a
		}
		if b < 0 {
			b = -b
		}
		return a < b
	})
	return ps
}

// NVars returns the number of internal variables.
func (s *Solver) NVars() int {
	return len(s.assigns)
}

// NAssigns returns the number of assignments made.
func (s *Solver) NAssigns() int {
	return len(s.trail)
}

// NLearnts returns the number of learnt clauses.
func (s *Solver) NLearnts() int {
	return len(s.learnts)
}

// NConstrs returns the number of problem constraints.
func (s *Solver) NConstrs() int {
	return len(s.constrs)
}

// NPropagations returns the number of unit propagations performed.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NConflicts returns the number of conflicts encountered.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// NRestarts returns the number of restarts performed.
func (s *Solver) NRestarts() int {
	return s.restarts
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// Interrupt cooperatively asks the solver to stop at its next poll point.
func (s *Solver) Interrupt() {
	s.interrupted = true
}

// ClearInterrupt resets the cooperative interrupt flag.
func (s *Solver) ClearInterrupt() {
	s.interrupted = false
}

// Value returns the current value of the 0-based internal variable v.
func (s *Solver) Value(v int) tribool.Tribool {
	if v < 0 || v >= len(s.assigns) {
		return tribool.Undef
	}
	return s.assigns[v]
}

// Level returns the decision level at which variable v was assigned, or -1.
func (s *Solver) Level(v int) int {
	return s.level[v]
}

// ReserveVars pre-registers declared variables 1..n (1-based, DIMACS-style)
// in ascending order, before any clause is added. Because newVar assigns
// internal indices lazily in order of first appearance, a caller that adds
// clauses whose variables are not already in strictly ascending order would
// otherwise end up with an internal numbering that diverges from declared
// 0-based numbering. Calling ReserveVars first makes internal index i equal
// declared index i for every v in [0, n), which callers such as the EA pool
// builder rely on when they pass declared 0-based variable ids straight into
// Value or EnumerateBackdoor.
func (s *Solver) ReserveVars(n int) {
	for v := 1; v <= n; v++ {
		s.newVar(lit.NewFromInt(v))
	}
}

// newVar adds a new variable to the solver, referenced thereafter by its
// index, and returns p translated into the solver's internal numbering.
func (s *Solver) newVar(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		idx := s.NVars()
		s.userVars[p.Var()] = idx
		s.internalVars[idx] = p.Var()
		s.watches[lit.New(idx, false)] = []watcher{}
		s.watches[lit.New(idx, true)] = []watcher{}
		s.reason = append(s.reason, RefUndef)
		s.assigns = append(s.assigns, tribool.Undef)
		s.level = append(s.level, -1)
		initAct := 0.0
		if s.config.RndInitAct {
			initAct = s.drand() * 0.00001
		}
		s.activity = append(s.activity, initAct)
		polarity := true
		if s.config.RndPolarity {
			polarity = s.drand() < 0.5
		}
		s.polarity = append(s.polarity, polarity)
		s.decision = append(s.decision, true)
		s.order.NewVar()
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// litValue returns p's value, accounting for p's sign.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Index()].Not()
	}
	return s.assigns[p.Index()]
}

// drand is the solver's own minisat-style double-based LCG, independent of
// any PRNG owned by a caller such as the evolutionary search.
func (s *Solver) drand() float64 {
	s.randSeed *= 1389796.0
	q := int64(s.randSeed / 2147483647.0)
	s.randSeed -= float64(q) * 2147483647.0
	return s.randSeed / 2147483647.0
}

// irand returns a pseudo-random integer in [0, size).
func (s *Solver) irand(size int) int {
	return int(s.drand() * float64(size))
}
