// Package ea implements the (1+1) evolutionary search for small backdoor
// variable subsets: an Instance representation over a pool of candidate
// variables, pool-swap mutation, a fitness function backed by the solver's
// propagation-assumption enumerator, and a global fitness cache keyed by
// the canonical variable set.
package ea

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseIntervals parses a comma-separated list of 0-based variable
// intervals, each either "N" or "A-B" (inclusive, either direction), as
// used by -ea-vars and -ea-bans.
func ParseIntervals(spec string) (map[int]bool, error) {
	out := map[int]bool{}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return out, nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "-") || strings.HasPrefix(part, "-") {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid interval %q: %w", part, err)
			}
			out[n] = true
			continue
		}

		bounds := strings.SplitN(part, "-", 2)
		a, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", part, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", part, err)
		}
		if a > b {
			a, b = b, a
		}
		for v := a; v <= b; v++ {
			out[v] = true
		}
	}
	return out, nil
}

// Holes returns the set of 0-based variables absent from every clause.
func Holes(nVars int, clauses [][]int) map[int]bool {
	present := make([]bool, nVars)
	for _, c := range clauses {
		for _, p := range c {
			v := p
			if v < 0 {
				v = -v
			}
			v--
			if v >= 0 && v < nVars {
				present[v] = true
			}
		}
	}

	holes := map[int]bool{}
	for v := 0; v < nVars; v++ {
		if !present[v] {
			holes[v] = true
		}
	}
	return holes
}

// BuildPool constructs the EA's variable pool: start from varsSpec (or
// every 0-based variable 0..nVars-1 when empty), remove banned variables,
// structural holes, and variables whose value is no longer Undef, then
// sort ascending. nVars, clauses, and assigned must all agree on the same
// 0-based variable numbering — clauses is raw DIMACS-declared numbering, so
// assigned must translate declared ids to whatever numbering the caller's
// value lookup expects (or, as cmd/backdoor does via Solver.ReserveVars,
// make the solver's internal numbering coincide with declared numbering up
// front).

func BuildPool(nVars int, clauses [][]int, varsSpec, bansSpec string, assigned func(int) bool) ([]int, error) {
	vars, err := ParseIntervals(varsSpec)
	if err != nil {
		return nil, fmt.Errorf("ea-vars: %w", err)
	}
	bans, err := ParseIntervals(bansSpec)
	if err != nil {
		return nil, fmt.Errorf("ea-bans: %w", err)
	}
	holes := Holes(nVars, clauses)

	var candidates []int
	if len(vars) == 0 {
		candidates = make([]int, nVars)
		for i := range candidates {
			candidates[i] = i
		}
	} else {
		for v := range vars {
			candidates = append(candidates, v)
		}
	}

	pool := lo.Filter(candidates, func(v int, _ int) bool {
		if v < 0 || v >= nVars {
			return false
		}
		if bans[v] || holes[v] {
			return false
		}
		if assigned != nil && assigned(v) {
			return false
		}
		return true
	})
	pool = lo.Uniq(pool)
	sort.Ints(pool)

	return pool, nil
}
