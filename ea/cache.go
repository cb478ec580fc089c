package ea

import "github.com/ericr/backdoor/solver"

// Cache memoizes Fitness by an Instance's canonical variable key, so two
// instances with the same filled variables (in any slot order) never
// re-run the enumerator.
type Cache struct {
	values map[string]Fitness
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{values: map[string]Fitness{}}
}

// Len returns the number of distinct variable sets seen so far.
func (c *Cache) Len() int {
	return len(c.values)
}

// Fitness returns inst's fitness against s, computing and caching it on a
// miss.
func (c *Cache) Fitness(s *solver.Solver, inst *Instance) Fitness {
	key := inst.CanonicalKey()
	if f, ok := c.values[key]; ok {
		return f
	}
	f := Evaluate(s, inst.Variables())
	c.values[key] = f
	return f
}
