package ea

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// None marks an empty Data slot or a Pool entry that has been swapped away.
const None = -1

// Instance is a candidate backdoor: a fixed-size sequence of pool-variable
// slots (None for an empty slot) plus the pool of variables not currently
// occupying a slot. The pool, like Data, carries None placeholders between
// swaps and is only compacted when convenient.
type Instance struct {
	Data []int
	Pool []int
}

// NewInstance draws size variables without replacement from pool to fill a
// fresh Instance, per the (1+1) EA's initialization rule: repeatedly pick a
// uniformly random pool slot and, if it isn't already empty, swap it into
// the next instance slot. When the pool holds fewer than size variables,
// every pool variable is drawn and the remaining slots stay None.
func NewInstance(pool []int, size int, rng *rand.Rand) *Instance {
	inst := &Instance{
		Data: makeFilled(size, None),
		Pool: append([]int{}, pool...),
	}

	remaining := len(inst.Pool)
	for i := 0; i < size; i++ {
		if remaining == 0 {
			break
		}
		for {
			idx := rng.Intn(len(inst.Pool))
			if inst.Pool[idx] == None {
				continue
			}
			inst.Data[i] = inst.Pool[idx]
			inst.Pool[idx] = None
			remaining--
			break
		}
	}
	inst.compactPool()

	return inst
}

func makeFilled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// compactPool drops the None placeholders a swap leaves behind.
func (inst *Instance) compactPool() {
	inst.Pool = lo.Filter(inst.Pool, func(v int, _ int) bool { return v != None })
}

// Copy returns an independent copy with no cached fitness carried over;
// callers mutate the copy and re-evaluate.
func (inst *Instance) Copy() *Instance {
	return &Instance{
		Data: append([]int{}, inst.Data...),
		Pool: append([]int{}, inst.Pool...),
	}
}

// Mutate returns a mutated copy: each Data slot independently swaps with a
// uniformly random Pool position with probability 1/len(Data).
func (inst *Instance) Mutate(rng *rand.Rand) *Instance {
	m := inst.Copy()
	n := len(m.Data)
	if n == 0 || len(m.Pool) == 0 {
		return m
	}

	p := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			j := rng.Intn(len(m.Pool))
			m.Data[i], m.Pool[j] = m.Pool[j], m.Data[i]
		}
	}
	return m
}

// NumVariables returns the count of filled (non-None) Data slots.
func (inst *Instance) NumVariables() int {
	n := 0
	for _, v := range inst.Data {
		if v != None {
			n++
		}
	}
	return n
}

// Variables returns the filled Data slots, sorted ascending.
func (inst *Instance) Variables() []int {
	vars := lo.Filter(inst.Data, func(v int, _ int) bool { return v != None })
	sort.Ints(vars)
	return vars
}

// CanonicalKey is the fitness cache key: the sorted variable set, content
// addressed independent of slot order.
func (inst *Instance) CanonicalKey() string {
	vars := inst.Variables()
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// String renders the variable set the way the original implementation's
// stream operator does: a bracketed, comma-separated list.
func (inst *Instance) String() string {
	return "[" + inst.CanonicalKey() + "]"
}
