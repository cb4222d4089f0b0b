package utils

import (
	"math/rand/v2"
	"sync"
)

// Random is a goroutine-safe pseudo random source.
type Random struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a Random seeded with seed. A zero seed draws a random one.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a float in [lo, hi).
func (r *Random) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + (hi-lo)*r.r.Float64()
}

// IntRange returns an int in [lo, hi], both inclusive.
func (r *Random) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.r.IntN(hi-lo+1)
}

// Sample returns n distinct elements of items in random order.
// n is clamped to len(items).
func (r *Random) Sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []string{}
	}

	r.mu.Lock()
	perm := r.r.Perm(len(items))
	r.mu.Unlock()

	out := make([]string, n)
	for i := range n {
		out[i] = items[perm[i]]
	}
	return out
}
