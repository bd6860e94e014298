// Package shuffle produces random orderings of catalog items.
//
// Orderings are always taken over a copy; callers' slices are never touched.
package shuffle

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/abelbrown/cupid/internal/catalog"
)

// Orderer returns a permutation of items. Implementations must not modify
// the input slice.
type Orderer interface {
	Order(items []catalog.Item) []catalog.Item
}

// Shuffle returns a uniformly random permutation of in (Fisher-Yates over a
// copy). intn(n) must return a uniform value in [0, n).
func Shuffle[T any](in []T, intn func(n int) int) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Random is an Orderer backed by a PCG source. Safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random orderer. A zero seed draws one from the
// runtime's entropy source.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Order implements Orderer.
func (r *Random) Order(items []catalog.Item) []catalog.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Shuffle(items, r.rng.IntN)
}

// Identity keeps the input order.
type Identity struct{}

// Order implements Orderer.
func (Identity) Order(items []catalog.Item) []catalog.Item {
	return slices.Clone(items)
}

// Reverse reverses the input order.
type Reverse struct{}

// Order implements Orderer.
func (Reverse) Order(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
