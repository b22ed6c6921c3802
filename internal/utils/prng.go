// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sort"
	"time"
)

// PRNGService wraps math/rand so that every random decision in a run comes
// from one seeded stream. Two services built with the same seed produce the
// same sequence.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the stream was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform float in [min, max). A degenerate range returns min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// ChooseCumulative picks an index from a cumulative weight table
// (cumulative[i] = sum of weights[0..i]). Entries whose weight is zero are
// never returned. Returns -1 for an empty table or zero total weight.
func (s *PRNGService) ChooseCumulative(cumulative []float64) int {
	if len(cumulative) == 0 {
		return -1
	}
	total := cumulative[len(cumulative)-1]
	if total <= 0 {
		return -1
	}
	r := s.rng.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > r })
	if idx >= len(cumulative) {
		// r is strictly below total, so this only guards float rounding
		idx = len(cumulative) - 1
	}
	return idx
}

// Sample returns k distinct indices from [0, n) in random order.
// If k >= n every index is returned.
func (s *PRNGService) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	perm := s.rng.Perm(n)
	if k > n {
		k = n
	}
	return perm[:k]
}
