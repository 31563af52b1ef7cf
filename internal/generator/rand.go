package generator

import (
	"math"
	"math/rand"
	"time"
)

// sampler wraps a seeded RNG so every stage draws from one deterministic
// stream. All distribution tables in this package are declarative data fed
// through these few primitives.
type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64) *sampler {
	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

// intBetween returns a uniform integer in [min, max], inclusive both ends.
func (s *sampler) intBetween(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// floatBetween returns a uniform float in [min, max).
func (s *sampler) floatBetween(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// chance returns true with probability p.
func (s *sampler) chance(p float64) bool {
	return s.rng.Float64() < p
}

// pick returns a uniformly chosen element of pool.
func (s *sampler) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// weightedIndex returns an index into weights with probability proportional
// to its weight. Weights must be non-negative with a positive sum.
func (s *sampler) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r := s.rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

// weightedChoice draws one outcome with probability proportional to its weight.
func (s *sampler) weightedChoice(outcomes []string, weights []int) string {
	return outcomes[s.weightedIndex(weights)]
}

// timeBetween returns a uniform second-granularity instant in [start, end].
func (s *sampler) timeBetween(start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	return start.Add(time.Duration(s.rng.Int63n(span+1)) * time.Second)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
