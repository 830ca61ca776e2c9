package generator

import "math/rand"

// Sampler is the random source the generator draws from. It is an explicit
// dependency so tests can substitute a deterministic stub without touching
// global seeding.
type Sampler interface {
	// IntN returns a uniform integer in [lo, hi).
	IntN(lo, hi int) int
	// Gauss returns a normal draw with the given mean and stddev.
	Gauss(mean, stddev float64) float64
}

type randSampler struct {
	r *rand.Rand
}

// NewSampler returns a Sampler backed by math/rand with the given seed.
// The same seed reproduces the same draw sequence across runs.
func NewSampler(seed int64) Sampler {
	return &randSampler{r: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) IntN(lo, hi int) int {
	return lo + s.r.Intn(hi-lo)
}

func (s *randSampler) Gauss(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}
