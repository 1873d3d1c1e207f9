package gamemath

import "math/rand"

// Source is the uniform random source a match draws from.
// Both ranges are inclusive of min; IntBetween is inclusive of max too.
type Source interface {
	IntBetween(min, max int) int
	FloatBetween(min, max float64) float64
}

// Rand is a seedable Source. The same seed always replays the same draws.
type Rand struct {
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

func (r *Rand) FloatBetween(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}
