package particle

import (
	"math/rand/v2"
	"time"
)

// Rand is the source for every random draw made by particles. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Seeded returns a deterministic source for seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultRand() Rand {
	return Seeded(uint64(time.Now().UnixNano()))
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
