package runner

import (
	"math/rand/v2"
	"time"
)

// Random is a uniform random byte source for the RND instruction.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random source. A seed of 0 seeds from the current time,
// any other seed produces a reproducible sequence.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
	}
}

// RandomByte returns the next random byte.
func (r *Random) RandomByte() uint8 {
	return uint8(r.rng.UintN(256))
}
