package random

import "math/rand/v2"

// SeededRandom is a reproducible Random, used to replay self-play games
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeeded creates a SeededRandom from a seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Shuffle permutes n elements using swap
func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	fisherYates(r.Intn, n, swap)
}

// String generates a pseudo-random string from the alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r.Intn, length, alphabet)
}
