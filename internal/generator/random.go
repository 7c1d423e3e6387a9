package generator

import (
	"math/rand"
	"time"
)

// Rand is the only source of randomness in the engine. Shuffles, template
// picks and sampling all go through it so a seeded Rand pins the output.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

func newClockRand() Rand {
	return NewRand(time.Now().UnixNano())
}

func pick[T any](rng Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func shuffled[T any](rng Rand, items []T) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
