// FilePath: internal/simulation/source.go
package simulation

import "math/rand/v2"

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide generator, which is safe for
// concurrent use and seeded randomly at startup.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// NewSeededSource returns a reproducible source. The returned source must
// not be shared between goroutines.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
