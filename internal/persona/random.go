package persona

import "math/rand/v2"

// Source is the randomness used for phrase selection. Tests pass a seeded
// source to get reproducible output.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the process-wide generator and is safe for
// concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source. It is not safe for
// concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

func pick(rnd Source, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rnd.IntN(len(list))]
}
