package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// DefaultSeed seeds the generator used by the sweep
const DefaultSeed = 1500

// Source is a stream of uniformly distributed 32-bit words
type Source interface {
	Uint32() uint32
}

// NewSource returns a 32-bit Mersenne Twister seeded with seed
func NewSource(seed uint32) *prng.MT19937 {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return src
}

// Canonical returns a float64 in [0, 1) built from two words of src,
// low word first.
func Canonical(src Source) float64 {
	const r = 1 << 32
	sum := float64(src.Uint32())
	sum += float64(src.Uint32()) * r
	u := sum / (r * r)
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}
	return u
}

// Uniform returns a float64 in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	// the explicit conversion keeps the compiler from fusing into an FMA
	return float64(Canonical(src)*(hi-lo)) + lo
}
