package core

import "time"

// Source produces pseudo-random floats in [0, 1).
// Simulation code takes a Source so tests can inject a fixed sequence.
type Source interface {
	Float64() float64
}

// XorShift is a xorshift64 generator. A zero seed is replaced by the
// wall-clock time on first use, so runs are not reproducible unless a
// seed is supplied.
type XorShift struct {
	state uint64
}

// NewXorShift creates a generator with the given seed (0 = wall clock).
func NewXorShift(seed uint64) *XorShift {
	return &XorShift{state: seed}
}

// Float64 advances the generator and returns a value in [0, 1).
func (x *XorShift) Float64() float64 {
	s := x.state
	if s == 0 {
		s = uint64(time.Now().UnixNano()) //nolint:gosec // any bit pattern is a valid seed
		if s == 0 {
			s = 0x9e3779b97f4a7c15
		}
	}

	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s

	// 10^4 buckets keeps the historical resolution of the generator.
	return float64(s%10000) / 10000.0
}

// Range returns a value in [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
