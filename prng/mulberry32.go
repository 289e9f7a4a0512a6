// Package prng provides the small, deterministic pseudo-random generator
// required by spec.md §4.4 and §4.9 ("Small PRNG vs. language RNG"): seeded
// maps and hickey placement must reproduce identically across runs and
// across conforming implementations, which rules out the host language's
// default RNG. This is the mulberry32 variant spec.md names explicitly.
package prng

// Mulberry32 is a 32-bit state PRNG. The recurrence matches the reference
// mulberry32 algorithm bit for bit so that seeded maps (ink-skip, hickeys)
// reproduce across implementations, per spec.md §9.
type Mulberry32 struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 returns the next 32-bit pseudo-random value and advances state.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	z := m.state
	z = (z ^ (z >> 15)) * (z | 1)
	z = (z + (z^(z>>7))*(z|61)) ^ z
	return z ^ (z >> 14)
}

// Float64 returns the next pseudo-random value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}

// Range returns the next pseudo-random value uniformly in [lo, hi].
func (m *Mulberry32) Range(lo, hi float64) float64 {
	return lo + m.Float64()*(hi-lo)
}
