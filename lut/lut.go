// Package lut builds the 256-entry lookup tables used by several pipeline
// stages (film stock curves, velox). Per spec.md §9, LUTs are built
// once per stage invocation and discarded — nothing here is cached across
// runs.
package lut

// Table256 is a 256-entry byte lookup table, indexed by an 8-bit input
// channel value.
type Table256 [256]uint8

// Identity returns the no-op lookup table.
func Identity() Table256 {
	var t Table256
	for i := range t {
		t[i] = uint8(i)
	}
	return t
}

// Apply looks up v in the table.
func (t Table256) Apply(v uint8) uint8 {
	return t[v]
}

// Build256 constructs a Table256 by sampling f at each of the 256 input
// levels (0..255), clamping f's [0,1]-domain result back into a byte via
// clamp.
func Build256(f func(x float64) float64, clamp func(float64) uint8) Table256 {
	var t Table256
	for i := 0; i < 256; i++ {
		t[i] = clamp(f(float64(i) / 255))
	}
	return t
}

// Smoothstep is the cubic Hermite ease used throughout spec.md §4.1 to
// interpolate between a curve's control points: 3t^2 - 2t^3.
func Smoothstep(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

// ControlPoint is one of a film-stock channel curve's five fixed control
// points (spec.md §3: "five curve control points per RGB channel at
// x = 0, .25, .5, .75, 1.0").
type ControlPoint struct {
	X, Y float64
}

// InterpolateCurve evaluates a piecewise-smoothstep curve through pts
// (assumed sorted by X, spanning [0,1]) at x, per spec.md §4.1 step 1:
// "the piecewise curve interpolates the channel's five control points with
// smoothstep between them".
func InterpolateCurve(pts []ControlPoint, x float64) float64 {
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := len(pts) - 1
	if x >= pts[last].X {
		return pts[last].Y
	}
	for i := 0; i < last; i++ {
		a, b := pts[i], pts[i+1]
		if x >= a.X && x <= b.X {
			span := b.X - a.X
			if span <= 0 {
				return b.Y
			}
			t := (x - a.X) / span
			return a.Y + (b.Y-a.Y)*Smoothstep(t)
		}
	}
	return pts[last].Y
}
