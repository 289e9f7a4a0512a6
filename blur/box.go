// Package blur implements the separable box blur used by the film-stock
// halation bloom (spec.md §4.1) and the oriented elliptical kernel used by
// ink bleed (spec.md §4.5).
package blur

import "gonum.org/v1/gonum/floats"

// Field is a W x H scalar field, row-major, used for intermediate
// single-channel computations (brightness for halation, density for ink
// bleed).
type Field struct {
	W, H int
	V    []float64
}

// NewField allocates a zeroed field.
func NewField(w, h int) Field {
	return Field{W: w, H: h, V: make([]float64, w*h)}
}

// At returns f's value at (x, y), clamping the coordinate to the field's
// bounds (spec.md §4.1/§4.5 both sample with border clamping).
func (f Field) At(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.W {
		x = f.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.H {
		y = f.H - 1
	}
	return f.V[y*f.W+x]
}

// BoxBlur applies a separable box blur of the given radius to f, twice
// ("two passes for Gaussian-like falloff", spec.md §4.1 step 2), and
// returns a new field.
func BoxBlur(f Field, radius int) Field {
	if radius < 1 {
		out := NewField(f.W, f.H)
		copy(out.V, f.V)
		return out
	}
	out := boxPass(f, radius)
	out = boxPass(out, radius)
	return out
}

// boxPass runs one horizontal-then-vertical separable box blur pass.
func boxPass(f Field, radius int) Field {
	h := boxHorizontal(f, radius)
	return boxVertical(h, radius)
}

func boxHorizontal(f Field, radius int) Field {
	out := NewField(f.W, f.H)
	window := make([]float64, 0, 2*radius+1)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			window = window[:0]
			for dx := -radius; dx <= radius; dx++ {
				window = append(window, f.At(x+dx, y))
			}
			out.V[y*f.W+x] = floats.Sum(window) / float64(len(window))
		}
	}
	return out
}

func boxVertical(f Field, radius int) Field {
	out := NewField(f.W, f.H)
	window := make([]float64, 0, 2*radius+1)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			window = window[:0]
			for dy := -radius; dy <= radius; dy++ {
				window = append(window, f.At(x, y+dy))
			}
			out.V[y*f.W+x] = floats.Sum(window) / float64(len(window))
		}
	}
	return out
}
