package blur

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Offset is one tap of an oriented convolution kernel: a pixel offset from
// the kernel center and its weight.
type Offset struct {
	DX, DY int
	Weight float64
}

// OrientedKernel builds the paper-oriented elliptical kernel of spec.md
// §4.5 step 2: a disc of radius r, rotated by ang and stretched along its
// minor axis by 1/stretch, with linear falloff 1 - D/r.
func OrientedKernel(radius int, ang, stretch float64) []Offset {
	cos, sin := math.Cos(ang), math.Sin(ang)
	var taps []Offset
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			rx := float64(dx)*cos - float64(dy)*sin
			ry := float64(dx)*sin + float64(dy)*cos
			d := math.Sqrt(rx*rx + (ry/stretch)*(ry/stretch))
			if d <= float64(radius) {
				taps = append(taps, Offset{DX: dx, DY: dy, Weight: 1 - d/float64(radius)})
			}
		}
	}
	return taps
}

// TotalWeight sums the weights of a kernel, used to normalize a
// convolution sum (spec.md §4.5 step 3: "Divide each sum by the kernel's
// total weight").
func TotalWeight(taps []Offset) float64 {
	w := make([]float64, len(taps))
	for i, t := range taps {
		w[i] = t.Weight
	}
	return floats.Sum(w)
}

// Convolve applies taps to field f at every pixel, border-clamped, and
// returns the result unnormalized (callers divide by TotalWeight(taps)).
func Convolve(f Field, taps []Offset) Field {
	out := NewField(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var sum float64
			for _, t := range taps {
				sum += f.At(x+t.DX, y+t.DY) * t.Weight
			}
			out.V[y*f.W+x] = sum
		}
	}
	return out
}
