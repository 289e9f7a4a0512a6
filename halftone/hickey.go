package halftone

import (
	"github.com/keithcw-dot/press/prng"
	"github.com/keithcw-dot/press/raster"
)

// applyHickeys implements spec.md §4.4 step 11: count donut-shaped
// defects stamped at seeded positions, seed = plateIndex * 5000 so runs
// reproduce identically (spec.md §8 invariant 6).
func applyHickeys(plate raster.Image, plateIndex, count, sizeMax int, ink [3]uint8) {
	rnd := prng.New(uint32(plateIndex * 5000))
	darker := [3]uint8{
		uint8(float64(ink[0]) * 0.6),
		uint8(float64(ink[1]) * 0.6),
		uint8(float64(ink[2]) * 0.6),
	}
	white := [3]uint8{255, 255, 255}

	for i := 0; i < count; i++ {
		cx := rnd.Range(0, float64(plate.W))
		cy := rnd.Range(0, float64(plate.H))
		outerR := rnd.Range(2, float64(sizeMax))
		if outerR < 2 {
			outerR = 2
		}
		innerR := outerR * rnd.Range(0.35, 0.60)
		drawCircle(plate, cx, cy, outerR, 1, 1, darker)
		drawCircle(plate, cx, cy, innerR, 1, 1, white)
	}
}
