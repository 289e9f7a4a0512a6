package halftone

import (
	"math"

	"github.com/keithcw-dot/press/prng"
)

// buildInkSkipMap implements spec.md §4.4's "Ink skip map construction":
// N elliptical blobs, major axis orthogonal to feed, seeded per plate as
// plateIndex * 1000 so runs reproduce identically (spec.md §4.4, §8
// invariant 6).
func buildInkSkipMap(w, h, plateIndex int, feedVertical bool, scale, intensity float64) []float64 {
	rnd := prng.New(uint32(plateIndex * 1000))

	n := int(math.Round(math.Max(3, (1-scale)*12+3) * 3))
	baseR := scale * math.Min(float64(w), float64(h)) * 0.6

	type blob struct {
		x, y, rx, ry, v float64
	}
	blobs := make([]blob, n)
	for i := range blobs {
		var rxBase, ryBase float64
		if feedVertical {
			rxBase, ryBase = baseR*0.15, baseR*2.5
		} else {
			rxBase, ryBase = baseR*2.5, baseR*0.15
		}
		mul := rnd.Range(0.5, 1.5)
		blobs[i] = blob{
			x:  rnd.Range(0, float64(w)),
			y:  rnd.Range(0, float64(h)),
			rx: rxBase * mul,
			ry: ryBase * mul,
			v:  rnd.Range(-1, 1) * intensity,
		}
	}

	m := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum, wsum float64
			for _, b := range blobs {
				dx, dy := float64(x)-b.x, float64(y)-b.y
				rx, ry := b.rx, b.ry
				if rx <= 0 {
					rx = 0.0001
				}
				if ry <= 0 {
					ry = 0.0001
				}
				d := math.Sqrt(sq(dx/rx) + sq(dy/ry))
				if d < 1 {
					weight := 1 - d
					sum += b.v * weight
					wsum += weight
				}
			}
			v := 0.0
			if wsum > 0 {
				v = sum / wsum
			}
			m[y*w+x] = clampAbs(v, intensity)
		}
	}
	return m
}

func clampAbs(v, lim float64) float64 {
	if v > lim {
		return lim
	}
	if v < -lim {
		return -lim
	}
	return v
}
