// Package papertooth implements spec.md §4.6: a shared paper map (base
// noise plus fiber strokes) that drives both highlight noise and shadow
// mottle.
package papertooth

import (
	"math"
	"math/rand"
)

// buildMap implements spec.md §4.6's "Map build": unseeded base noise plus
// fiber strokes running along the feed direction.
func buildMap(w, h int, texture, fibers float64, feedVertical bool) []float64 {
	m := make([]float64, w*h)
	for i := range m {
		m[i] = (rand.Float64()*2 - 1) * texture
	}

	maxDim := float64(w)
	if h > w {
		maxDim = float64(h)
	}
	n := int(math.Round(maxDim * fibers * 0.3))

	for s := 0; s < n; s++ {
		x0 := rand.Intn(w)
		y0 := rand.Intn(h)
		length := 10 + rand.Float64()*(maxDim*0.2+10-10)
		value := (rand.Float64()*2 - 1) * fibers

		x, y := float64(x0), float64(y0)
		steps := int(math.Ceil(length))
		for step := 0; step < steps; step++ {
			px, py := int(math.Round(x)), int(math.Round(y))
			if px >= 0 && px < w && py >= 0 && py < h {
				m[py*w+px] += value * (1 - float64(step)/length)
			}
			if feedVertical {
				y++
			} else {
				x++
			}
		}
	}
	return m
}
