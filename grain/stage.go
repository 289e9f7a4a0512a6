// Package grain implements spec.md §4.3: luminance-weighted additive film
// grain noise. Per spec.md §3, this source is explicitly unseeded — two
// runs need not (and will not) reproduce identical grain.
package grain

import (
	"math/rand"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs the grain stage.
func Apply(img raster.Image, cfg config.Config) raster.Image {
	out := img.Clone()
	amount := cfg.GrainAmount
	weighted := cfg.GrainWeighted

	for p := 0; p < len(out.Pix); p += 4 {
		w := 1.0
		if weighted {
			l := out.PixelLuminance(p)
			w = (1 - l/255) * 1.5
		}
		r := rand.Float64()*2 - 1 // uniform in [-1, +1], not seeded
		delta := r * amount * 255 * w
		out.Pix[p+0] = raster.ClampToByte(float64(out.Pix[p+0]) + delta)
		out.Pix[p+1] = raster.ClampToByte(float64(out.Pix[p+1]) + delta)
		out.Pix[p+2] = raster.ClampToByte(float64(out.Pix[p+2]) + delta)
	}
	return out
}
