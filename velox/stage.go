// Package velox implements spec.md §4.2: a high-contrast sigmoid tone
// crush applied to luminance and replicated across all three channels.
package velox

import (
	"math"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/lut"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs the velox sigmoid crush.
func Apply(img raster.Image, cfg config.Config) raster.Image {
	out := img.Clone()
	t := cfg.VeloxThreshold
	c := cfg.VeloxContrast

	table := lut.Build256(func(x float64) float64 {
		return 1 / (1 + math.Exp(-10*c*(x-t)))
	}, func(v float64) uint8 { return raster.ClampToByte(v * 255) })

	for p := 0; p < len(out.Pix); p += 4 {
		l := out.PixelLuminance(p)
		v := table.Apply(raster.ClampToByte(l))
		out.Pix[p+0] = v
		out.Pix[p+1] = v
		out.Pix[p+2] = v
	}
	return out
}
