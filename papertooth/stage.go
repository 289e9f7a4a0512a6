package papertooth

import (
	"github.com/keithcw-dot/press/colorparse"
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs the paper tooth stage: build the shared paper map, then apply
// highlight noise and shadow mottle per spec.md §4.6's "Apply" step.
func Apply(img raster.Image, cfg config.Config) raster.Image {
	feedVertical := cfg.PressFeed != "horizontal"
	paperMap := buildMap(img.W, img.H, cfg.PaperTexture, cfg.PaperFibers, feedVertical)

	paper := colorparse.MustHex(cfg.HalftonePaperColor, colorparse.RGB{R: 0xf0, G: 0xea, B: 0xd8})
	pr, pg, pb := float64(paper.R), float64(paper.G), float64(paper.B)

	safeT := cfg.PaperTexture
	if safeT < 0.001 {
		safeT = 0.001
	}

	out := img.Clone()
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			idx := y*img.W + x
			mapVal := paperMap[idx]
			i := out.At(x, y)
			l := img.PixelLuminance(i) / 255

			r, g, b := float64(out.Pix[i+0]), float64(out.Pix[i+1]), float64(out.Pix[i+2])

			if l > 0.4 {
				hw := raster.Clamp((l-0.4)/0.6, 0, 1)
				add := mapVal * hw * 150
				r += add
				g += add
				b += add
			}

			if l < 0.6 && mapVal > 0 {
				sw := raster.Clamp((0.6-l)/0.6, 0, 1)
				m := raster.Clamp((1-cfg.PressPressure)*(mapVal/safeT)*sw*2, 0, 1)
				r = raster.Lerp(r, pr, m)
				g = raster.Lerp(g, pg, m)
				b = raster.Lerp(b, pb, m)
			}

			out.Pix[i+0] = raster.ClampToByte(r)
			out.Pix[i+1] = raster.ClampToByte(g)
			out.Pix[i+2] = raster.ClampToByte(b)
		}
	}
	return out
}
