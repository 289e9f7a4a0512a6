// Package inkbleed implements spec.md §4.5: directional wet-ink wicking,
// modeled as a density field blurred with a paper-oriented elliptical
// kernel and composited back by density.
package inkbleed

import (
	"math"

	"github.com/keithcw-dot/press/blur"
	"github.com/keithcw-dot/press/colorparse"
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs the ink bleed stage.
func Apply(img raster.Image, cfg config.Config) raster.Image {
	radius := cfg.InkBleedRadius
	if radius < 1 {
		radius = 1
	}
	absorbency := cfg.InkBleedAbsorbency
	directionality := cfg.InkBleedDirectionality

	paper := colorparse.MustHex(cfg.HalftonePaperColor, colorparse.RGB{R: 0xf0, G: 0xea, B: 0xd8})
	pr, pg, pb := float64(paper.R), float64(paper.G), float64(paper.B)

	density := blur.NewField(img.W, img.H)
	red := blur.NewField(img.W, img.H)
	green := blur.NewField(img.W, img.H)
	blue := blur.NewField(img.W, img.H)

	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			i := img.At(x, y)
			r, g, b := float64(img.Pix[i+0]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
			rho := 1 - (1 + 0.299*(r-pr)/255 + 0.587*(g-pg)/255 + 0.114*(b-pb)/255)
			idx := y*img.W + x
			density.V[idx] = raster.Clamp01(rho)
			red.V[idx] = r
			green.V[idx] = g
			blue.V[idx] = b
		}
	}

	ang := 0.0
	if cfg.PressFeed != "horizontal" {
		ang = math.Pi / 2
	}
	stretch := math.Max(0.1, 1-directionality)
	taps := blur.OrientedKernel(radius, ang, stretch)
	total := blur.TotalWeight(taps)
	if total <= 0 {
		total = 1
	}

	densityBlur := blur.Convolve(density, taps)
	redBlur := blur.Convolve(red, taps)
	greenBlur := blur.Convolve(green, taps)
	blueBlur := blur.Convolve(blue, taps)

	out := img.Clone()
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			idx := y*img.W + x
			rhoPrime := densityBlur.V[idx] / total
			rBlurred := redBlur.V[idx] / total
			gBlurred := greenBlur.V[idx] / total
			bBlurred := blueBlur.V[idx] / total

			densityCurve := math.Sqrt(raster.Clamp01(rhoPrime))
			blend := raster.Clamp(densityCurve*absorbency*1.5, 0, 1)

			i := out.At(x, y)
			r, g, b := float64(out.Pix[i+0]), float64(out.Pix[i+1]), float64(out.Pix[i+2])
			out.Pix[i+0] = raster.ClampToByte(raster.Lerp(r, rBlurred, blend))
			out.Pix[i+1] = raster.ClampToByte(raster.Lerp(g, gBlurred, blend))
			out.Pix[i+2] = raster.ClampToByte(raster.Lerp(b, bBlurred, blend))
		}
	}
	return out
}
