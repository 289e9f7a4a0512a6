package filmstock

import (
	"math"

	"github.com/keithcw-dot/press/blur"
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/lut"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs spec.md §4.1's film-stock algorithm end to end: exposure +
// curve LUT, halation bloom, curve application, B&W conversion, saturation,
// fade, in exactly that order ("Order matters", spec.md §4.1).
func Apply(img raster.Image, cfg config.Config) raster.Image {
	stock := Lookup(cfg.FilmStockStock)
	out := img.Clone()

	ev := math.Pow(2, cfg.FilmStockExposure)
	rLUT := buildCurveLUT(stock.R, ev)
	gLUT := buildCurveLUT(stock.G, ev)
	bLUT := buildCurveLUT(stock.B, ev)

	if cfg.FilmStockHalation*stock.Halation.Strength > 0.005 {
		applyHalation(out, stock.Halation, cfg.FilmStockHalation)
	}

	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = rLUT.Apply(out.Pix[i+0])
		out.Pix[i+1] = gLUT.Apply(out.Pix[i+1])
		out.Pix[i+2] = bLUT.Apply(out.Pix[i+2])
	}

	if stock.BW {
		applyBW(out, stock.BWWeights)
	} else if stock.Saturation != 1 {
		applySaturation(out, stock.Saturation)
	}

	if cfg.FilmStockFade > 0.01 {
		applyFade(out, cfg.FilmStockFade, stock.BW)
	}

	return out
}

// buildCurveLUT builds the 256-entry exposure+curve table of spec.md §4.1
// step 1: lut[i] = 255 * piecewiseSmoothstep(clamp(i * 2^EV / 255, 0, 1)).
func buildCurveLUT(curve Curve, ev float64) lut.Table256 {
	pts := curve.Points()
	return lut.Build256(func(x float64) float64 {
		v := raster.Clamp01(x * ev)
		return lut.InterpolateCurve(pts, v)
	}, func(v float64) uint8 { return raster.ClampToByte(v * 255) })
}

// applyHalation implements spec.md §4.1 step 2.
func applyHalation(img raster.Image, h Halation, halation float64) {
	b := blur.NewField(img.W, img.H)
	for i, p := 0, 0; p < len(img.Pix); i, p = i+1, p+4 {
		l := img.PixelLuminance(p) / 255
		v := (l - 0.65) / 0.35
		if v < 0 {
			v = 0
		}
		b.V[i] = v
	}
	blurred := blur.BoxBlur(b, h.Radius)

	for i, p := 0, 0; p < len(img.Pix); i, p = i+1, p+4 {
		bl := blurred.V[i]
		add := bl * halation * h.Strength
		img.Pix[p+0] = raster.ClampToByte(float64(img.Pix[p+0]) + add*h.Tint[0]*255)
		img.Pix[p+1] = raster.ClampToByte(float64(img.Pix[p+1]) + add*h.Tint[1]*255)
		img.Pix[p+2] = raster.ClampToByte(float64(img.Pix[p+2]) + add*h.Tint[2]*255)
	}
}

// applyBW implements spec.md §4.1 step 4.
func applyBW(img raster.Image, w [3]float64) {
	for p := 0; p < len(img.Pix); p += 4 {
		gray := w[0]*float64(img.Pix[p+0]) + w[1]*float64(img.Pix[p+1]) + w[2]*float64(img.Pix[p+2])
		v := raster.ClampToByte(gray)
		img.Pix[p+0] = v
		img.Pix[p+1] = v
		img.Pix[p+2] = v
	}
}

// applySaturation implements spec.md §4.1 step 5.
func applySaturation(img raster.Image, sat float64) {
	for p := 0; p < len(img.Pix); p += 4 {
		l := img.PixelLuminance(p)
		img.Pix[p+0] = raster.ClampToByte(l + (float64(img.Pix[p+0])-l)*sat)
		img.Pix[p+1] = raster.ClampToByte(l + (float64(img.Pix[p+1])-l)*sat)
		img.Pix[p+2] = raster.ClampToByte(l + (float64(img.Pix[p+2])-l)*sat)
	}
}

// applyFade implements spec.md §4.1 step 6.
func applyFade(img raster.Image, fade float64, bw bool) {
	lift := 0.07 * fade
	contrast := 1 - 0.22*fade
	scale := [3]float64{1 + 0.14*fade, 1 + 0.03*fade, 1 - 0.08*fade}
	if bw {
		scale = [3]float64{1, 1, 1}
	}
	desat := 0.35 * fade

	var table [3][256]float64
	for c := 0; c < 3; c++ {
		for i := 0; i < 256; i++ {
			v := float64(i) / 255
			v = (v-0.5)*contrast + 0.5 + lift
			v *= scale[c]
			table[c][i] = v
		}
	}

	for p := 0; p < len(img.Pix); p += 4 {
		rF := table[0][img.Pix[p+0]]
		gF := table[1][img.Pix[p+1]]
		bF := table[2][img.Pix[p+2]]
		l := 0.299*rF + 0.587*gF + 0.114*bF
		img.Pix[p+0] = raster.ClampToByte((l + (rF-l)*(1-desat)) * 255)
		img.Pix[p+1] = raster.ClampToByte((l + (gF-l)*(1-desat)) * 255)
		img.Pix[p+2] = raster.ClampToByte((l + (bF-l)*(1-desat)) * 255)
	}
}
