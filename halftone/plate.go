package halftone

import (
	"math"

	"github.com/keithcw-dot/press/raster"
)

// plateOptions bundles everything renderPlate needs beyond the channel
// itself: the shared knobs from press, dotgain, registration, inkskip and
// hickeys modules (spec.md §4.4).
type plateOptions struct {
	cellSize     float64
	dotShape     string
	dotGainAmt   float64
	dotGainShad  float64
	fanout       float64
	feedVertical bool
	slur         float64
	skipMap      []float64 // nil if inkskip module inactive
	hickeysOn    bool
	hickeysCount int
	hickeysMax   int
}

// renderPlate implements spec.md §4.4's "Plate rasterization (per plate)"
// in full: grid sampling over a rotated square covering the image
// diagonal, dot gain, shadow fill, ink skip, radius/position/slur, shape
// drawing, and hickeys.
func renderPlate(src raster.Image, ch Channel, opt plateOptions) raster.Image {
	plate := raster.New(src.W, src.H)
	plate.Fill([3]uint8{255, 255, 255})

	cell := opt.cellSize
	theta := ch.Angle * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	cx0, cy0 := float64(src.W)/2, float64(src.H)/2
	diag := math.Sqrt(float64(src.W)*float64(src.W) + float64(src.H)*float64(src.H))
	maxR := cell * 0.5 * 0.98

	maxStretch := opt.fanout * float64(ch.PlateIndex-1) / 3
	var stretchX, stretchY float64
	if opt.feedVertical {
		stretchX = maxStretch / (float64(src.W) / 2)
	} else {
		stretchY = maxStretch / (float64(src.H) / 2)
	}

	var scaleX, scaleY float64 = 1, 1
	if opt.feedVertical {
		scaleY = 1 + opt.slur
	} else {
		scaleX = 1 + opt.slur
	}

	ink := ch.Ink.Array()

	for gy := -diag; gy <= diag; gy += cell {
		for gx := -diag; gx <= diag; gx += cell {
			gcx, gcy := gx+cell/2, gy+cell/2
			imgX := cx0 + gcx*cos - gcy*sin
			imgY := cy0 + gcx*sin + gcy*cos

			if imgX < 0 || imgX >= float64(src.W) || imgY < 0 || imgY >= float64(src.H) {
				continue
			}

			sx, sy := int(math.Round(imgX)), int(math.Round(imgY))
			if sx < 0 {
				sx = 0
			} else if sx >= src.W {
				sx = src.W - 1
			}
			if sy < 0 {
				sy = 0
			} else if sy >= src.H {
				sy = src.H - 1
			}
			si := src.At(sx, sy)
			ink01 := ch.Value(src.Pix[si+0], src.Pix[si+1], src.Pix[si+2])

			// Dot gain.
			ink01 = raster.Clamp01(ink01 + opt.dotGainAmt*ink01*(1-ink01)*2)

			// Shadow fill.
			if ink01 > 0.75 && opt.dotGainShad > 0 {
				ink01 = raster.Clamp01(ink01 + (1-ink01)*opt.dotGainShad*(ink01-0.75)/0.25)
			}

			// Ink skip.
			if opt.skipMap != nil {
				skip := opt.skipMap[sy*src.W+sx]
				ink01 = raster.Clamp01(ink01 * (1 - skip))
			}

			radius := maxR * math.Sqrt(ink01)
			if radius < 0.3 {
				continue
			}

			dx := imgX + ch.OffsetX + (imgX-cx0)*stretchX
			dy := imgY + ch.OffsetY + (imgY-cy0)*stretchY

			switch opt.dotShape {
			case "diamond":
				drawDiamond(plate, dx, dy, radius, scaleX, scaleY, ink)
			case "line":
				thickness := raster.Clamp(radius*1.2, 0.3, maxR)
				drawLine(plate, dx, dy, cell, thickness, scaleX, scaleY, ch.Angle, ink)
			default:
				drawCircle(plate, dx, dy, radius, scaleX, scaleY, ink)
			}
		}
	}

	if opt.hickeysOn {
		applyHickeys(plate, ch.PlateIndex, opt.hickeysCount, opt.hickeysMax, ink)
	}

	raster.CopyAlpha(plate, src)
	return plate
}
