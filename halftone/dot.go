package halftone

import (
	"math"

	"github.com/keithcw-dot/press/raster"
)

// drawCircle fills a filled disk (or ellipse, when scaleX != scaleY from
// slur) at (cx, cy) with the given base radius and ink color.
func drawCircle(plate raster.Image, cx, cy, radius, scaleX, scaleY float64, ink [3]uint8) {
	rx, ry := radius*scaleX, radius*scaleY
	forEachInBBox(plate, cx, cy, rx, ry, func(x, y int) {
		dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
		if sq(dx/rx)+sq(dy/ry) <= 1 {
			setPixel(plate, x, y, ink)
		}
	})
}

// drawDiamond fills the quadrilateral of spec.md §4.4 step 10 with vertices
// (0, ±radius), (±radius, 0), scaled anisotropically by slur.
func drawDiamond(plate raster.Image, cx, cy, radius, scaleX, scaleY float64, ink [3]uint8) {
	rx, ry := radius*scaleX, radius*scaleY
	forEachInBBox(plate, cx, cy, rx, ry, func(x, y int) {
		dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
		if math.Abs(dx/rx)+math.Abs(dy/ry) <= 1 {
			setPixel(plate, x, y, ink)
		}
	})
}

// drawLine fills the rotated rectangle of spec.md §4.4 step 10: length
// cell, thickness clamp(radius*1.2, 0.3, maxR), rotated by the plate's
// screen angle thetaDeg, further anisotropically scaled by slur.
func drawLine(plate raster.Image, cx, cy, cell, thickness, scaleX, scaleY, thetaDeg float64, ink [3]uint8) {
	theta := thetaDeg * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	halfLen := (cell / 2) * scaleX
	halfThick := (thickness / 2) * scaleY
	bound := math.Max(halfLen, halfThick) + 1
	forEachInBBox(plate, cx, cy, bound, bound, func(x, y int) {
		dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
		// Rotate into the line's local frame.
		lx := dx*cos + dy*sin
		ly := -dx*sin + dy*cos
		if math.Abs(lx) <= halfLen && math.Abs(ly) <= halfThick {
			setPixel(plate, x, y, ink)
		}
	})
}

func sq(v float64) float64 { return v * v }

func setPixel(plate raster.Image, x, y int, ink [3]uint8) {
	if !plate.InBounds(x, y) {
		return
	}
	i := plate.At(x, y)
	plate.Pix[i+0] = ink[0]
	plate.Pix[i+1] = ink[1]
	plate.Pix[i+2] = ink[2]
}

// forEachInBBox calls fn for every integer pixel within the axis-aligned
// bounding box of half-extents (rx, ry) around (cx, cy), clipped to the
// plate's bounds.
func forEachInBBox(plate raster.Image, cx, cy, rx, ry float64, fn func(x, y int)) {
	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= plate.W {
		x1 = plate.W - 1
	}
	if y1 >= plate.H {
		y1 = plate.H - 1
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y)
		}
	}
}
