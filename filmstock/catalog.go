// Package filmstock implements spec.md §4.1: per-channel tone curves,
// halation bloom, saturation, B&W conversion and fade, driven by a static
// catalog of film stocks.
package filmstock

import "github.com/keithcw-dot/press/lut"

// Curve holds a channel's five fixed control points (x = 0, .25, .5, .75,
// 1.0), per spec.md §3's film-stock table.
type Curve [5]lut.ControlPoint

// Points returns c as a slice for lut.InterpolateCurve.
func (c Curve) Points() []lut.ControlPoint { return c[:] }

// Halation describes a stock's halation bloom characteristics.
type Halation struct {
	Radius   int        // box-blur radius in pixels
	Tint     [3]float64 // per-channel bloom weight, 0..1
	Strength float64    // stockStrength multiplier in spec.md §4.1 step 2
}

// Stock is one catalog entry: spec.md §3's "Film-stock table" row.
type Stock struct {
	ID         string
	R, G, B    Curve
	Saturation float64
	BW         bool
	BWWeights  [3]float64 // R, G, B luminance weights, only meaningful if BW
	Halation   Halation
}

func flat(a, b, c, d, e float64) Curve {
	return Curve{
		{X: 0, Y: a},
		{X: 0.25, Y: b},
		{X: 0.5, Y: c},
		{X: 0.75, Y: d},
		{X: 1, Y: e},
	}
}

// Catalog is the fixed, read-only catalog of spec.md §6's five stocks.
// Treated as static configuration per spec.md §9, not code — a conforming
// implementation may load it from an embedded table instead of Go literals.
var Catalog = map[string]Stock{
	// Trix: Kodak Tri-X, classic high-contrast black & white.
	"trix": {
		ID: "trix",
		R:  flat(0, 0.14, 0.5, 0.86, 1),
		G:  flat(0, 0.14, 0.5, 0.86, 1),
		B:  flat(0, 0.14, 0.5, 0.86, 1),
		BW: true,
		// Slightly green-weighted panchromatic response, typical of classic
		// B&W emulsions.
		BWWeights: [3]float64{0.30, 0.59, 0.11},
		Halation: Halation{
			Radius:   6,
			Tint:     [3]float64{1, 0.85, 0.6},
			Strength: 0.35,
		},
	},
	// HP5: Ilford HP5 Plus, softer contrast than Tri-X.
	"hp5": {
		ID: "hp5",
		R:  flat(0, 0.19, 0.5, 0.80, 1),
		G:  flat(0, 0.19, 0.5, 0.80, 1),
		B:  flat(0, 0.19, 0.5, 0.80, 1),
		BW: true,
		BWWeights: [3]float64{0.33, 0.55, 0.12},
		Halation: Halation{
			Radius:   5,
			Tint:     [3]float64{1, 0.9, 0.65},
			Strength: 0.3,
		},
	},
	// Kodachrome: vibrant, warm, punchy color slide film.
	"kodachrome": {
		ID:         "kodachrome",
		R:          flat(0.01, 0.22, 0.52, 0.84, 0.99),
		G:          flat(0, 0.21, 0.5, 0.80, 0.97),
		B:          flat(0.02, 0.20, 0.48, 0.78, 0.96),
		Saturation: 1.2,
		Halation: Halation{
			Radius:   7,
			Tint:     [3]float64{1, 0.55, 0.2},
			Strength: 0.55,
		},
	},
	// Portra: Kodak Portra, gentle highlight rolloff, flattering skin tones.
	"portra": {
		ID:         "portra",
		R:          flat(0.02, 0.23, 0.5, 0.77, 0.98),
		G:          flat(0.01, 0.22, 0.5, 0.78, 0.99),
		B:          flat(0.03, 0.24, 0.5, 0.76, 0.97),
		Saturation: 0.95,
		Halation: Halation{
			Radius:   5,
			Tint:     [3]float64{1, 0.7, 0.45},
			Strength: 0.25,
		},
	},
	// Ektachrome: cooler, punchy color slide film with pronounced halation.
	"ektachrome": {
		ID:         "ektachrome",
		R:          flat(0, 0.19, 0.49, 0.82, 0.98),
		G:          flat(0, 0.20, 0.5, 0.81, 0.99),
		B:          flat(0.01, 0.22, 0.52, 0.84, 1),
		Saturation: 1.1,
		Halation: Halation{
			Radius:   8,
			Tint:     [3]float64{0.8, 0.7, 1},
			Strength: 0.45,
		},
	},
}

// Lookup returns the named stock, falling back to kodachrome (the spec.md
// §6 default) if id is unrecognized.
func Lookup(id string) Stock {
	if s, ok := Catalog[id]; ok {
		return s
	}
	return Catalog["kodachrome"]
}
