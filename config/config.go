// Package config implements the module parameter bundle of spec.md §3 and
// §6: a typed Config struct with one field per recognized parameter, an
// ActiveSet for the module activation set, and a Variables table (modeled
// directly on revid/config.Variables) that knows how to parse, default and
// clamp every field.
package config

import "github.com/keithcw-dot/press/logging"

// Module ids recognized by spec.md §6.
const (
	ModuleFilmStock    = "filmstock"
	ModuleVelox        = "velox"
	ModuleGrain        = "grain"
	ModuleHalftone     = "halftone"
	ModulePress        = "press"
	ModuleDotGain      = "dotgain"
	ModuleRegistration = "registration"
	ModuleInkSkip      = "inkskip"
	ModulePaper        = "paper"
	ModuleInkBleed     = "inkbleed"
	ModuleHickeys      = "hickeys"
)

// AlwaysActive lists the modules spec.md §3 says "have no disabled state":
// halftone and press are always effectively active even if absent from the
// Host's active set.
var AlwaysActive = map[string]bool{
	ModuleHalftone: true,
	ModulePress:    true,
}

// ActiveSet is spec.md §3's "Active set": a subset of module ids.
type ActiveSet map[string]bool

// NewActiveSet builds an ActiveSet from a list of module ids.
func NewActiveSet(ids ...string) ActiveSet {
	s := make(ActiveSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Has reports whether module id is active, treating halftone and press as
// always active regardless of what the Host passed in.
func (s ActiveSet) Has(id string) bool {
	if AlwaysActive[id] {
		return true
	}
	return s[id]
}

// Config holds every recognized module parameter as a typed field, grouped
// by module, mirroring revid/config.Config's flat-struct-with-doc-comments
// layout. Fields are always populated with documented defaults by
// Default(); a Host only needs to set the fields it cares to override.
type Config struct {
	Logger logging.Logger

	// filmstock
	FilmStockStock     string  // trix, hp5, kodachrome, portra, ektachrome
	FilmStockExposure   float64 // EV, [-2, 2]
	FilmStockHalation    float64 // [0, 1]
	FilmStockFade        float64 // [0, 1]

	// velox
	VeloxThreshold float64 // [0.1, 0.9]
	VeloxContrast  float64 // [1.0, 3.0]

	// grain
	GrainAmount   float64 // [0, 0.5]
	GrainWeighted bool

	// halftone
	HalftoneMode          string // bw, duotone, cmyk
	HalftoneCellSize      int    // [3, 24]
	HalftoneDotShape      string // circle, diamond, line
	HalftonePaperColor    string // #rrggbb
	HalftoneMasterAngle   int    // [0, 179]
	HalftoneAngleK        int    // [0, 179]
	HalftoneAngleC        int    // [0, 179]
	HalftoneAngleM        int    // [0, 179]
	HalftoneAngleY        int    // [0, 179]
	HalftoneDuotoneColor1 string // #rrggbb
	HalftoneDuotoneColor2 string // #rrggbb

	// press
	PressFeed     string  // vertical, horizontal
	PressLaydown  string  // k-c-m-y, y-m-c-k, c-m-y-k, m-c-y-k
	PressPressure float64 // [0.1, 1.0]
	PressSlur     float64 // [0, 0.5]

	// dotgain
	DotGainAmount float64 // [0, 1]
	DotGainShadow float64 // [0, 1]

	// registration (per-channel offsets in px, [-15, 15], plus fan-out [0, 10])
	RegistrationCX     float64
	RegistrationCY     float64
	RegistrationMX     float64
	RegistrationMY     float64
	RegistrationYX     float64
	RegistrationYY     float64
	RegistrationFanout float64

	// inkskip
	InkSkipIntensity float64 // [0, 1]
	InkSkipScale     float64 // [0.05, 1]

	// paper
	PaperTexture float64 // [0, 0.5]
	PaperFibers  float64 // [0, 0.5]

	// inkbleed
	InkBleedRadius         int     // [1, 16]
	InkBleedAbsorbency     float64 // [0, 1]
	InkBleedDirectionality float64 // [0, 1]

	// hickeys
	HickeysCount   int // [1, 100]
	HickeysSizeMax int // [3, 30]
}

// Default returns a Config populated with every spec.md §6 default value.
func Default(logger logging.Logger) Config {
	if logger == nil {
		logger = logging.Nop()
	}
	c := Config{Logger: logger}
	for _, v := range Variables {
		v.Default(&c)
	}
	return c
}

// LogInvalidField logs, at Info, that a field was out of range or unset
// and has been defaulted, mirroring revid/config.Config.LogInvalidField.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// Validate walks Variables and clamps/defaults every field that is out of
// its documented range, per spec.md §7's ParameterMissing policy
// ("silently use defaults; do not fail"). It never returns an error: an
// out-of-range parameter is corrected, not rejected.
func (c *Config) Validate() {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
}
