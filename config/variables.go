package config

// Variable describes one recognized (module, parameter) pair from spec.md
// §6: its documented default, and how to clamp/default an out-of-range
// value during Validate. This is the same shape as revid/config.Variables,
// generalized from a single flat namespace to module-qualified parameters.
type Variable struct {
	Module  string
	Param   string
	Default func(c *Config)
	Validate func(c *Config)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func oneOf(v string, opts ...string) bool {
	for _, o := range opts {
		if v == o {
			return true
		}
	}
	return false
}

// Variables is the full table of spec.md §6 parameters.
var Variables = []Variable{
	{
		Module:  ModuleFilmStock,
		Param:   "stock",
		Default: func(c *Config) { c.FilmStockStock = "kodachrome" },
		Validate: func(c *Config) {
			if !oneOf(c.FilmStockStock, "trix", "hp5", "kodachrome", "portra", "ektachrome") {
				c.LogInvalidField("FilmStockStock", "kodachrome")
				c.FilmStockStock = "kodachrome"
			}
		},
	},
	{
		Module:  ModuleFilmStock,
		Param:   "exposure",
		Default: func(c *Config) { c.FilmStockExposure = 0 },
		Validate: func(c *Config) { c.FilmStockExposure = clampFloat(c.FilmStockExposure, -2, 2) },
	},
	{
		Module:  ModuleFilmStock,
		Param:   "halation",
		Default: func(c *Config) { c.FilmStockHalation = 0.5 },
		Validate: func(c *Config) { c.FilmStockHalation = clampFloat(c.FilmStockHalation, 0, 1) },
	},
	{
		Module:  ModuleFilmStock,
		Param:   "fade",
		Default: func(c *Config) { c.FilmStockFade = 0 },
		Validate: func(c *Config) { c.FilmStockFade = clampFloat(c.FilmStockFade, 0, 1) },
	},
	{
		Module:  ModuleVelox,
		Param:   "threshold",
		Default: func(c *Config) { c.VeloxThreshold = 0.5 },
		Validate: func(c *Config) { c.VeloxThreshold = clampFloat(c.VeloxThreshold, 0.1, 0.9) },
	},
	{
		Module:  ModuleVelox,
		Param:   "contrast",
		Default: func(c *Config) { c.VeloxContrast = 1.5 },
		Validate: func(c *Config) { c.VeloxContrast = clampFloat(c.VeloxContrast, 1.0, 3.0) },
	},
	{
		Module:  ModuleGrain,
		Param:   "amount",
		Default: func(c *Config) { c.GrainAmount = 0.12 },
		Validate: func(c *Config) { c.GrainAmount = clampFloat(c.GrainAmount, 0, 0.5) },
	},
	{
		Module:  ModuleGrain,
		Param:   "weighted",
		Default: func(c *Config) { c.GrainWeighted = true },
	},
	{
		Module:  ModuleHalftone,
		Param:   "mode",
		Default: func(c *Config) { c.HalftoneMode = "cmyk" },
		Validate: func(c *Config) {
			if !oneOf(c.HalftoneMode, "bw", "duotone", "cmyk") {
				c.LogInvalidField("HalftoneMode", "cmyk")
				c.HalftoneMode = "cmyk"
			}
		},
	},
	{
		Module:  ModuleHalftone,
		Param:   "cellSize",
		Default: func(c *Config) { c.HalftoneCellSize = 10 },
		Validate: func(c *Config) { c.HalftoneCellSize = clampInt(c.HalftoneCellSize, 3, 24) },
	},
	{
		Module:  ModuleHalftone,
		Param:   "dotShape",
		Default: func(c *Config) { c.HalftoneDotShape = "circle" },
		Validate: func(c *Config) {
			if !oneOf(c.HalftoneDotShape, "circle", "diamond", "line") {
				c.LogInvalidField("HalftoneDotShape", "circle")
				c.HalftoneDotShape = "circle"
			}
		},
	},
	{
		Module:  ModuleHalftone,
		Param:   "paperColor",
		Default: func(c *Config) { c.HalftonePaperColor = "#f0ead8" },
	},
	{
		Module:  ModuleHalftone,
		Param:   "masterAngle",
		Default: func(c *Config) { c.HalftoneMasterAngle = 0 },
		Validate: func(c *Config) { c.HalftoneMasterAngle = clampInt(c.HalftoneMasterAngle, 0, 179) },
	},
	{
		Module:  ModuleHalftone,
		Param:   "angleK",
		Default: func(c *Config) { c.HalftoneAngleK = 45 },
		Validate: func(c *Config) { c.HalftoneAngleK = clampInt(c.HalftoneAngleK, 0, 179) },
	},
	{
		Module:  ModuleHalftone,
		Param:   "angleC",
		Default: func(c *Config) { c.HalftoneAngleC = 15 },
		Validate: func(c *Config) { c.HalftoneAngleC = clampInt(c.HalftoneAngleC, 0, 179) },
	},
	{
		Module:  ModuleHalftone,
		Param:   "angleM",
		Default: func(c *Config) { c.HalftoneAngleM = 75 },
		Validate: func(c *Config) { c.HalftoneAngleM = clampInt(c.HalftoneAngleM, 0, 179) },
	},
	{
		Module:  ModuleHalftone,
		Param:   "angleY",
		Default: func(c *Config) { c.HalftoneAngleY = 90 },
		Validate: func(c *Config) { c.HalftoneAngleY = clampInt(c.HalftoneAngleY, 0, 179) },
	},
	{
		// duotoneColor2 (tint) defaults to a warm sepia brown so duotone mode
		// reads as a classic two-tone print out of the box.
		Module:  ModuleHalftone,
		Param:   "duotoneColor1",
		Default: func(c *Config) { c.HalftoneDuotoneColor1 = "#000000" },
	},
	{
		Module:  ModuleHalftone,
		Param:   "duotoneColor2",
		Default: func(c *Config) { c.HalftoneDuotoneColor2 = "#704214" },
	},
	{
		Module:  ModulePress,
		Param:   "feed",
		Default: func(c *Config) { c.PressFeed = "vertical" },
		Validate: func(c *Config) {
			if !oneOf(c.PressFeed, "vertical", "horizontal") {
				c.LogInvalidField("PressFeed", "vertical")
				c.PressFeed = "vertical"
			}
		},
	},
	{
		Module:  ModulePress,
		Param:   "laydown",
		Default: func(c *Config) { c.PressLaydown = "k-c-m-y" },
		Validate: func(c *Config) {
			if !oneOf(c.PressLaydown, "k-c-m-y", "y-m-c-k", "c-m-y-k", "m-c-y-k") {
				c.LogInvalidField("PressLaydown", "k-c-m-y")
				c.PressLaydown = "k-c-m-y"
			}
		},
	},
	{
		Module:  ModulePress,
		Param:   "pressure",
		Default: func(c *Config) { c.PressPressure = 1.0 },
		Validate: func(c *Config) { c.PressPressure = clampFloat(c.PressPressure, 0.1, 1.0) },
	},
	{
		Module:  ModulePress,
		Param:   "slur",
		Default: func(c *Config) { c.PressSlur = 0 },
		Validate: func(c *Config) { c.PressSlur = clampFloat(c.PressSlur, 0, 0.5) },
	},
	{
		Module:  ModuleDotGain,
		Param:   "amount",
		Default: func(c *Config) { c.DotGainAmount = 0.25 },
		Validate: func(c *Config) { c.DotGainAmount = clampFloat(c.DotGainAmount, 0, 1) },
	},
	{
		Module:  ModuleDotGain,
		Param:   "shadow",
		Default: func(c *Config) { c.DotGainShadow = 0.3 },
		Validate: func(c *Config) { c.DotGainShadow = clampFloat(c.DotGainShadow, 0, 1) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "cx",
		Default: func(c *Config) { c.RegistrationCX = 0 },
		Validate: func(c *Config) { c.RegistrationCX = clampFloat(c.RegistrationCX, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "cy",
		Default: func(c *Config) { c.RegistrationCY = 0 },
		Validate: func(c *Config) { c.RegistrationCY = clampFloat(c.RegistrationCY, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "mx",
		Default: func(c *Config) { c.RegistrationMX = 0 },
		Validate: func(c *Config) { c.RegistrationMX = clampFloat(c.RegistrationMX, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "my",
		Default: func(c *Config) { c.RegistrationMY = 0 },
		Validate: func(c *Config) { c.RegistrationMY = clampFloat(c.RegistrationMY, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "yx",
		Default: func(c *Config) { c.RegistrationYX = 0 },
		Validate: func(c *Config) { c.RegistrationYX = clampFloat(c.RegistrationYX, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "yy",
		Default: func(c *Config) { c.RegistrationYY = 0 },
		Validate: func(c *Config) { c.RegistrationYY = clampFloat(c.RegistrationYY, -15, 15) },
	},
	{
		Module:  ModuleRegistration,
		Param:   "fanout",
		Default: func(c *Config) { c.RegistrationFanout = 0 },
		Validate: func(c *Config) { c.RegistrationFanout = clampFloat(c.RegistrationFanout, 0, 10) },
	},
	{
		Module:  ModuleInkSkip,
		Param:   "intensity",
		Default: func(c *Config) { c.InkSkipIntensity = 0.3 },
		Validate: func(c *Config) { c.InkSkipIntensity = clampFloat(c.InkSkipIntensity, 0, 1) },
	},
	{
		Module:  ModuleInkSkip,
		Param:   "scale",
		Default: func(c *Config) { c.InkSkipScale = 0.4 },
		Validate: func(c *Config) { c.InkSkipScale = clampFloat(c.InkSkipScale, 0.05, 1) },
	},
	{
		Module:  ModulePaper,
		Param:   "texture",
		Default: func(c *Config) { c.PaperTexture = 0.15 },
		Validate: func(c *Config) { c.PaperTexture = clampFloat(c.PaperTexture, 0, 0.5) },
	},
	{
		Module:  ModulePaper,
		Param:   "fibers",
		Default: func(c *Config) { c.PaperFibers = 0.05 },
		Validate: func(c *Config) { c.PaperFibers = clampFloat(c.PaperFibers, 0, 0.5) },
	},
	{
		Module:  ModuleInkBleed,
		Param:   "radius",
		Default: func(c *Config) { c.InkBleedRadius = 3 },
		Validate: func(c *Config) { c.InkBleedRadius = clampInt(c.InkBleedRadius, 1, 16) },
	},
	{
		Module:  ModuleInkBleed,
		Param:   "absorbency",
		Default: func(c *Config) { c.InkBleedAbsorbency = 0.8 },
		Validate: func(c *Config) { c.InkBleedAbsorbency = clampFloat(c.InkBleedAbsorbency, 0, 1) },
	},
	{
		Module:  ModuleInkBleed,
		Param:   "directionality",
		Default: func(c *Config) { c.InkBleedDirectionality = 0.7 },
		Validate: func(c *Config) {
			c.InkBleedDirectionality = clampFloat(c.InkBleedDirectionality, 0, 1)
		},
	},
	{
		Module:  ModuleHickeys,
		Param:   "count",
		Default: func(c *Config) { c.HickeysCount = 12 },
		Validate: func(c *Config) { c.HickeysCount = clampInt(c.HickeysCount, 1, 100) },
	},
	{
		Module:  ModuleHickeys,
		Param:   "sizeMax",
		Default: func(c *Config) { c.HickeysSizeMax = 8 },
		Validate: func(c *Config) { c.HickeysSizeMax = clampInt(c.HickeysSizeMax, 3, 30) },
	},
}
