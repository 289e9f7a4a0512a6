package config

import (
	"strconv"

	"github.com/keithcw-dot/press/logging"
)

// Bundle is spec.md §3's module parameter bundle: a mapping from module id
// to a mapping from parameter id to value. Values may be any of string,
// float64, int, or bool; FromBundle coerces loosely (accepting a string
// encoding of a number, as a Host message protocol would deliver) the same
// way revid/config.Update parses string values off the wire.
type Bundle map[string]map[string]interface{}

// Get looks up bundle[module][param], reporting whether it was present.
func (b Bundle) Get(module, param string) (interface{}, bool) {
	m, ok := b[module]
	if !ok {
		return nil, false
	}
	v, ok := m[param]
	return v, ok
}

// FromBundle builds a Config from defaults, then overlays every recognized
// (module, param) found in bundle. Unknown modules and unknown parameters
// are ignored per spec.md §3 ("Unknown modules and unknown parameters are
// ignored"); missing parameters keep their documented default. Accepted
// numeric and enumerated values are then clamped or reset by Validate;
// color strings and grain.weighted are taken as given.
func FromBundle(bundle Bundle, logger logging.Logger) Config {
	c := Default(logger)
	for i := range Variables {
		v := &Variables[i]
		raw, ok := bundle.Get(v.Module, v.Param)
		if !ok {
			continue
		}
		applyRaw(&c, v.Module, v.Param, raw)
	}
	c.Validate()
	return c
}

// applyRaw sets the Config field addressed by (module, param) from a loosely
// typed bundle value. This is a straight-line dispatch table, the same
// shape as revid/config.Variables' per-field Update funcs, just grouped by
// (module, param) instead of a single flat name.
func applyRaw(c *Config, module, param string, raw interface{}) {
	switch module + "." + param {
	case "filmstock.stock":
		c.FilmStockStock = asString(raw)
	case "filmstock.exposure":
		c.FilmStockExposure = asFloat(raw)
	case "filmstock.halation":
		c.FilmStockHalation = asFloat(raw)
	case "filmstock.fade":
		c.FilmStockFade = asFloat(raw)
	case "velox.threshold":
		c.VeloxThreshold = asFloat(raw)
	case "velox.contrast":
		c.VeloxContrast = asFloat(raw)
	case "grain.amount":
		c.GrainAmount = asFloat(raw)
	case "grain.weighted":
		c.GrainWeighted = asBool(raw)
	case "halftone.mode":
		c.HalftoneMode = asString(raw)
	case "halftone.cellSize":
		c.HalftoneCellSize = asInt(raw)
	case "halftone.dotShape":
		c.HalftoneDotShape = asString(raw)
	case "halftone.paperColor":
		c.HalftonePaperColor = asString(raw)
	case "halftone.masterAngle":
		c.HalftoneMasterAngle = asInt(raw)
	case "halftone.angleK":
		c.HalftoneAngleK = asInt(raw)
	case "halftone.angleC":
		c.HalftoneAngleC = asInt(raw)
	case "halftone.angleM":
		c.HalftoneAngleM = asInt(raw)
	case "halftone.angleY":
		c.HalftoneAngleY = asInt(raw)
	case "halftone.duotoneColor1":
		c.HalftoneDuotoneColor1 = asString(raw)
	case "halftone.duotoneColor2":
		c.HalftoneDuotoneColor2 = asString(raw)
	case "press.feed":
		c.PressFeed = asString(raw)
	case "press.laydown":
		c.PressLaydown = asString(raw)
	case "press.pressure":
		c.PressPressure = asFloat(raw)
	case "press.slur":
		c.PressSlur = asFloat(raw)
	case "dotgain.amount":
		c.DotGainAmount = asFloat(raw)
	case "dotgain.shadow":
		c.DotGainShadow = asFloat(raw)
	case "registration.cx":
		c.RegistrationCX = asFloat(raw)
	case "registration.cy":
		c.RegistrationCY = asFloat(raw)
	case "registration.mx":
		c.RegistrationMX = asFloat(raw)
	case "registration.my":
		c.RegistrationMY = asFloat(raw)
	case "registration.yx":
		c.RegistrationYX = asFloat(raw)
	case "registration.yy":
		c.RegistrationYY = asFloat(raw)
	case "registration.fanout":
		c.RegistrationFanout = asFloat(raw)
	case "inkskip.intensity":
		c.InkSkipIntensity = asFloat(raw)
	case "inkskip.scale":
		c.InkSkipScale = asFloat(raw)
	case "paper.texture":
		c.PaperTexture = asFloat(raw)
	case "paper.fibers":
		c.PaperFibers = asFloat(raw)
	case "inkbleed.radius":
		c.InkBleedRadius = asInt(raw)
	case "inkbleed.absorbency":
		c.InkBleedAbsorbency = asFloat(raw)
	case "inkbleed.directionality":
		c.InkBleedDirectionality = asFloat(raw)
	case "hickeys.count":
		c.HickeysCount = asInt(raw)
	case "hickeys.sizeMax":
		c.HickeysSizeMax = asInt(raw)
	}
}

func asString(raw interface{}) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return ""
}

func asFloat(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(raw interface{}) int {
	switch v := raw.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func asBool(raw interface{}) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return v == "on"
		}
		return b
	default:
		return false
	}
}
