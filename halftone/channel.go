package halftone

import (
	"sort"
	"strings"

	"github.com/keithcw-dot/press/colorparse"
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

// ValueFunc computes a plate's ink coverage in [0, 1] from a source pixel.
type ValueFunc func(r, g, b uint8) float64

// Channel is one plate before laydown sorting: spec.md §4.4's per-mode
// channel setup. PlateIndex is the pre-sort index used by fan-out and
// hickey seeding (spec.md §9: "the pre-sort index... not the
// laydown-sorted draw order").
type Channel struct {
	Tag        string // "k", "c", "m", or "y" — position key into the laydown string
	Ink        colorparse.RGB
	Angle      float64 // degrees, includes masterAngle
	Value      ValueFunc
	PlateIndex int // 1-based, pre-sort
	OffsetX    float64
	OffsetY    float64
}

func lum(r, g, b uint8) float64 { return raster.Luminance601(r, g, b) }

// buildChannels implements spec.md §4.4's "Channel setup by mode".
func buildChannels(cfg config.Config) []Channel {
	master := float64(cfg.HalftoneMasterAngle)
	switch cfg.HalftoneMode {
	case "bw":
		ink := colorparse.MustHex(cfg.HalftoneDuotoneColor1, colorparse.InkBlack)
		return []Channel{
			{
				Tag:        "k",
				Ink:        ink,
				Angle:      float64(cfg.HalftoneAngleK) + master,
				Value:      func(r, g, b uint8) float64 { return 1 - lum(r, g, b)/255 },
				PlateIndex: 1,
			},
		}
	case "duotone":
		ink1 := colorparse.MustHex(cfg.HalftoneDuotoneColor1, colorparse.InkBlack)
		ink2 := colorparse.MustHex(cfg.HalftoneDuotoneColor2, colorparse.RGB{R: 0x70, G: 0x42, B: 0x14})
		return []Channel{
			{
				Tag:        "k",
				Ink:        ink1,
				Angle:      float64(cfg.HalftoneAngleK) + master,
				Value:      func(r, g, b uint8) float64 { return 1 - lum(r, g, b)/255 },
				PlateIndex: 1,
			},
			{
				Tag:        "c",
				Ink:        ink2,
				Angle:      float64(cfg.HalftoneAngleC) + master,
				Value:      func(r, g, b uint8) float64 { return lum(r, g, b) / 255 },
				PlateIndex: 2,
				OffsetX:    cfg.RegistrationCX,
				OffsetY:    cfg.RegistrationCY,
			},
		}
	default: // cmyk
		return []Channel{
			{
				Tag:        "k",
				Ink:        colorparse.InkBlack,
				Angle:      float64(cfg.HalftoneAngleK) + master,
				Value:      func(r, g, b uint8) float64 { return kValue(r, g, b) },
				PlateIndex: 1,
			},
			{
				Tag:        "c",
				Ink:        colorparse.InkCyan,
				Angle:      float64(cfg.HalftoneAngleC) + master,
				Value:      func(r, g, b uint8) float64 { return cValue(r, g, b) },
				PlateIndex: 2,
				OffsetX:    cfg.RegistrationCX,
				OffsetY:    cfg.RegistrationCY,
			},
			{
				Tag:        "m",
				Ink:        colorparse.InkMagenta,
				Angle:      float64(cfg.HalftoneAngleM) + master,
				Value:      func(r, g, b uint8) float64 { return mValue(r, g, b) },
				PlateIndex: 3,
				OffsetX:    cfg.RegistrationMX,
				OffsetY:    cfg.RegistrationMY,
			},
			{
				Tag:        "y",
				Ink:        colorparse.InkYellow,
				Angle:      float64(cfg.HalftoneAngleY) + master,
				Value:      func(r, g, b uint8) float64 { return yValue(r, g, b) },
				PlateIndex: 4,
				OffsetX:    cfg.RegistrationYX,
				OffsetY:    cfg.RegistrationYY,
			},
		}
	}
}

// kValue, cValue, mValue, yValue implement spec.md §4.4's CMYK separation
// formulas.
func kValue(r, g, b uint8) float64 {
	maxC := maxOf(float64(r), float64(g), float64(b)) / 255
	return 1 - maxC
}

func cValue(r, g, b uint8) float64 {
	k := kValue(r, g, b)
	if k >= 1 {
		return 0
	}
	return (1 - float64(r)/255 - k) / (1 - k)
}

func mValue(r, g, b uint8) float64 {
	k := kValue(r, g, b)
	if k >= 1 {
		return 0
	}
	return (1 - float64(g)/255 - k) / (1 - k)
}

func yValue(r, g, b uint8) float64 {
	k := kValue(r, g, b)
	if k >= 1 {
		return 0
	}
	return (1 - float64(b)/255 - k) / (1 - k)
}

func maxOf(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// sortByLaydown reorders channels according to the laydown string (e.g.
// "k-c-m-y"), per spec.md §4.4: "Plates are sorted by the laydown string;
// plates render in that order." Tags in channels but absent from the
// laydown string are left where stable-sort puts unmatched entries (never
// happens in practice: every recognized laydown value lists k, c, m and y).
func sortByLaydown(channels []Channel, laydown string) []Channel {
	order := strings.Split(laydown, "-")
	rank := make(map[string]int, len(order))
	for i, tag := range order {
		rank[tag] = i
	}
	out := make([]Channel, len(channels))
	copy(out, channels)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Tag] < rank[out[j].Tag]
	})
	return out
}
