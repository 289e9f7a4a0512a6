// Package halftone implements spec.md §4.4, the most complex stage: it
// turns the continuous-tone buffer into a paper-colored background with up
// to four screened plates multiplicatively composited.
package halftone

import (
	"github.com/keithcw-dot/press/colorparse"
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

// Apply runs the halftone stage: channel setup, per-plate rasterization,
// and multiplicative composition onto a paper-colored base.
func Apply(img raster.Image, active config.ActiveSet, cfg config.Config) raster.Image {
	channels := buildChannels(cfg)

	feedVertical := cfg.PressFeed != "horizontal"

	var skipMaps map[int][]float64
	if active.Has(config.ModuleInkSkip) {
		skipMaps = make(map[int][]float64, len(channels))
		for _, ch := range channels {
			skipMaps[ch.PlateIndex] = buildInkSkipMap(img.W, img.H, ch.PlateIndex, feedVertical, cfg.InkSkipScale, cfg.InkSkipIntensity)
		}
	}

	opt := func(ch Channel) plateOptions {
		var skip []float64
		if skipMaps != nil {
			skip = skipMaps[ch.PlateIndex]
		}
		return plateOptions{
			cellSize:     float64(cfg.HalftoneCellSize),
			dotShape:     cfg.HalftoneDotShape,
			dotGainAmt:   cfg.DotGainAmount,
			dotGainShad:  cfg.DotGainShadow,
			fanout:       cfg.RegistrationFanout,
			feedVertical: feedVertical,
			slur:         cfg.PressSlur,
			skipMap:      skip,
			hickeysOn:    active.Has(config.ModuleHickeys),
			hickeysCount: cfg.HickeysCount,
			hickeysMax:   cfg.HickeysSizeMax,
		}
	}

	plates := make(map[string]raster.Image, len(channels))
	for _, ch := range channels {
		plates[ch.Tag] = renderPlate(img, ch, opt(ch))
	}

	ordered := sortByLaydown(channels, cfg.PressLaydown)

	paper := colorparse.MustHex(cfg.HalftonePaperColor, colorparse.RGB{R: 0xf0, G: 0xea, B: 0xd8})
	out := raster.New(img.W, img.H)
	out.Fill(paper.Array())

	for _, ch := range ordered {
		compositeMultiply(out, plates[ch.Tag])
	}

	raster.CopyAlpha(out, img)
	return out
}

// compositeMultiply composites plate onto out using spec.md §4.4's
// multiplicative blend: out <- out * plate / 255, per channel.
func compositeMultiply(out, plate raster.Image) {
	for p := 0; p < len(out.Pix); p += 4 {
		out.Pix[p+0] = uint8(uint16(out.Pix[p+0]) * uint16(plate.Pix[p+0]) / 255)
		out.Pix[p+1] = uint8(uint16(out.Pix[p+1]) * uint16(plate.Pix[p+1]) / 255)
		out.Pix[p+2] = uint8(uint16(out.Pix[p+2]) * uint16(plate.Pix[p+2]) / 255)
	}
}
