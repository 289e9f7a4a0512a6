// Package pipeline implements spec.md §2's core entry point: a fixed,
// ordered sequence of pixel-level stages run over a shared raster buffer,
// gated by a module activation set.
package pipeline

import (
	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/filmstock"
	"github.com/keithcw-dot/press/grain"
	"github.com/keithcw-dot/press/halftone"
	"github.com/keithcw-dot/press/inkbleed"
	"github.com/keithcw-dot/press/logging"
	"github.com/keithcw-dot/press/papertooth"
	"github.com/keithcw-dot/press/perr"
	"github.com/keithcw-dot/press/raster"
	"github.com/keithcw-dot/press/resample"
	"github.com/keithcw-dot/press/velox"
)

// Options mirrors spec.md §6's core entry point options:
// { forExport, previewMaxPx, upscale }.
type Options struct {
	ForExport    bool
	PreviewMaxPx int
	Upscale      int
}

// Run implements the core entry point render(source, active, params,
// options) -> raster. It returns an InputError, together with an unchanged
// copy of the source, for a null/zero-dimension source, and an
// InternalInvariantViolation (abort, return the last-good
// raster) should any stage ever change dimensions — which a correct
// implementation never does, but a broken one should fail loudly rather
// than silently corrupt output.
func Run(source raster.Image, active config.ActiveSet, cfg config.Config, opt Options) (raster.Image, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	if source.W <= 0 || source.H <= 0 {
		return source.Clone(), perr.NewInput("source has zero or negative dimensions")
	}

	current := source.Clone()
	lastGood := current

	run := func(name string, fn func(raster.Image) raster.Image) error {
		next := fn(current)
		if next.W != current.W || next.H != current.H {
			return &perr.InternalInvariantViolation{Stage: name, Detail: "output dimensions differ from input"}
		}
		current = next
		lastGood = current
		logger.Debug("stage complete", "stage", name, "w", current.W, "h", current.H)
		return nil
	}

	resampleOpt := resample.Options{}
	if opt.ForExport && opt.Upscale >= 2 {
		resampleOpt.UpscaleFactor = opt.Upscale
	} else if !opt.ForExport && opt.PreviewMaxPx > 0 {
		resampleOpt.PreviewMaxPx = opt.PreviewMaxPx
	}
	current = resample.Apply(current, resampleOpt)
	lastGood = current

	if active.Has(config.ModuleFilmStock) {
		if err := run("filmstock", func(img raster.Image) raster.Image { return filmstock.Apply(img, cfg) }); err != nil {
			return lastGood, err
		}
	}
	if active.Has(config.ModuleVelox) {
		if err := run("velox", func(img raster.Image) raster.Image { return velox.Apply(img, cfg) }); err != nil {
			return lastGood, err
		}
	}
	if active.Has(config.ModuleGrain) {
		if err := run("grain", func(img raster.Image) raster.Image { return grain.Apply(img, cfg) }); err != nil {
			return lastGood, err
		}
	}

	// Halftone is always active regardless of the Host's active set
	// (spec.md §3), so it runs unconditionally.
	if err := run("halftone", func(img raster.Image) raster.Image { return halftone.Apply(img, active, cfg) }); err != nil {
		return lastGood, err
	}

	if active.Has(config.ModuleInkBleed) {
		if err := run("inkbleed", func(img raster.Image) raster.Image { return inkbleed.Apply(img, cfg) }); err != nil {
			return lastGood, err
		}
	}
	if active.Has(config.ModulePaper) {
		if err := run("papertooth", func(img raster.Image) raster.Image { return papertooth.Apply(img, cfg) }); err != nil {
			return lastGood, err
		}
	}

	return current, nil
}
