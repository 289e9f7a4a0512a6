package pipeline

import (
	"math/rand"
	"testing"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

func solidImage(w, h int, r, g, b uint8) raster.Image {
	img := raster.New(w, h)
	img.Fill([3]uint8{r, g, b})
	return img
}

// Invariant 1: dimension preservation when upscale=1 and no preview
// resample fires.
func TestRunPreservesDimensions(t *testing.T) {
	img := solidImage(32, 24, 128, 96, 64)
	cfg := config.Default(nil)
	active := config.NewActiveSet(config.ModuleFilmStock, config.ModuleHalftone, config.ModulePress)
	out, err := Run(img, active, cfg, Options{ForExport: true, Upscale: 1})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.W != img.W || out.H != img.H {
		t.Fatalf("dimensions changed: got %dx%d, want %dx%d", out.W, out.H, img.W, img.H)
	}
}

// Invariant 2: empty active set still runs halftone+press against defaults
// and does not return the original source unchanged.
func TestRunEmptyActiveSetStillHalftones(t *testing.T) {
	img := solidImage(16, 16, 10, 200, 30)
	cfg := config.Default(nil)
	cfg.HalftonePaperColor = "#ffffff"
	cfg.Validate()
	out, err := Run(img, config.ActiveSet{}, cfg, Options{ForExport: true, Upscale: 1})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	same := true
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != img.Pix[i] || out.Pix[i+1] != img.Pix[i+1] || out.Pix[i+2] != img.Pix[i+2] {
			same = false
			break
		}
	}
	if same {
		t.Error("empty active set should still transform the image via always-on halftone/press")
	}
}

// Invariant 3: alpha channel untouched by the whole pipeline.
func TestRunPreservesAlpha(t *testing.T) {
	img := raster.New(10, 10)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 50
		img.Pix[i+1] = 60
		img.Pix[i+2] = 70
		img.Pix[i+3] = 123
	}
	cfg := config.Default(nil)
	active := config.NewActiveSet(
		config.ModuleFilmStock, config.ModuleVelox, config.ModuleGrain,
		config.ModuleHalftone, config.ModulePress, config.ModuleInkBleed, config.ModulePaper,
	)
	out, err := Run(img, active, cfg, Options{ForExport: true, Upscale: 1})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 123 {
			t.Fatalf("alpha not preserved at offset %d: got %d, want 123", i, out.Pix[i])
		}
	}
}

// Invariant 4 fuzzer: all pixel values in [0,255] (trivially true for
// uint8, but this exercises many random configurations without panics).
func TestRunFuzzerDoesNotPanicAndStaysInRange(t *testing.T) {
	rand.Seed(1)
	modes := []string{"bw", "duotone", "cmyk"}
	shapes := []string{"circle", "diamond", "line"}
	for i := 0; i < 25; i++ {
		w := 8 + rand.Intn(40)
		h := 8 + rand.Intn(40)
		img := raster.New(w, h)
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p+0] = uint8(rand.Intn(256))
			img.Pix[p+1] = uint8(rand.Intn(256))
			img.Pix[p+2] = uint8(rand.Intn(256))
			img.Pix[p+3] = 255
		}

		cfg := config.Default(nil)
		cfg.HalftoneMode = modes[rand.Intn(len(modes))]
		cfg.HalftoneDotShape = shapes[rand.Intn(len(shapes))]
		cfg.FilmStockExposure = rand.Float64()*4 - 2
		cfg.GrainAmount = rand.Float64() * 0.5
		cfg.DotGainAmount = rand.Float64()
		cfg.InkBleedRadius = 1 + rand.Intn(8)
		cfg.Validate()

		active := config.NewActiveSet(
			config.ModuleFilmStock, config.ModuleVelox, config.ModuleGrain,
			config.ModuleHalftone, config.ModulePress, config.ModuleDotGain,
			config.ModuleInkSkip, config.ModuleInkBleed, config.ModulePaper,
			config.ModuleHickeys,
		)

		out, err := Run(img, active, cfg, Options{ForExport: true, Upscale: 1})
		if err != nil {
			t.Fatalf("config %d: Run returned error: %v", i, err)
		}
		if out.W != w || out.H != h {
			t.Fatalf("config %d: dimensions changed: got %dx%d, want %dx%d", i, out.W, out.H, w, h)
		}
		for _, v := range out.Pix {
			if v < 0 || v > 255 {
				t.Fatalf("config %d: pixel value out of [0,255]: %d", i, v)
			}
		}
	}
}

func TestRunRejectsZeroDimensionSource(t *testing.T) {
	cfg := config.Default(nil)
	_, err := Run(raster.Image{W: 0, H: 0}, config.ActiveSet{}, cfg, Options{Upscale: 1})
	if err == nil {
		t.Fatal("expected an InputError for a zero-dimension source")
	}
}

// Invariant 5: identity upscale is pixel-identical whether requested as
// export or loupe for the same source and params.
func TestRunUpscaleOneIdenticalAcrossExportAndLoupe(t *testing.T) {
	img := solidImage(20, 20, 90, 140, 200)
	cfg := config.Default(nil)
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)

	exportOut, err := Run(img, active, cfg, Options{ForExport: true, Upscale: 1})
	if err != nil {
		t.Fatalf("export run failed: %v", err)
	}
	loupeOut, err := Run(img, active, cfg, Options{ForExport: false, Upscale: 1})
	if err != nil {
		t.Fatalf("loupe run failed: %v", err)
	}
	if len(exportOut.Pix) != len(loupeOut.Pix) {
		t.Fatal("export/loupe output size mismatch")
	}
	for i := range exportOut.Pix {
		if exportOut.Pix[i] != loupeOut.Pix[i] {
			t.Fatalf("export/loupe mismatch at byte %d: %d vs %d", i, exportOut.Pix[i], loupeOut.Pix[i])
		}
	}
}
