package halftone

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

func solidImage(w, h int, r, g, b uint8) raster.Image {
	img := raster.New(w, h)
	img.Fill([3]uint8{r, g, b})
	return img
}

// meanBrightness reports the plate's mean per-pixel brightness, using
// gonum's stat.Mean over the per-pixel RGB averages rather than a
// hand-rolled accumulator.
func meanBrightness(img raster.Image) float64 {
	vals := make([]float64, 0, len(img.Pix)/4)
	for i := 0; i < len(img.Pix); i += 4 {
		vals = append(vals, (float64(img.Pix[i])+float64(img.Pix[i+1])+float64(img.Pix[i+2]))/3)
	}
	return stat.Mean(vals, nil)
}

// Scenario 1: 4x4 solid white input with paperColor white stays white.
func TestSolidWhiteStaysWhite(t *testing.T) {
	img := solidImage(4, 4, 255, 255, 255)
	cfg := config.Default(nil)
	cfg.HalftonePaperColor = "#ffffff"
	cfg.Validate()
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)
	out := Apply(img, active, cfg)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 || out.Pix[i+1] != 255 || out.Pix[i+2] != 255 {
			t.Fatalf("pixel at offset %d not white: %v", i, out.Pix[i:i+3])
		}
	}
}

// Scenario 2: 4x4 solid black, bw mode, produces dark dots somewhere.
func TestSolidBlackProducesDarkDots(t *testing.T) {
	img := solidImage(4, 4, 0, 0, 0)
	cfg := config.Default(nil)
	cfg.HalftoneMode = "bw"
	cfg.HalftoneCellSize = 4
	cfg.HalftoneAngleK = 0
	cfg.HalftonePaperColor = "#ffffff"
	cfg.Validate()
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)
	out := Apply(img, active, cfg)

	minBrightness := 255.0
	for i := 0; i < len(out.Pix); i += 4 {
		b := (float64(out.Pix[i]) + float64(out.Pix[i+1]) + float64(out.Pix[i+2])) / 3
		if b < minBrightness {
			minBrightness = b
		}
	}
	if minBrightness > 10 {
		t.Errorf("expected at least one near-black pixel, min brightness = %v", minBrightness)
	}
}

// Scenario 3: 256x256 ramp whose brightness rises with y; the cmyk K plate's
// value function never increases from one row to the next. No plate is
// rendered here.
func TestRampKCoverageMonotone(t *testing.T) {
	w, h := 256, 256
	img := raster.New(w, h)
	for y := 0; y < h; y++ {
		v := uint8(y * 255 / (h - 1))
		for x := 0; x < w; x++ {
			i := img.At(x, y)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	cfg := config.Default(nil)
	cfg.HalftoneMode = "cmyk"
	cfg.HalftoneCellSize = 8
	cfg.Validate()
	channels := buildChannels(cfg)
	// K plate's value function is 1 - max(R,G,B)/255: for our ramp (R=G=B=v)
	// this is 1 - v/255, strictly decreasing as v (and thus y) increases.
	var kChan Channel
	for _, c := range channels {
		if c.Tag == "k" {
			kChan = c
		}
	}
	prev := 2.0
	for y := 0; y < h; y++ {
		v := uint8(y * 255 / (h - 1))
		val := kChan.Value(v, v, v)
		if val > prev+1e-9 {
			t.Fatalf("K coverage not monotone decreasing at row %d: %v > %v", y, val, prev)
		}
		prev = val
	}
}

// Scenario 4: mid-gray, dotgain=1 should produce darker mean than dotgain=0.
func TestDotGainDarkensOutput(t *testing.T) {
	img := solidImage(128, 128, 128, 128, 128)

	cfgLow := config.Default(nil)
	cfgLow.DotGainAmount = 0
	cfgLow.Validate()
	cfgHigh := config.Default(nil)
	cfgHigh.DotGainAmount = 1
	cfgHigh.Validate()

	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress, config.ModuleDotGain)

	outLow := Apply(img, active, cfgLow)
	outHigh := Apply(img, active, cfgHigh)

	if meanBrightness(outHigh) >= meanBrightness(outLow) {
		t.Errorf("higher dot gain should darken mean brightness: low=%v high=%v",
			meanBrightness(outLow), meanBrightness(outHigh))
	}
}

// Scenario 6: ink-skip seeded determinism across two runs.
func TestInkSkipDeterministicAcrossRuns(t *testing.T) {
	img := solidImage(64, 64, 0, 0, 0)
	cfg := config.Default(nil)
	cfg.Validate()
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress, config.ModuleInkSkip)

	out1 := Apply(img, active, cfg)
	out2 := Apply(img, active, cfg)

	if len(out1.Pix) != len(out2.Pix) {
		t.Fatal("output size mismatch between runs")
	}
	for i := range out1.Pix {
		if out1.Pix[i] != out2.Pix[i] {
			t.Fatalf("ink-skip run not deterministic at byte %d: %d vs %d", i, out1.Pix[i], out2.Pix[i])
		}
	}
}

func TestSortByLaydownOrdersByString(t *testing.T) {
	channels := []Channel{
		{Tag: "y"}, {Tag: "k"}, {Tag: "m"}, {Tag: "c"},
	}
	ordered := sortByLaydown(channels, "k-c-m-y")
	want := []string{"k", "c", "m", "y"}
	for i, tag := range want {
		if ordered[i].Tag != tag {
			t.Fatalf("sortByLaydown[%d] = %q, want %q", i, ordered[i].Tag, tag)
		}
	}
}

func TestApplyAlwaysOnWithEmptyActiveSet(t *testing.T) {
	img := solidImage(8, 8, 200, 50, 50)
	cfg := config.Default(nil)
	cfg.Validate()
	out := Apply(img, config.ActiveSet{}, cfg)
	if out.W != img.W || out.H != img.H {
		t.Fatal("dimensions changed with empty active set")
	}
}
