package inkbleed

import (
	"testing"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

func TestApplyPreservesDimensionsAndAlpha(t *testing.T) {
	img := raster.New(20, 20)
	img.Fill([3]uint8{50, 60, 70})
	cfg := config.Default(nil)
	out := Apply(img, cfg)
	if out.W != img.W || out.H != img.H {
		t.Fatal("ink bleed changed dimensions")
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("alpha not preserved at %d", i)
		}
	}
}

func TestApplyUniformFieldUnchanged(t *testing.T) {
	img := raster.New(16, 16)
	img.Fill([3]uint8{100, 100, 100})
	cfg := config.Default(nil)
	cfg.InkBleedAbsorbency = 0.8
	out := Apply(img, cfg)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 100 || out.Pix[i+1] != 100 || out.Pix[i+2] != 100 {
			t.Fatalf("uniform image should be unchanged by blur+composite, got %v at %d", out.Pix[i:i+3], i)
		}
	}
}

func TestApplyZeroAbsorbencyIsNoop(t *testing.T) {
	img := raster.New(12, 12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			i := img.At(x, y)
			img.Pix[i+0] = uint8(x * 20)
			img.Pix[i+1] = uint8(y * 20)
			img.Pix[i+2] = 50
			img.Pix[i+3] = 255
		}
	}
	cfg := config.Default(nil)
	cfg.InkBleedAbsorbency = 0
	out := Apply(img, cfg)
	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatalf("zero absorbency should be a no-op, byte %d: got %d want %d", i, out.Pix[i], img.Pix[i])
		}
	}
}

func TestDarkSpotBleedsTowardPaper(t *testing.T) {
	img := raster.New(21, 21)
	img.Fill([3]uint8{240, 235, 220})
	i := img.At(10, 10)
	img.Pix[i+0], img.Pix[i+1], img.Pix[i+2] = 0, 0, 0

	cfg := config.Default(nil)
	cfg.HalftonePaperColor = "#f0ebdc"
	cfg.InkBleedRadius = 4
	cfg.InkBleedAbsorbency = 1
	cfg.InkBleedDirectionality = 0
	out := Apply(img, cfg)

	ni := out.At(11, 10)
	if out.Pix[ni] >= 240 {
		t.Errorf("neighbor of a bled dark spot should darken somewhat, got %v", out.Pix[ni])
	}
}
