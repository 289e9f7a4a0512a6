package velox

import (
	"testing"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/raster"
)

func TestApplyProducesGrayscale(t *testing.T) {
	img := raster.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := img.At(x, y)
			img.Pix[i+0] = uint8(x * 60)
			img.Pix[i+1] = uint8(y * 60)
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	cfg := config.Default(nil)
	out := Apply(img, cfg)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != out.Pix[i+1] || out.Pix[i+1] != out.Pix[i+2] {
			t.Fatalf("velox output not grayscale at offset %d: %v", i, out.Pix[i:i+3])
		}
	}
}

func TestApplyCrushesDarksAndLights(t *testing.T) {
	cfg := config.Default(nil)
	cfg.VeloxThreshold = 0.5
	cfg.VeloxContrast = 3.0

	dark := raster.New(1, 1)
	dark.Fill([3]uint8{10, 10, 10})
	light := raster.New(1, 1)
	light.Fill([3]uint8{245, 245, 245})

	darkOut := Apply(dark, cfg)
	lightOut := Apply(light, cfg)

	if darkOut.Pix[0] >= lightOut.Pix[0] {
		t.Errorf("dark input should crush toward 0 and light toward 255: got dark=%d light=%d",
			darkOut.Pix[0], lightOut.Pix[0])
	}
}
