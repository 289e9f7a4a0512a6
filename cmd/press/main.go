// Package main is a command-line host for the press rendering core: it
// decodes a source image, builds a module parameter bundle from flags,
// runs the pipeline once, and writes the finished raster as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	_ "image/jpeg"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/logging"
	"github.com/keithcw-dot/press/pipeline"
	"github.com/keithcw-dot/press/raster"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration.
const (
	logPath      = "press.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

const pkg = "press: "

func main() {
	showVersion := flag.Bool("version", false, "show version")
	in := flag.String("in", "", "source image path (PNG or JPEG)")
	out := flag.String("out", "out.png", "output PNG path")
	mode := flag.String("halftone.mode", "", "halftone mode override: bw, duotone, cmyk")
	stock := flag.String("filmstock.stock", "", "film stock override: trix, hp5, kodachrome, portra, ektachrome")
	forExport := flag.Bool("export", false, "render at export quality (enables upscale)")
	upscale := flag.Int("upscale", 1, "integer export upscale factor")
	previewMaxPx := flag.Int("previewMaxPx", 0, "clamp the longest side to this many pixels when not exporting")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	level := logVerbosity
	if *verbose {
		level = logging.Debug
	}
	log := logging.New(level, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *in == "" {
		log.Error(pkg + "no -in image path given")
		os.Exit(1)
	}

	src, err := loadImage(*in)
	if err != nil {
		log.Error(pkg+"could not load source image", "error", err.Error())
		os.Exit(1)
	}

	cfg := config.Default(log)
	if *mode != "" {
		cfg.HalftoneMode = *mode
	}
	if *stock != "" {
		cfg.FilmStockStock = *stock
	}
	cfg.Validate()

	active := config.NewActiveSet(
		config.ModuleFilmStock,
		config.ModuleVelox,
		config.ModuleGrain,
		config.ModuleHalftone,
		config.ModulePress,
		config.ModuleDotGain,
		config.ModuleRegistration,
		config.ModuleInkSkip,
		config.ModulePaper,
		config.ModuleInkBleed,
		config.ModuleHickeys,
	)

	opt := pipeline.Options{ForExport: *forExport, PreviewMaxPx: *previewMaxPx, Upscale: *upscale}

	result, err := pipeline.Run(src, active, cfg, opt)
	if err != nil {
		log.Error(pkg+"pipeline run failed", "error", err.Error())
		os.Exit(1)
	}

	if err := saveImage(*out, result); err != nil {
		log.Error(pkg+"could not save output image", "error", err.Error())
		os.Exit(1)
	}
	log.Info(pkg+"wrote output", "path", *out)
}

// loadImage decodes a PNG or JPEG file into a raster.Image.
func loadImage(path string) (raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Image{}, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return raster.Image{}, fmt.Errorf("could not decode %q: %w", path, err)
	}

	b := src.Bounds()
	out := raster.New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := out.At(x, y)
			out.Pix[i+0] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(bl >> 8)
			out.Pix[i+3] = uint8(a >> 8)
		}
	}
	return out, nil
}

// saveImage encodes img as a PNG at path.
func saveImage(path string, img raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	dst := image.NewRGBA(image.Rect(0, 0, img.W, img.H))
	copy(dst.Pix, img.Pix)
	return png.Encode(f, dst)
}
