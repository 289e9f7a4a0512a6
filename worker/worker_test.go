package worker

import (
	"testing"
	"time"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/pipeline"
	"github.com/keithcw-dot/press/raster"
)

func solidImage(w, h int, r, g, b uint8) raster.Image {
	img := raster.New(w, h)
	img.Fill([3]uint8{r, g, b})
	return img
}

func TestSubmitAndReceiveResponse(t *testing.T) {
	w := New(nil)
	w.Start()
	defer w.Stop()

	img := solidImage(8, 8, 10, 20, 30)
	cfg := config.Default(nil)
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)

	w.Submit(Request{
		TaskID: "t1",
		Class:  ClassPreview,
		Source: img,
		Active: active,
		Config: cfg,
		Options: pipeline.Options{ForExport: true, Upscale: 1},
	})

	select {
	case resp := <-w.Responses():
		if resp.TaskID != "t1" {
			t.Errorf("TaskID = %q, want t1", resp.TaskID)
		}
		if resp.Err != nil {
			t.Errorf("unexpected error: %v", resp.Err)
		}
		if resp.Result.W != img.W || resp.Result.H != img.H {
			t.Errorf("result dimensions = %dx%d, want %dx%d", resp.Result.W, resp.Result.H, img.W, img.H)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for response")
	}
}

func TestSameClassCoalesces(t *testing.T) {
	w := New(nil)
	// Do not Start the worker yet, so both submissions queue before any
	// processing begins; the second should supersede the first.
	img := solidImage(4, 4, 0, 0, 0)
	cfg := config.Default(nil)
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)

	w.Submit(Request{TaskID: "first", Class: ClassPreview, Source: img, Active: active, Config: cfg, Options: pipeline.Options{Upscale: 1}})
	w.Submit(Request{TaskID: "second", Class: ClassPreview, Source: img, Active: active, Config: cfg, Options: pipeline.Options{Upscale: 1}})

	w.Start()
	defer w.Stop()

	select {
	case resp := <-w.Responses():
		if resp.TaskID != "second" {
			t.Errorf("expected the superseding request to win, got TaskID = %q", resp.TaskID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for response")
	}

	select {
	case resp := <-w.Responses():
		t.Fatalf("expected only one response after coalescing, got a second: %+v", resp)
	case <-time.After(200 * time.Millisecond):
		// Expected: no further response.
	}
}

func TestDifferentClassesBothProcessed(t *testing.T) {
	w := New(nil)
	w.Start()
	defer w.Stop()

	img := solidImage(4, 4, 0, 0, 0)
	cfg := config.Default(nil)
	active := config.NewActiveSet(config.ModuleHalftone, config.ModulePress)

	w.Submit(Request{TaskID: "preview-1", Class: ClassPreview, Source: img, Active: active, Config: cfg, Options: pipeline.Options{Upscale: 1}})
	w.Submit(Request{TaskID: "export-1", Class: ClassExport, Source: img, Active: active, Config: cfg, Options: pipeline.Options{Upscale: 1}})

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case resp := <-w.Responses():
			seen[resp.TaskID] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for responses")
		}
	}
	if !seen["preview-1"] || !seen["export-1"] {
		t.Fatalf("expected both distinct-class requests to be processed, got %v", seen)
	}
}
