package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestBBoxWireframeVertices(t *testing.T) {
	wire := BBoxWireframeVertices([3]float32{-1, -2, -3}, [3]float32{1, 2, 3})

	if got, want := len(wire), 24*3; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}

	// Every coordinate lies on a box face.
	for i := 0; i < len(wire); i += 3 {
		x, y, z := wire[i], wire[i+1], wire[i+2]
		if x != -1 && x != 1 {
			t.Errorf("vertex %d x = %v, want -1 or 1", i/3, x)
		}
		if y != -2 && y != 2 {
			t.Errorf("vertex %d y = %v, want -2 or 2", i/3, y)
		}
		if z != -3 && z != 3 {
			t.Errorf("vertex %d z = %v, want -3 or 3", i/3, z)
		}
	}
}

func TestCaptureFromPixels(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")

	w, h := 4, 2
	pixels := make([]byte, w*h*4)
	// Mark the GL-bottom row (first in memory) red.
	for x := 0; x < w; x++ {
		pixels[x*4] = 255
		pixels[x*4+3] = 255
	}

	path, err := sc.CaptureFromPixels(pixels, w, h)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	// Red row flips to the image bottom.
	r, _, _, _ := img.At(0, h-1).RGBA()
	if r>>8 != 255 {
		t.Errorf("bottom row red = %d, want 255 (vertical flip missing)", r>>8)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r>>8 != 0 {
		t.Errorf("top row red = %d, want 0", r>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 4, 2); err == nil {
		t.Error("CaptureFromPixels() accepted wrong-size pixel data")
	}
}
