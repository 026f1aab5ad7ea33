package enhance

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func uniformMat(w, h int, val uint8) gocv.Mat {
	img := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w*3; x++ {
			img.SetUCharAt(y, x, val)
		}
	}
	return img
}

func TestPasteWithFeather_CenterReplacedBorderKept(t *testing.T) {
	canvas := uniformMat(300, 200, 100)
	defer canvas.Close()

	processed := uniformMat(50, 50, 255)
	defer processed.Close()

	roi := image.Rect(100, 50, 200, 150)
	PasteWithFeather(processed, roi, &canvas)

	// The mask plateau covers the ROI center: full replacement.
	center := canvas.GetVecbAt(100, 150)
	for c := 0; c < 3; c++ {
		if center[c] != 255 {
			t.Errorf("center channel %d = %d, want 255", c, center[c])
		}
	}

	// The mask is exactly zero at the ROI corners: original kept.
	corner := canvas.GetVecbAt(50, 100)
	for c := 0; c < 3; c++ {
		if corner[c] != 100 {
			t.Errorf("roi corner channel %d = %d, want 100", c, corner[c])
		}
	}

	// Outside the ROI nothing moves.
	outside := canvas.GetVecbAt(10, 10)
	for c := 0; c < 3; c++ {
		if outside[c] != 100 {
			t.Errorf("outside channel %d = %d, want 100", c, outside[c])
		}
	}

	// Border midpoints blend: strictly between canvas and processed.
	mid := canvas.GetVecbAt(50, 150)
	if mid[0] <= 100 || mid[0] >= 255 {
		t.Errorf("border midpoint = %d, want a blend strictly between 100 and 255", mid[0])
	}
}

func TestPasteWithFeather_ResizesProcessedToROI(t *testing.T) {
	canvas := uniformMat(120, 120, 0)
	defer canvas.Close()

	// Processed region is larger than the ROI, as after super-resolution.
	processed := uniformMat(160, 160, 200)
	defer processed.Close()

	roi := image.Rect(20, 20, 100, 100)
	PasteWithFeather(processed, roi, &canvas)

	center := canvas.GetVecbAt(60, 60)
	if center[0] != 200 {
		t.Errorf("center = %d, want 200 from the resized processed region", center[0])
	}
}
