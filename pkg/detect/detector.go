// Package detect finds the dominant face region in a photograph.
package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector is the interface for face detection backends.
type Detector interface {
	// Detect finds face bounding boxes in a color image.
	Detect(img gocv.Mat) []image.Rectangle

	// Close releases resources.
	Close() error
}

// Fixed detection parameters. Tuned for frontal faces in still photos;
// not exposed as knobs.
const (
	detectScaleFactor  = 1.2
	detectMinNeighbors = 5
	detectMinFaceSize  = 40
)

// ROI padding fractions. Wide enough to pull in hairline and jaw context
// around a detected face without over-including background.
const (
	padFractionX = 8 // pad by width/8 per side
	padFractionY = 6 // pad by height/6 per side
)

// SelectLargest picks the candidate with the biggest area, keeping the
// first seen on ties. ok is false when there are no candidates.
func SelectLargest(rects []image.Rectangle) (best image.Rectangle, ok bool) {
	if len(rects) == 0 {
		return image.Rectangle{}, false
	}

	best = rects[0]
	for _, r := range rects[1:] {
		if r.Dx()*r.Dy() > best.Dx()*best.Dy() {
			best = r
		}
	}
	return best, true
}

// ExpandAndClip pads rect by an eighth of its width and a sixth of its
// height on each side, then clips the result to the image bounds so the
// crop is always valid.
func ExpandAndClip(rect image.Rectangle, bounds image.Point) image.Rectangle {
	padX := rect.Dx() / padFractionX
	padY := rect.Dy() / padFractionY

	expanded := image.Rect(
		rect.Min.X-padX,
		rect.Min.Y-padY,
		rect.Max.X+padX,
		rect.Max.Y+padY,
	)
	return expanded.Intersect(image.Rect(0, 0, bounds.X, bounds.Y))
}
