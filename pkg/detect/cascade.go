package detect

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// ErrCascadeLoad is returned when the Haar cascade file cannot be loaded.
var ErrCascadeLoad = errors.New("cascade load failed")

// Cascade detects frontal faces with an OpenCV Haar cascade classifier.
type Cascade struct {
	classifier gocv.CascadeClassifier
	mu         sync.Mutex // OpenCV classifiers are not reentrant
}

// NewCascade loads a Haar cascade from the given XML file.
func NewCascade(path string) (*Cascade, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: file not found: %s", ErrCascadeLoad, path)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("%w: %s", ErrCascadeLoad, path)
	}

	return &Cascade{classifier: classifier}, nil
}

// Detect finds face bounding boxes in a color image. The image is
// converted to grayscale and globally histogram-equalized first, which
// makes the cascade robust to uneven lighting.
func (c *Cascade) Detect(img gocv.Mat) []image.Rectangle {
	c.mu.Lock()
	defer c.mu.Unlock()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	gocv.EqualizeHist(gray, &gray)

	return c.classifier.DetectMultiScaleWithParams(
		gray,
		detectScaleFactor,
		detectMinNeighbors,
		0,
		image.Pt(detectMinFaceSize, detectMinFaceSize),
		image.Point{},
	)
}

// Close releases the classifier resources.
func (c *Cascade) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.classifier.Close()
}
