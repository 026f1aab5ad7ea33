// Package superres provides optional learned upscaling for image regions.
//
// A Backend wraps a pretrained super-resolution network with a fixed integer
// scale factor. Callers treat backend failure as recoverable: the enhance
// pipeline falls back to bicubic interpolation when Upsample errors.
package superres

import (
	"errors"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// ErrModelLoad is returned when a super-resolution model cannot be loaded.
var ErrModelLoad = errors.New("super-resolution model load failed")

// Backend upscales an image region by a fixed integer factor.
type Backend interface {
	// Upsample returns a new Mat scale times larger than img on both axes.
	Upsample(img gocv.Mat) (gocv.Mat, error)

	// Close releases resources.
	Close() error
}

// Known model families.
const (
	AlgoEDSR   = "edsr"
	AlgoLapSRN = "lapsrn"
)

// InferAlgorithm guesses the model family from the model filename,
// case-insensitively. Unknown names fall back to EDSR.
func InferAlgorithm(path string) string {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, AlgoEDSR):
		return AlgoEDSR
	case strings.Contains(name, AlgoLapSRN):
		return AlgoLapSRN
	default:
		return AlgoEDSR
	}
}
