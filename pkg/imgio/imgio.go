// Package imgio loads and saves images through OpenCV.
package imgio

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	// ErrDecode is returned when an input image cannot be read.
	ErrDecode = errors.New("image decode failed")

	// ErrEncode is returned when an output image cannot be written.
	ErrEncode = errors.New("image encode failed")
)

// Load reads a color image from path. The caller owns the returned Mat and
// must Close it.
func Load(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return gocv.NewMat(), fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return img, nil
}

// Save writes img to path. The encoding follows the file extension.
func Save(path string, img gocv.Mat) error {
	if ok := gocv.IMWrite(path, img); !ok {
		return fmt.Errorf("%w: %s", ErrEncode, path)
	}
	return nil
}
