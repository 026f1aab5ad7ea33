package enhance

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/teslashibe/faceup/internal/log"
	"github.com/teslashibe/faceup/pkg/superres"
)

const (
	// Scales this close to 1 are not worth a resample.
	upscaleNoopThreshold = 1.01

	// Below this scale a learned backend buys nothing over bicubic.
	backendMinScale = 1.5
)

// Upscale resizes region by scale. A configured backend is tried first for
// scales of 1.5 and up; any backend failure is logged and swallowed, and
// the region is resized with bicubic interpolation instead, so callers
// always get a region of round(dim*scale) on both axes.
func Upscale(region gocv.Mat, scale float64, backend superres.Backend) gocv.Mat {
	if scale <= upscaleNoopThreshold {
		return region.Clone()
	}

	if backend != nil && scale >= backendMinScale {
		up, err := backend.Upsample(region)
		if err == nil {
			return up
		}
		up.Close()
		log.Warn("super-resolution failed, falling back to bicubic", "error", err)
	}

	w := int(math.Round(float64(region.Cols()) * scale))
	h := int(math.Round(float64(region.Rows()) * scale))

	out := gocv.NewMat()
	gocv.Resize(region, &out, image.Pt(w, h), 0, 0, gocv.InterpolationCubic)
	return out
}
