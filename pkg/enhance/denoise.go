package enhance

import "gocv.io/x/gocv"

// Non-local-means strengths, tuned to take out the grain the sharpen and
// equalize stages introduce without softening edges.
const (
	nlmLumaStrength  = 3
	nlmColorStrength = 3
	nlmTemplateSize  = 7
	nlmSearchSize    = 21
)

// Denoise runs a non-local-means pass over the region. Always applied
// after contrast enhancement; not configurable.
func Denoise(region gocv.Mat) gocv.Mat {
	out := gocv.NewMat()
	gocv.FastNlMeansDenoisingColoredWithParams(region, &out,
		nlmLumaStrength, nlmColorStrength, nlmTemplateSize, nlmSearchSize)
	return out
}
