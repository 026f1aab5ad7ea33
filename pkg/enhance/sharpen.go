package enhance

import (
	"image"

	"gocv.io/x/gocv"
)

// ksizeFor maps sharpen amount to an odd Gaussian window size. Stronger
// sharpening wants a coarser blur to push against.
func ksizeFor(amount float64) int {
	switch {
	case amount < 0.75:
		return 3
	case amount < 1.5:
		return 5
	case amount < 2.5:
		return 7
	default:
		return 9
	}
}

// Sharpen applies an unsharp mask: the region minus a blurred copy of
// itself, scaled by amount and added back, saturating at the byte range.
// amount <= 0 returns an untouched copy.
func Sharpen(region gocv.Mat, amount float64) gocv.Mat {
	if amount <= 0 {
		return region.Clone()
	}

	k := ksizeFor(amount)
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(region, &blurred, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	sharp := gocv.NewMat()
	gocv.AddWeighted(region, 1.0+amount, blurred, -amount, 0, &sharp)
	return sharp
}
