package enhance

import (
	"image"

	"gocv.io/x/gocv"
)

// CLAHE constants. The low clip limit keeps flat regions like skin from
// turning noisy.
const (
	claheClipLimit = 2.0
	claheTileSize  = 8
)

// EqualizeLuma boosts local contrast on the luma channel only, leaving
// chroma untouched so colors stay faithful. The region is converted to
// YCrCb, CLAHE is applied to Y, and the result converted back to BGR.
func EqualizeLuma(region gocv.Mat) gocv.Mat {
	ycrcb := gocv.NewMat()
	defer ycrcb.Close()
	gocv.CvtColor(region, &ycrcb, gocv.ColorBGRToYCrCb)

	channels := gocv.Split(ycrcb)
	defer func() {
		for _, c := range channels {
			c.Close()
		}
	}()

	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Pt(claheTileSize, claheTileSize))
	defer clahe.Close()
	clahe.Apply(channels[0], &channels[0])

	gocv.Merge(channels, &ycrcb)

	out := gocv.NewMat()
	gocv.CvtColor(ycrcb, &out, gocv.ColorYCrCbToBGR)
	return out
}
