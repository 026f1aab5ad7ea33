package enhance

import (
	"image"

	"gocv.io/x/gocv"
)

// PasteWithFeather blends processed into canvas at roi. The processed
// region is resized to roi's exact pixel size, then combined with the
// canvas per pixel under a feather mask: full replacement at the center,
// blending toward the original at the edges, so no rectangular seam shows.
// The canvas is mutated in place.
func PasteWithFeather(processed gocv.Mat, roi image.Rectangle, canvas *gocv.Mat) {
	w, h := roi.Dx(), roi.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(processed, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationCubic)

	mask := FeatherMask(w, h, FeatherRadius(w))

	dst := canvas.Region(roi)
	defer dst.Close()

	pixels := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := mask[y][x]
			src := resized.GetVecbAt(y, x)
			old := dst.GetVecbAt(y, x)
			pix := (y*w + x) * 3
			for c := 0; c < 3; c++ {
				v := (float64(src[c])/255.0)*m + (float64(old[c])/255.0)*(1.0-m)
				pixels[pix+c] = byte(clamp(v*255.0+0.5, 0, 255))
			}
		}
	}

	blended, _ := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, pixels)
	defer blended.Close()
	blended.CopyTo(&dst)
}
