package superres

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// DNN runs a pretrained super-resolution network (EDSR or LapSRN frozen
// graph) through OpenCV's dnn module.
type DNN struct {
	net   gocv.Net
	algo  string
	scale int
	mu    sync.Mutex // protects inference
}

// NewDNN loads a super-resolution model and fixes its scale factor.
// The model family is inferred from the filename.
func NewDNN(modelPath string, scale int) (*DNN, error) {
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: file not found: %s", ErrModelLoad, modelPath)
	}

	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrModelLoad, modelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &DNN{
		net:   net,
		algo:  InferAlgorithm(modelPath),
		scale: scale,
	}, nil
}

// Algorithm returns the inferred model family.
func (d *DNN) Algorithm() string {
	return d.algo
}

// Scale returns the fixed upscale factor.
func (d *DNN) Scale() int {
	return d.scale
}

// Upsample runs the network on img and returns the upscaled region.
// The call blocks until the forward pass completes; there is no timeout.
func (d *DNN) Upsample(img gocv.Mat) (gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("upsample: empty input")
	}

	// SR frozen graphs take raw 0-255 BGR planes, no mean subtraction.
	blob := gocv.BlobFromImage(img, 1.0, image.Pt(img.Cols(), img.Rows()),
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	out := d.net.Forward("")
	defer out.Close()

	dims := out.Size()
	if len(dims) != 4 || dims[1] != 3 {
		return gocv.NewMat(), fmt.Errorf("upsample: unexpected output shape %v", dims)
	}

	outH, outW := dims[2], dims[3]
	if outH != img.Rows()*d.scale || outW != img.Cols()*d.scale {
		return gocv.NewMat(), fmt.Errorf("upsample: model produced %dx%d for scale %d on %dx%d input",
			outW, outH, d.scale, img.Cols(), img.Rows())
	}

	data, err := out.DataPtrFloat32()
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("upsample: read output tensor: %w", err)
	}

	return planesToBGR(data, outW, outH), nil
}

// Close releases the network resources.
func (d *DNN) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.net.Close()
}

// planesToBGR converts an NCHW float tensor in BGR plane order to an
// 8-bit interleaved BGR Mat, clamping to the byte range.
func planesToBGR(data []float32, width, height int) gocv.Mat {
	size := width * height
	pixels := make([]byte, size*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			pix := idx * 3
			pixels[pix+0] = clampByte(data[0*size+idx])
			pixels[pix+1] = clampByte(data[1*size+idx])
			pixels[pix+2] = clampByte(data[2*size+idx])
		}
	}

	out, _ := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, pixels)
	return out
}

func clampByte(v float32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
