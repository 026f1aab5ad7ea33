// Package enhance implements the face enhancement pipeline: upscale,
// sharpen, local contrast, denoise, and feathered recompositing of the
// dominant face region back into the frame.
package enhance

import (
	"image"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/teslashibe/faceup/internal/log"
	"github.com/teslashibe/faceup/pkg/detect"
	"github.com/teslashibe/faceup/pkg/superres"
)

// Pipeline runs the full enhancement sequence for one image. A Pipeline
// holds no per-run state; concurrent Run calls are safe as long as the
// detector and backend implementations are.
type Pipeline struct {
	Detector detect.Detector
	Backend  superres.Backend // nil disables super-resolution
	SRScale  float64
	Sharpen  float64
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Output is the composited frame. The caller owns it.
	Output gocv.Mat

	// Enhanced is false when no face was found and the input passed
	// through untouched. That is a defined outcome, not an error.
	Enhanced bool

	// ROI is the padded region that was enhanced, zero when Enhanced is
	// false.
	ROI image.Rectangle
}

// Run enhances the dominant face in img and returns the composited frame.
// img is not modified.
func (p *Pipeline) Run(img gocv.Mat) Result {
	l := log.With("run", uuid.NewString()[:8])

	faces := p.Detector.Detect(img)
	face, ok := detect.SelectLargest(faces)
	if !ok {
		l.Info("no face detected, passing image through")
		return Result{Output: img.Clone()}
	}

	roi := detect.ExpandAndClip(face, image.Pt(img.Cols(), img.Rows()))
	l.Debug("face selected", "face", face.String(), "roi", roi.String())

	view := img.Region(roi)
	region := view.Clone()
	view.Close()
	defer region.Close()

	up := Upscale(region, p.SRScale, p.Backend)
	l.Debug("upscaled", "w", up.Cols(), "h", up.Rows())

	sharp := Sharpen(up, p.Sharpen)
	up.Close()

	eq := EqualizeLuma(sharp)
	sharp.Close()

	den := Denoise(eq)
	eq.Close()
	defer den.Close()

	out := img.Clone()
	PasteWithFeather(den, roi, &out)
	l.Debug("composited", "roi", roi.String())

	return Result{Output: out, Enhanced: true, ROI: roi}
}
