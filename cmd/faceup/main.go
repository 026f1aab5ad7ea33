// faceup locates the dominant face in a photograph, enhances it, and
// composites it back into the frame with a feathered blend.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/teslashibe/faceup/internal/config"
	"github.com/teslashibe/faceup/internal/log"
	"github.com/teslashibe/faceup/pkg/detect"
	"github.com/teslashibe/faceup/pkg/enhance"
	"github.com/teslashibe/faceup/pkg/imgio"
	"github.com/teslashibe/faceup/pkg/superres"
)

// Exit codes, one per fatal cause.
const (
	exitUsage       = 1
	exitReadInput   = 2
	exitLoadCascade = 3
	exitWriteOutput = 4
)

func main() {
	input := flag.String("input", "", "input image path (required)")
	output := flag.String("output", config.DefaultOutputPath, "output image path")
	cascade := flag.String("cascade", config.DefaultCascadePath, "Haar cascade XML (env FACEUP_CASCADE)")
	srModel := flag.String("sr-model", "", "super-resolution model file, empty disables (env FACEUP_SR_MODEL)")
	srScale := flag.Float64("sr-scale", config.DefaultSRScale, "super-resolution scale factor")
	sharpen := flag.Float64("sharpen", config.DefaultSharpen, "unsharp mask amount, 0 disables (typical 0-3)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log.Init(*logLevel)

	cfg := config.Config{
		InputPath:   *input,
		OutputPath:  *output,
		CascadePath: config.CascadePath(*cascade),
		SRModelPath: config.SRModelPath(*srModel),
		SRScale:     *srScale,
		Sharpen:     *sharpen,
	}

	if cfg.InputPath == "" {
		fmt.Fprintln(os.Stderr, "-input is required")
		flag.Usage()
		os.Exit(exitUsage)
	}

	os.Exit(run(cfg))
}

func run(cfg config.Config) int {
	img, err := imgio.Load(cfg.InputPath)
	if err != nil {
		log.Error("read input image", "path", cfg.InputPath, "error", err)
		return exitReadInput
	}
	defer img.Close()

	detector, err := detect.NewCascade(cfg.CascadePath)
	if err != nil {
		log.Error("load face cascade", "path", cfg.CascadePath, "error", err)
		return exitLoadCascade
	}
	defer detector.Close()

	var backend superres.Backend
	if cfg.SRModelPath != "" && cfg.SRScale >= 1.5 {
		dnn, err := superres.NewDNN(cfg.SRModelPath, int(math.Round(cfg.SRScale)))
		if err != nil {
			log.Warn("super-resolution model unavailable, continuing without it",
				"path", cfg.SRModelPath, "error", err)
		} else {
			backend = dnn
			defer dnn.Close()
			log.Info("super-resolution enabled",
				"algorithm", dnn.Algorithm(), "scale", dnn.Scale())
		}
	}

	p := &enhance.Pipeline{
		Detector: detector,
		Backend:  backend,
		SRScale:  cfg.SRScale,
		Sharpen:  cfg.Sharpen,
	}

	res := p.Run(img)
	defer res.Output.Close()

	if err := imgio.Save(cfg.OutputPath, res.Output); err != nil {
		log.Error("write output image", "path", cfg.OutputPath, "error", err)
		return exitWriteOutput
	}

	if res.Enhanced {
		fmt.Printf("✨ Saved enhanced image: %s (face region %v)\n", cfg.OutputPath, res.ROI)
	} else {
		fmt.Printf("📷 No face detected, saved original: %s\n", cfg.OutputPath)
	}
	return 0
}
