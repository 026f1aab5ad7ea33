// Package config assembles the run configuration for faceup commands.
package config

import "os"

// Defaults for optional inputs.
const (
	DefaultOutputPath  = "enhanced.png"
	DefaultCascadePath = "haarcascade_frontalface_default.xml"
	DefaultSRScale     = 2.0
	DefaultSharpen     = 1.0
)

// Config holds everything one pipeline run needs. It is built once in main
// and never mutated afterwards; no stage writes back into it.
type Config struct {
	InputPath   string
	OutputPath  string
	CascadePath string
	SRModelPath string // empty disables super-resolution
	SRScale     float64
	Sharpen     float64
}

// CascadePath returns the cascade path from the FACEUP_CASCADE env var.
// Falls back to the provided value if not set.
func CascadePath(fallback string) string {
	if p := os.Getenv("FACEUP_CASCADE"); p != "" {
		return p
	}
	return fallback
}

// SRModelPath returns the super-resolution model path from the
// FACEUP_SR_MODEL env var. Falls back to the provided value if not set.
func SRModelPath(fallback string) string {
	if p := os.Getenv("FACEUP_SR_MODEL"); p != "" {
		return p
	}
	return fallback
}
