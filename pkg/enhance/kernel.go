package enhance

import "math"

// Feather mask sizing: radius grows with the region, never below 3 px.
const (
	featherRadiusDivisor = 20
	featherRadiusMin     = 3
)

// GaussianKernel returns a normalized 1-D Gaussian kernel of length
// 2*radius+1 with sigma equal to the radius. Radii below 1 are clamped.
func GaussianKernel(radius int) []float64 {
	if radius < 1 {
		radius = 1
	}

	sigma := float64(radius)
	k := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// FeatherRadius returns the feather half-width for a region of the given
// width.
func FeatherRadius(roiWidth int) int {
	r := roiWidth / featherRadiusDivisor
	if r < featherRadiusMin {
		return featherRadiusMin
	}
	return r
}

// FeatherMask builds a w by h weight field, 1.0 in the interior and falling
// off smoothly toward the borders. A uniform field of ones is convolved with
// a separable Gaussian under a zero border, so values near the edge lose the
// part of the kernel support that falls outside the field; the result is
// then rescaled to span [0,1] exactly.
func FeatherMask(w, h, radius int) [][]float64 {
	k := GaussianKernel(radius)
	r := len(k) / 2

	field := make([][]float64, h)
	for y := range field {
		field[y] = make([]float64, w)
		for x := range field[y] {
			field[y][x] = 1.0
		}
	}

	// Horizontal pass.
	tmp := make([][]float64, h)
	for y := 0; y < h; y++ {
		tmp[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			sum := 0.0
			for i, kv := range k {
				xi := x + i - r
				if xi >= 0 && xi < w {
					sum += field[y][xi] * kv
				}
			}
			tmp[y][x] = sum
		}
	}

	// Vertical pass.
	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			sum := 0.0
			for i, kv := range k {
				yi := y + i - r
				if yi >= 0 && yi < h {
					sum += tmp[yi][x] * kv
				}
			}
			out[y][x] = sum
		}
	}

	rescaleMinMax(out)
	return out
}

// rescaleMinMax stretches the field to span [0,1]. A constant field maps
// to all ones.
func rescaleMinMax(field [][]float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range field {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	if hi-lo < 1e-12 {
		for _, row := range field {
			for x := range row {
				row[x] = 1.0
			}
		}
		return
	}

	for _, row := range field {
		for x := range row {
			row[x] = (row[x] - lo) / (hi - lo)
		}
	}
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
