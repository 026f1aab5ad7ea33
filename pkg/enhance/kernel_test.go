package enhance

import (
	"math"
	"testing"
)

func TestGaussianKernel_NormalizedAndSymmetric(t *testing.T) {
	for _, radius := range []int{1, 3, 5, 12} {
		k := GaussianKernel(radius)

		if len(k) != 2*radius+1 {
			t.Fatalf("GaussianKernel(%d) len = %d, want %d", radius, len(k), 2*radius+1)
		}

		sum := 0.0
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("GaussianKernel(%d) sum = %v, want 1.0", radius, sum)
		}

		for i := 0; i < radius; i++ {
			if math.Abs(k[i]-k[len(k)-1-i]) > 1e-12 {
				t.Errorf("GaussianKernel(%d) not symmetric at %d", radius, i)
			}
		}

		if k[radius] <= k[0] {
			t.Errorf("GaussianKernel(%d) center %v not above edge %v", radius, k[radius], k[0])
		}
	}
}

func TestFeatherRadius(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 3},  // floor
		{59, 3},  // 59/20 = 2, still floored
		{60, 3},  // exactly 3
		{100, 5},
		{400, 20},
	}

	for _, tt := range tests {
		if got := FeatherRadius(tt.width); got != tt.want {
			t.Errorf("FeatherRadius(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestFeatherMask_BoundsAndPeak(t *testing.T) {
	mask := FeatherMask(80, 60, 4)

	max := 0.0
	for y, row := range mask {
		for x, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("mask[%d][%d] = %v outside [0,1]", y, x, v)
			}
			if v > max {
				max = v
			}
		}
	}

	if max != 1.0 {
		t.Errorf("mask max = %v, want exactly 1.0", max)
	}
}

func TestFeatherMask_MonotoneTowardBorder(t *testing.T) {
	mask := FeatherMask(81, 61, 5)
	cy, cx := 30, 40

	// Walking outward from the center along the middle row and column,
	// weights must never increase.
	for x := cx; x < 80; x++ {
		if mask[cy][x+1] > mask[cy][x]+1e-12 {
			t.Fatalf("row weight rises at x=%d: %v -> %v", x, mask[cy][x], mask[cy][x+1])
		}
	}
	for x := cx; x > 0; x-- {
		if mask[cy][x-1] > mask[cy][x]+1e-12 {
			t.Fatalf("row weight rises at x=%d: %v -> %v", x, mask[cy][x], mask[cy][x-1])
		}
	}
	for y := cy; y < 60; y++ {
		if mask[y+1][cx] > mask[y][cx]+1e-12 {
			t.Fatalf("col weight rises at y=%d: %v -> %v", y, mask[y][cx], mask[y+1][cx])
		}
	}

	// Corners sit at the low end of the field.
	if mask[0][0] != 0.0 {
		t.Errorf("corner weight = %v, want 0 after min-max rescale", mask[0][0])
	}
}

func TestFeatherMask_CenterBeatsBorder(t *testing.T) {
	mask := FeatherMask(100, 100, 5)

	if mask[50][50] <= mask[50][0] {
		t.Errorf("center %v not above border %v", mask[50][50], mask[50][0])
	}
	if mask[50][50] <= mask[0][50] {
		t.Errorf("center %v not above border %v", mask[50][50], mask[0][50])
	}
}
