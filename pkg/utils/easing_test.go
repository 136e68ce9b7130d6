package utils

import (
	"math"
	"testing"
)

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
	}{
		{"EaseOutCubic", EaseOutCubic},
		{"EaseInOutSine", EaseInOutSine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", tt.name, got)
			}
			if got := tt.fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", tt.name, got)
			}
			// 超出范围的输入被限制
			if got := tt.fn(2); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(2) = %v, want 1", tt.name, got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Errorf("Lerp(2, 6, 0.25) = %v, want 3", got)
	}
	if got := Clamp01(-1); got != 0 {
		t.Errorf("Clamp01(-1) = %v", got)
	}
}
