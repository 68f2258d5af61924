package service_test

import (
	"math"
	"testing"

	"github.com/catapou/contador/internal/service"
)

func TestProgressColorByState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state    service.ProgressState
		fraction float64
		want     string
	}{
		{service.OverLimit, 1, "#B36B6B"},
		{service.NoLimitWithConsumption, 0, "#B36B6B"},
		{service.NoLimitNoConsumption, 0, "#CCCCCC"},
		{service.UnderOrAtLimit, 0, "#FFFFFF"},
		{service.UnderOrAtLimit, 1, "#6C9E6C"},
	}
	for _, tc := range cases {
		if got := service.ProgressColor(tc.state, tc.fraction).Hex(); got != tc.want {
			t.Fatalf("ProgressColor(%v, %v) = %s, want %s", tc.state, tc.fraction, got, tc.want)
		}
	}
}

func TestProgressColorInterpolates(t *testing.T) {
	t.Parallel()

	r, g, b := service.ProgressColor(service.UnderOrAtLimit, 0.4).RGB8()
	br, bg, bb := service.ColorBase.RGB8()
	gr, gg, gb := service.ColorGood.RGB8()
	between := func(v, lo, hi uint8) bool {
		if lo > hi {
			lo, hi = hi, lo
		}
		return v > lo && v < hi
	}
	if !between(r, gr, br) || !between(g, gg, bg) || !between(b, gb, bb) {
		t.Fatalf("expected interpolated channels, got %d,%d,%d", r, g, b)
	}
	if got := service.ColorBase.Lerp(service.ColorGood, 0.4).A; math.Abs(got-1) > 1e-12 {
		t.Fatalf("alpha should stay opaque, got %v", got)
	}
}

func TestProgressStateString(t *testing.T) {
	t.Parallel()

	if service.OverLimit.String() != "over_limit" || service.UnderOrAtLimit.String() != "under_limit" {
		t.Fatalf("unexpected state names")
	}
}
