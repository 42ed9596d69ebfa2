package common

import (
	"math"
	"testing"
)

func TestLerpAndClamp(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"lerp_start", Lerp(2, 10, 0), 2},
		{"lerp_mid", Lerp(2, 10, 0.5), 6},
		{"lerp_end", Lerp(2, 10, 1), 10},
		{"clamp_low", Clamp(-3, 0, 5), 0},
		{"clamp_high", Clamp(9, 0, 5), 5},
		{"clamp_inside", Clamp(2.5, 0, 5), 2.5},
		{"clamp01", Clamp01(1.7), 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %v, want %v", c.got, c.want)
			}
		})
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 3, Y: 0}
	b := Vec{X: 0, Y: 4}
	if d := a.Dist(b); math.Abs(d-5) > 1e-12 {
		t.Fatalf("expected 5, got %v", d)
	}
	if d := b.Dist(a); math.Abs(d-5) > 1e-12 {
		t.Fatalf("distance should be symmetric, got %v", d)
	}
	if got := a.Add(b).Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Fatalf("unexpected vec %v", got)
	}
}
