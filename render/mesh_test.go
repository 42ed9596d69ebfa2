package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/folio/particle"
)

func TestGradientMesh(t *testing.T) {
	accent := color.NRGBA{R: 0, G: 191, B: 255, A: 200}
	transparent := color.NRGBA{R: 0, G: 191, B: 255, A: 0}

	tests := []struct {
		name      string
		stops     []particle.GradientStop
		wantRings int
	}{
		{
			name: "three_stops",
			stops: []particle.GradientStop{
				{Offset: 0, Color: accent},
				{Offset: 0.5, Color: accent},
				{Offset: 1, Color: transparent},
			},
			wantRings: 2,
		},
		{
			name: "unsorted",
			stops: []particle.GradientStop{
				{Offset: 1, Color: transparent},
				{Offset: 0, Color: accent},
			},
			wantRings: 1,
		},
		{
			name:      "short_last_stop_extends_to_rim",
			stops:     []particle.GradientStop{{Offset: 0, Color: accent}, {Offset: 0.4, Color: transparent}},
			wantRings: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vs, is := gradientMesh(10, 20, 4, tc.stops, 8)
			if len(vs) != 1+tc.wantRings*8 {
				t.Fatalf("expected %d vertices, got %d", 1+tc.wantRings*8, len(vs))
			}
			wantIdx := 8*3 + (tc.wantRings-1)*8*6
			if len(is) != wantIdx {
				t.Fatalf("expected %d indices, got %d", wantIdx, len(is))
			}
			for _, i := range is {
				if int(i) >= len(vs) {
					t.Fatalf("index %d out of range", i)
				}
			}
			if vs[0].DstX != 10 || vs[0].DstY != 20 {
				t.Fatalf("first vertex should be the center, got (%v,%v)", vs[0].DstX, vs[0].DstY)
			}
			if math.Abs(float64(vs[0].ColorA)-200.0/255) > 1e-6 {
				t.Fatalf("center should carry the first stop color, alpha=%v", vs[0].ColorA)
			}
			rim := vs[len(vs)-1]
			d := math.Hypot(float64(rim.DstX)-10, float64(rim.DstY)-20)
			if math.Abs(d-4) > 1e-4 {
				t.Fatalf("outer ring should sit on the radius, got %v", d)
			}
		})
	}
}

func TestGradientMeshDegenerate(t *testing.T) {
	stops := []particle.GradientStop{{Offset: 0, Color: color.NRGBA{A: 255}}}
	if vs, _ := gradientMesh(0, 0, 0, stops, 8); vs != nil {
		t.Fatalf("zero radius should produce no mesh")
	}
	if vs, _ := gradientMesh(0, 0, 3, nil, 8); vs != nil {
		t.Fatalf("no stops should produce no mesh")
	}
}
