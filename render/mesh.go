package render

import (
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/particle"
)

// gradientSegments is the number of rim vertices per gradient ring.
const gradientSegments = 32

// gradientMesh builds a disc of concentric rings, one per color stop, so
// that per-vertex color interpolation reproduces a radial gradient.
func gradientMesh(cx, cy, r float64, stops []particle.GradientStop, segments int) ([]ebiten.Vertex, []uint16) {
	if r <= 0 || len(stops) == 0 || segments < 3 {
		return nil, nil
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b particle.GradientStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	// rings at every positive offset, plus the rim if the last stop ends early
	type ring struct {
		radius float64
		color  color.NRGBA
	}
	var rings []ring
	for _, s := range sorted {
		if s.Offset > 0 {
			rings = append(rings, ring{radius: math.Min(s.Offset, 1) * r, color: s.Color})
		}
	}
	last := sorted[len(sorted)-1]
	if last.Offset < 1 {
		rings = append(rings, ring{radius: r, color: last.Color})
	}

	vertices := make([]ebiten.Vertex, 0, 1+len(rings)*segments)
	vertices = append(vertices, vertex(cx, cy, sorted[0].Color))
	for _, rg := range rings {
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			vertices = append(vertices, vertex(cx+rg.radius*math.Cos(a), cy+rg.radius*math.Sin(a), rg.color))
		}
	}

	indices := make([]uint16, 0, len(rings)*segments*6)
	seg := uint16(segments)
	for i := uint16(0); i < seg; i++ {
		indices = append(indices, 0, 1+i, 1+(i+1)%seg)
	}
	for k := 0; k+1 < len(rings); k++ {
		inner := uint16(1 + k*segments)
		outer := inner + seg
		for i := uint16(0); i < seg; i++ {
			j := (i + 1) % seg
			indices = append(indices,
				inner+i, inner+j, outer+i,
				inner+j, outer+j, outer+i,
			)
		}
	}
	return vertices, indices
}

func vertex(x, y float64, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}
