package particle

import (
	"image/color"
	"math"
)

// Surface is the 2D immediate-mode drawing target a Field renders onto.
type Surface interface {
	Size() (w, h float64)
	Resize(w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	// FillRadialGradient fills a disc whose color ramps through stops,
	// offset 0 at the center and 1 at radius r.
	FillRadialGradient(cx, cy, r float64, stops []GradientStop)
}

// Glower is implemented by surfaces that can draw a blurred glow.
// Surfaces without it get a plain filled circle instead.
type Glower interface {
	FillGlowCircle(cx, cy, r, blur float64, c color.Color)
}

// GradientStop is one color stop of a radial gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Palette holds the colors a Field draws with.
type Palette struct {
	Background color.NRGBA
	Accent     color.NRGBA
	Secondary  color.NRGBA
}

// DefaultPalette matches the dark site theme.
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 10, G: 25, B: 47, A: 255},
	Accent:     color.NRGBA{R: 0, G: 191, B: 255, A: 255},
	Secondary:  color.NRGBA{R: 100, G: 255, B: 218, A: 255},
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if math.IsNaN(a) || a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}
