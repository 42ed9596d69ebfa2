package theme

import (
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/particle"
	"golang.org/x/image/colornames"
)

// Name identifies a site theme.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"

	Default = Dark
)

// TransitionDuration is how long a theme switch blends colors.
const TransitionDuration = 300 * time.Millisecond

// Valid reports whether n is a known theme.
func (n Name) Valid() bool {
	return n == Dark || n == Light
}

// Toggle returns the other theme.
func Toggle(n Name) Name {
	if n == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle button glyph: it shows the theme you would switch to.
func Icon(n Name) string {
	if n == Dark {
		return "☀️"
	}
	return "🌙"
}

// Palette is the full set of colors for one theme.
type Palette struct {
	Particles particle.Palette
	Text      color.NRGBA
	Muted     color.NRGBA
	Panel     color.NRGBA
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

var palettes = map[Name]Palette{
	Dark: {
		Particles: particle.DefaultPalette,
		Text:      nrgba(colornames.Whitesmoke),
		Muted:     nrgba(colornames.Lightslategray),
		Panel:     color.NRGBA{R: 17, G: 34, B: 64, A: 235},
	},
	Light: {
		Particles: particle.Palette{
			Background: nrgba(colornames.Ghostwhite),
			Accent:     nrgba(colornames.Dodgerblue),
			Secondary:  nrgba(colornames.Mediumaquamarine),
		},
		Text:  nrgba(colornames.Midnightblue),
		Muted: nrgba(colornames.Slategray),
		Panel: color.NRGBA{R: 255, G: 255, B: 255, A: 235},
	},
}

// PaletteFor returns the palette for n, falling back to the default theme.
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Default]
}

// Blend mixes two colors in Lab space; alpha is mixed linearly.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = common.Clamp01(t)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(common.Lerp(float64(a.A), float64(b.A), t) + 0.5)}
}

// BlendPalette mixes every color of two palettes.
func BlendPalette(a, b Palette, t float64) Palette {
	return Palette{
		Particles: particle.Palette{
			Background: Blend(a.Particles.Background, b.Particles.Background, t),
			Accent:     Blend(a.Particles.Accent, b.Particles.Accent, t),
			Secondary:  Blend(a.Particles.Secondary, b.Particles.Secondary, t),
		},
		Text:  Blend(a.Text, b.Text, t),
		Muted: Blend(a.Muted, b.Muted, t),
		Panel: Blend(a.Panel, b.Panel, t),
	}
}

// Transition blends from one palette to another over TransitionDuration.
type Transition struct {
	from, to Palette
	elapsed  time.Duration
}

func NewTransition(from, to Name) *Transition {
	return NewTransitionFrom(PaletteFor(from), to)
}

// NewTransitionFrom starts at an arbitrary palette, such as one caught
// halfway through another transition.
func NewTransitionFrom(from Palette, to Name) *Transition {
	return &Transition{from: from, to: PaletteFor(to)}
}

// Advance moves the transition forward by dt and returns the current
// palette.
func (t *Transition) Advance(dt time.Duration) Palette {
	t.elapsed += dt
	return t.Current()
}

func (t *Transition) Current() Palette {
	if t.Done() {
		return t.to
	}
	return BlendPalette(t.from, t.to, float64(t.elapsed)/float64(TransitionDuration))
}

func (t *Transition) Done() bool {
	return t.elapsed >= TransitionDuration
}
