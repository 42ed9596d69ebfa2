package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/folio/particle"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Canvas is a persistent offscreen ebiten image that particle.Field draws
// onto. It outlives frames so the fade fill leaves trails.
type Canvas struct {
	img  *ebiten.Image
	w, h int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(float64(w), float64(h))
	return c
}

// Image returns the backing image for compositing onto the screen.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.w), float64(c.h)
}

// Resize reallocates the backing image when the size changes. The old
// contents are dropped.
func (c *Canvas) Resize(w, h float64) {
	iw := max(1, int(math.Ceil(w)))
	ih := max(1, int(math.Ceil(h)))
	if c.img != nil && iw == c.w && ih == c.h {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(iw, ih)
	c.w, c.h = iw, ih
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(c.img, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *Canvas) FillRadialGradient(cx, cy, r float64, stops []particle.GradientStop) {
	c.drawGradient(cx, cy, r, stops, ebiten.BlendSourceOver)
}

// FillGlowCircle draws a solid core of radius r inside an additive halo
// that fades out over blur pixels.
func (c *Canvas) FillGlowCircle(cx, cy, r, blur float64, clr color.Color) {
	if r <= 0 {
		return
	}
	core := color.NRGBAModel.Convert(clr).(color.NRGBA)
	outer := r + blur
	halo := core
	halo.A = uint8(float64(core.A) * 0.6)
	c.drawGradient(cx, cy, outer, []particle.GradientStop{
		{Offset: 0, Color: halo},
		{Offset: r / outer, Color: halo},
		{Offset: 1, Color: particle.WithAlpha(core, 0)},
	}, ebiten.BlendLighter)
	c.FillCircle(cx, cy, r, core)
}

func (c *Canvas) drawGradient(cx, cy, r float64, stops []particle.GradientStop, blend ebiten.Blend) {
	vs, is := gradientMesh(cx, cy, r, stops, gradientSegments)
	if len(vs) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, Blend: blend}
	c.img.DrawTriangles(vs, is, solidSource(), op)
}
