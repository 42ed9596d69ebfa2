// Package raster is a software particle.Surface over an in-memory RGBA
// image. It has no glow support, so particles fall back to plain discs.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/particle"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

type Surface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func New(w, h int) *Surface {
	s := &Surface{z: vector.NewRasterizer(1, 1)}
	s.Resize(float64(w), float64(h))
	return s
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resize reallocates the image, keeping whatever overlaps the old one.
func (s *Surface) Resize(w, h float64) {
	iw := max(1, int(math.Ceil(w)))
	ih := max(1, int(math.Ceil(h)))
	if s.img != nil && s.img.Bounds().Dx() == iw && s.img.Bounds().Dy() == ih {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, iw, ih))
	if s.img != nil {
		draw.Draw(next, next.Bounds(), s.img, image.Point{}, draw.Src)
	}
	s.img = next
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.fill(x, y, x+w, y+h, image.NewUniform(c), func(z *vector.Rasterizer, ox, oy float32) {
		x0, y0 := float32(x)-ox, float32(y)-oy
		x1, y1 := float32(x+w)-ox, float32(y+h)-oy
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	pad := width / 2
	s.fill(math.Min(x0, x1)-pad, math.Min(y0, y1)-pad, math.Max(x0, x1)+pad, math.Max(y0, y1)+pad,
		image.NewUniform(c), func(z *vector.Rasterizer, ox, oy float32) {
			z.MoveTo(float32(x0+nx)-ox, float32(y0+ny)-oy)
			z.LineTo(float32(x1+nx)-ox, float32(y1+ny)-oy)
			z.LineTo(float32(x1-nx)-ox, float32(y1-ny)-oy)
			z.LineTo(float32(x0-nx)-ox, float32(y0-ny)-oy)
			z.ClosePath()
		})
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.fill(cx-r, cy-r, cx+r, cy+r, image.NewUniform(c), func(z *vector.Rasterizer, ox, oy float32) {
		circle(z, float32(cx)-ox, float32(cy)-oy, float32(r), false)
	})
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	outer := r + width/2
	inner := r - width/2
	if outer <= 0 {
		return
	}
	s.fill(cx-outer, cy-outer, cx+outer, cy+outer, image.NewUniform(c), func(z *vector.Rasterizer, ox, oy float32) {
		fx, fy := float32(cx)-ox, float32(cy)-oy
		circle(z, fx, fy, float32(outer), false)
		if inner > 0 {
			circle(z, fx, fy, float32(inner), true)
		}
	})
}

func (s *Surface) FillRadialGradient(cx, cy, r float64, stops []particle.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	bounds := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	)
	src := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			src.SetNRGBA(x, y, colorAt(stops, d/r))
		}
	}
	s.fill(cx-r, cy-r, cx+r, cy+r, src, func(z *vector.Rasterizer, ox, oy float32) {
		circle(z, float32(cx)-ox, float32(cy)-oy, float32(r), false)
	})
}

// WritePNG encodes the current image.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// fill rasterizes path inside the box [x0,x1)×[y0,y1) and composites src
// through it. path receives the box origin to subtract from coordinates.
func (s *Surface) fill(x0, y0, x1, y1 float64, src image.Image, path func(z *vector.Rasterizer, ox, oy float32)) {
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
	clip := box.Intersect(s.img.Bounds())
	if clip.Empty() || box.Dx() <= 0 || box.Dy() <= 0 {
		return
	}

	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Src
	path(s.z, float32(box.Min.X), float32(box.Min.Y))

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	s.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, clip, src, clip.Min, mask, clip.Min.Sub(box.Min), draw.Over)
}

func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := float32(kappa) * r
	z.MoveTo(cx+r, cy)
	if reverse {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	z.ClosePath()
}

// colorAt interpolates the stops at offset t, holding the end colors
// outside the stop range.
func colorAt(stops []particle.GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: lerp8(a.Color.A, b.Color.A, f),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(common.Lerp(float64(a), float64(b), t)))
}
