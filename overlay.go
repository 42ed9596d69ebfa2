package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/folio/contact"
	"github.com/milk9111/folio/content"
	"github.com/milk9111/folio/particle"
	"github.com/milk9111/folio/scroll"
	"github.com/milk9111/folio/theme"
)

const (
	navHeight        = 64.0
	navHeightCompact = 52.0
	navPad           = 24.0
	progressHeight   = 3.0
	themeToggleID    = "theme"
	skillBarWidth    = 320.0
	toastWidth       = 300.0
)

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	pos := g.page.pos()
	for _, span := range g.page.spans {
		top := span.Top - pos
		if top > g.height || top+span.Height < 0 {
			continue
		}
		g.drawSection(screen, span, top)
	}

	g.drawNav(screen, pos)
	g.drawToasts(screen)
}

func (g *Game) drawSection(screen *ebiten.Image, span scroll.Span, top float64) {
	pal := g.theme.Current()
	site := g.page.site
	alpha := g.page.revealAlpha(span.ID, 0)
	slide := (1 - alpha) * 30

	var sec content.Section
	for _, s := range site.Sections {
		if s.ID == span.ID {
			sec = s
		}
	}

	if span.ID == "home" {
		cx := float32(g.width * 0.75)
		cy := float32(g.page.parallaxY(span.Top + span.Height/2))
		r := float32(span.Height / 3)
		vector.StrokeCircle(screen, cx, cy, r, 2, particle.WithAlpha(pal.Particles.Secondary, 0.25), true)
		vector.StrokeCircle(screen, cx, cy, r*0.6, 1, particle.WithAlpha(pal.Particles.Accent, 0.2), true)

		y := top + span.Height/2 - 60 + scroll.HeroOffset(g.page.pos())
		drawText(screen, site.Profile.Name, g.face, navPad*2, y, pal.Text)
		drawText(screen, g.page.headline(), g.face, navPad*2, y+32, pal.Particles.Accent)
		drawText(screen, site.Profile.Subtitle, g.smallFace, navPad*2, y+64, pal.Muted)
		return
	}

	x := navPad * 2
	y := top + navHeight + 24 + slide
	drawText(screen, sec.Title, g.face, x, y, particle.WithAlpha(pal.Text, alpha))
	y += 40

	for i, sk := range sec.Skills {
		fill := g.page.skillFill(span.ID, i, sk.Level)
		drawText(screen, fmt.Sprintf("%s  %.0f%%", sk.Name, sk.Level), g.smallFace, x, y, particle.WithAlpha(pal.Muted, alpha))
		vector.FillRect(screen, float32(x), float32(y+20), skillBarWidth, 6, particle.WithAlpha(pal.Panel, alpha), false)
		vector.FillRect(screen, float32(x), float32(y+20), float32(skillBarWidth*fill), 6, pal.Particles.Accent, false)
		y += 44
	}

	if span.ID == "projects" {
		for i, p := range site.Projects {
			a := g.page.revealAlpha(span.ID, scroll.Stagger(i))
			label := fmt.Sprintf("[%d] %s", i+1, p.Title)
			drawText(screen, label, g.face, x, y, particle.WithAlpha(pal.Text, a))
			drawText(screen, strings.Join(p.Tech, " · "), g.smallFace, x+24, y+26, particle.WithAlpha(pal.Muted, a))
			y += 64
		}
		drawText(screen, "Press a number for details", g.smallFace, x, y, particle.WithAlpha(pal.Muted, alpha))
	}
}

func (g *Game) drawNav(screen *ebiten.Image, pos float64) {
	pal := g.theme.Current()
	h := navHeight
	if scroll.NavbarScrolled(pos) {
		h = navHeightCompact
	}
	vector.FillRect(screen, 0, 0, float32(g.width), float32(h), pal.Panel, false)

	prog := g.page.progress() / 100
	vector.FillRect(screen, 0, 0, float32(g.width*prog), progressHeight, pal.Particles.Accent, false)

	textY := h/2 - 10
	drawText(screen, g.page.site.Profile.Name, g.face, navPad, textY, pal.Text)

	g.navHits = g.navHits[:0]
	active := g.page.active()

	label := "Light"
	if g.theme.Name() == theme.Light {
		label = "Dark"
	}
	x := g.width - navPad
	items := append([]navItem{{id: themeToggleID, title: label}}, g.navItems()...)
	for _, it := range items {
		w, _ := text.Measure(it.title, g.smallFace, 0)
		x -= w
		c := pal.Muted
		if it.id == active {
			c = pal.Particles.Accent
		}
		drawText(screen, it.title, g.smallFace, x, textY+4, c)
		r := image.Rect(int(x-6), int(textY-2), int(x+w+6), int(textY+22))
		if it.id == active && g.input.keyboardNav {
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, pal.Particles.Secondary, false)
		}
		g.navHits = append(g.navHits, navHit{rect: r, id: it.id})
		x -= navPad
	}
}

type navItem struct {
	id, title string
}

// navItems lists sections right to left, as they are laid out.
func (g *Game) navItems() []navItem {
	secs := g.page.site.Sections
	out := make([]navItem, 0, len(secs))
	for i := len(secs) - 1; i >= 0; i-- {
		out = append(out, navItem{id: secs[i].ID, title: secs[i].Title})
	}
	return out
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	pal := g.theme.Current()
	y := g.height - navPad
	for i := len(g.toasts) - 1; i >= 0; i-- {
		n := g.toasts[i]
		if !n.Visible() {
			continue
		}
		y -= 44
		x := g.width - toastWidth - navPad
		vector.FillRect(screen, float32(x), float32(y), toastWidth, 36, pal.Panel, false)
		vector.FillRect(screen, float32(x), float32(y), 4, 36, toastColor(n.Kind, pal.Particles), false)
		drawText(screen, n.Message, g.smallFace, x+14, y+10, pal.Text)
	}
}

func toastColor(k contact.Kind, pal particle.Palette) color.NRGBA {
	switch k {
	case contact.Success:
		return pal.Secondary
	case contact.Error:
		return color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	}
	return pal.Accent
}
