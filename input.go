package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/folio/event"
)

// hostInput is the last input state seen, used to publish only changes.
type hostInput struct {
	x, y        int
	inside      bool
	focused     bool
	keyboardNav bool
}

// navHit is a clickable navbar entry from the last drawn frame.
type navHit struct {
	rect image.Rectangle
	id   string
}

var projectKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// pollInput turns window input into host events and handles page keys.
func (g *Game) pollInput() {
	in := &g.input

	if focused := ebiten.IsFocused(); focused != in.focused {
		in.focused = focused
		g.bus.Push(event.Event{Type: event.Visibility, Visible: focused})
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && float64(x) < g.width && float64(y) < g.height
	switch {
	case inside && (!in.inside || x != in.x || y != in.y):
		g.bus.Push(event.Event{Type: event.PointerMove, X: float64(x), Y: float64(y)})
	case !inside && in.inside:
		g.bus.Push(event.Event{Type: event.PointerLeave})
	}
	in.x, in.y, in.inside = x, y, inside

	if _, wy := ebiten.Wheel(); wy != 0 && g.modal == nil {
		g.bus.Push(event.Event{Type: event.Scroll, Y: -wy * wheelStep})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		in.keyboardNav = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.keyboardNav = false
		if g.modal == nil {
			g.clickNav(image.Pt(x, y))
		}
	}

	if g.modal != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.closeProject()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	for i, k := range projectKeys {
		if inpututil.IsKeyJustPressed(k) && i < len(g.page.site.Projects) {
			g.openProject(g.page.site.Projects[i].ID)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.page.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.page.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.page.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.page.scroller.ScrollTo(g.page.scroller.Max)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.bus.Push(event.Event{Type: event.Scroll, Y: arrowStep})
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.bus.Push(event.Event{Type: event.Scroll, Y: -arrowStep})
	}
}

func (g *Game) clickNav(pt image.Point) {
	for _, h := range g.navHits {
		if !pt.In(h.rect) {
			continue
		}
		if h.id == themeToggleID {
			g.toggleTheme()
			return
		}
		g.page.jumpTo(h.id)
		return
	}
}
