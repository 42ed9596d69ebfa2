package main

import (
	"time"

	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/content"
	"github.com/milk9111/folio/scroll"
)

const (
	revealDuration = 600 * time.Millisecond
	wheelStep      = 60.0
	arrowStep      = 12.0
)

// page is the scrollable document behind the overlay: section layout,
// scroll position and the reveal state of each section.
type page struct {
	site     *content.Site
	spans    []scroll.Span
	scroller *scroll.Scroller
	observer *scroll.Observer
	typer    *scroll.Typewriter
	revealed map[string]time.Duration
	elapsed  time.Duration
	viewH    float64
}

func newPage(site *content.Site, viewH float64) *page {
	p := &page{viewH: viewH}
	p.setSite(site)
	return p
}

// setSite lays out a new catalog, keeping the scroll position and the
// sections already revealed.
func (p *page) setSite(site *content.Site) {
	if p.observer == nil {
		p.observer = scroll.NewObserver()
	}
	// Old spans carry stale offsets.
	for _, s := range p.spans {
		p.observer.Unobserve(s.ID)
	}

	p.site = site
	ids := make([]string, len(site.Sections))
	heights := make([]float64, len(site.Sections))
	for i, s := range site.Sections {
		ids[i] = s.ID
		heights[i] = s.Height
	}
	p.spans = scroll.Layout(ids, heights)

	if p.scroller == nil {
		p.scroller = scroll.NewScroller(0)
	}
	p.scroller.SetMax(site.PageHeight() - p.viewH)

	if p.revealed == nil {
		p.revealed = make(map[string]time.Duration)
	}
	for _, s := range p.spans {
		if _, ok := p.revealed[s.ID]; !ok {
			p.observer.Observe(s, true)
		}
	}
	p.typer = scroll.NewTypewriter(site.Profile.Title)
}

func (p *page) resize(viewH float64) {
	p.viewH = viewH
	p.scroller.SetMax(p.site.PageHeight() - viewH)
}

// update advances one frame of scrolling and reveals.
func (p *page) update(dt time.Duration) {
	p.elapsed += dt
	pos := p.scroller.Update()
	for _, id := range p.observer.Update(pos, p.viewH) {
		p.revealed[id] = p.elapsed
	}
}

func (p *page) pos() float64 {
	return p.scroller.Pos
}

func (p *page) active() string {
	id, _ := scroll.ActiveSection(p.spans, p.scroller.Pos)
	return id
}

func (p *page) progress() float64 {
	return scroll.Progress(p.scroller.Pos, p.site.PageHeight(), p.viewH)
}

// jumpTo scrolls to a section's anchor.
func (p *page) jumpTo(id string) bool {
	for _, s := range p.spans {
		if s.ID == id {
			p.scroller.ScrollTo(scroll.AnchorTarget(s.Top))
			return true
		}
	}
	return false
}

// step moves to the next (dir > 0) or previous section anchor.
func (p *page) step(dir int) {
	if len(p.spans) == 0 {
		return
	}
	cur := 0
	active := p.active()
	for i, s := range p.spans {
		if s.ID == active {
			cur = i
		}
	}
	next := max(0, min(len(p.spans)-1, cur+dir))
	p.jumpTo(p.spans[next].ID)
}

// revealAlpha is 0 before a section is first seen and eases to 1 after.
func (p *page) revealAlpha(id string, delay time.Duration) float64 {
	at, ok := p.revealed[id]
	if !ok {
		return 0
	}
	t := float64(p.elapsed-at-delay) / float64(revealDuration)
	return common.Clamp01(t)
}

// skillFill returns the animated bar fraction of the i-th skill.
func (p *page) skillFill(sectionID string, i int, level float64) float64 {
	return p.revealAlpha(sectionID, scroll.Stagger(i)) * common.Clamp(level, 0, 100) / 100
}

// parallaxY maps a page y to the screen for a decorative layer that
// outruns the scroll at the default parallax speed.
func (p *page) parallaxY(y float64) float64 {
	return y - p.pos() + scroll.Parallax(p.pos(), 0)
}

func (p *page) headline() string {
	return p.typer.Visible(p.elapsed)
}
