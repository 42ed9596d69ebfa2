package scroll

import (
	"math"
	"time"

	"github.com/milk9111/folio/common"
)

const (
	// NavOffset keeps anchor targets clear of the fixed navbar.
	NavOffset = 80.0
	// SectionLookahead is how far below the top edge the active section is
	// sampled.
	SectionLookahead = 100.0
	// NavbarThreshold is the scroll depth at which the navbar compacts.
	NavbarThreshold = 50.0
	// DefaultParallaxSpeed applies to elements without their own speed.
	DefaultParallaxSpeed = 0.5
	// StaggerStep separates consecutive staggered reveals.
	StaggerStep = 200 * time.Millisecond
)

// Progress returns how far the document is scrolled, in percent.
func Progress(scrollTop, scrollHeight, clientHeight float64) float64 {
	height := scrollHeight - clientHeight
	if height <= 0 {
		return 0
	}
	return common.Clamp(scrollTop/height*100, 0, 100)
}

// Parallax returns the vertical offset for an element moving at speed.
// A zero speed uses DefaultParallaxSpeed.
func Parallax(scrolled, speed float64) float64 {
	if speed == 0 {
		speed = DefaultParallaxSpeed
	}
	return -(scrolled * speed)
}

// HeroOffset is the hero section's downward drift.
func HeroOffset(scrolled float64) float64 {
	return scrolled * 0.5
}

func NavbarScrolled(y float64) bool {
	return y > NavbarThreshold
}

// AnchorTarget returns where to scroll to bring an element at offsetTop
// under the navbar.
func AnchorTarget(offsetTop float64) float64 {
	return math.Max(0, offsetTop-NavOffset)
}

// Stagger returns the reveal delay of the i-th child.
func Stagger(i int) time.Duration {
	return time.Duration(i) * StaggerStep
}

// Span is a vertical extent on the page.
type Span struct {
	ID     string
	Top    float64
	Height float64
}

// Layout stacks heights top to bottom.
func Layout(ids []string, heights []float64) []Span {
	out := make([]Span, 0, len(ids))
	top := 0.0
	for i, id := range ids {
		h := 0.0
		if i < len(heights) {
			h = heights[i]
		}
		out = append(out, Span{ID: id, Top: top, Height: h})
		top += h
	}
	return out
}

// ActiveSection returns the section under scrollY+SectionLookahead. When
// sections overlap the last match wins.
func ActiveSection(sections []Span, scrollY float64) (string, bool) {
	pos := scrollY + SectionLookahead
	id, found := "", false
	for _, s := range sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			id, found = s.ID, true
		}
	}
	return id, found
}

// Scroller eases the scroll position toward a target, like a smooth
// window.scrollTo.
type Scroller struct {
	Pos    float64
	Target float64
	Max    float64
	// Ease is the fraction of the remaining distance covered per frame.
	Ease float64
}

func NewScroller(max float64) *Scroller {
	return &Scroller{Max: math.Max(0, max), Ease: 0.2}
}

// ScrollTo sets a new target, clamped to the document.
func (s *Scroller) ScrollTo(y float64) {
	s.Target = common.Clamp(y, 0, s.Max)
}

// ScrollBy moves the target by dy.
func (s *Scroller) ScrollBy(dy float64) {
	s.ScrollTo(s.Target + dy)
}

// SetMax changes the scrollable range and re-clamps the position.
func (s *Scroller) SetMax(max float64) {
	s.Max = math.Max(0, max)
	s.Target = common.Clamp(s.Target, 0, s.Max)
	s.Pos = common.Clamp(s.Pos, 0, s.Max)
}

// Update advances one frame and returns the new position.
func (s *Scroller) Update() float64 {
	s.Pos = common.Lerp(s.Pos, s.Target, s.Ease)
	if math.Abs(s.Target-s.Pos) < 0.5 {
		s.Pos = s.Target
	}
	return s.Pos
}

func (s *Scroller) Settled() bool {
	return s.Pos == s.Target
}
