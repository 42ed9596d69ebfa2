package scroll

import "time"

const (
	// Threshold is the visible fraction at which an element intersects.
	Threshold = 0.1
	// BottomMargin shrinks the viewport's bottom edge.
	BottomMargin = -50.0
)

// Intersects reports whether at least Threshold of the span is inside the
// viewport [viewTop, viewTop+viewHeight+BottomMargin).
func Intersects(s Span, viewTop, viewHeight float64) bool {
	if s.Height <= 0 {
		return false
	}
	bottom := viewTop + viewHeight + BottomMargin
	lo := max(s.Top, viewTop)
	hi := min(s.Top+s.Height, bottom)
	if hi <= lo {
		return false
	}
	return (hi-lo)/s.Height >= Threshold
}

type target struct {
	span Span
	once bool
}

// Observer tracks spans and reports the ones entering the viewport.
// Once targets are dropped after their first hit; reveal animations use
// them.
type Observer struct {
	targets  []target
	animated map[string]bool
}

func NewObserver() *Observer {
	return &Observer{animated: make(map[string]bool)}
}

func (o *Observer) Observe(s Span, once bool) {
	o.targets = append(o.targets, target{span: s, once: once})
}

func (o *Observer) Unobserve(id string) {
	kept := o.targets[:0]
	for _, t := range o.targets {
		if t.span.ID != id {
			kept = append(kept, t)
		}
	}
	o.targets = kept
}

// Len returns the number of observed spans.
func (o *Observer) Len() int {
	return len(o.targets)
}

// Update checks every target against the viewport and returns the ids
// that intersect, in observation order.
func (o *Observer) Update(viewTop, viewHeight float64) []string {
	var hits []string
	kept := o.targets[:0]
	for _, t := range o.targets {
		in := Intersects(t.span, viewTop, viewHeight)
		if in {
			hits = append(hits, t.span.ID)
			o.animated[t.span.ID] = true
		}
		if in && t.once {
			continue
		}
		kept = append(kept, t)
	}
	o.targets = kept
	return hits
}

// Animated reports whether id has ever intersected.
func (o *Observer) Animated(id string) bool {
	return o.animated[id]
}

// Typewriter reveals text one rune at a time after an initial delay.
type Typewriter struct {
	text     []rune
	Delay    time.Duration
	Interval time.Duration
}

func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text), Delay: time.Second, Interval: 50 * time.Millisecond}
}

// Visible returns the part of the text shown after elapsed.
func (t *Typewriter) Visible(elapsed time.Duration) string {
	if elapsed < t.Delay || t.Interval <= 0 {
		return ""
	}
	n := int((elapsed-t.Delay)/t.Interval) + 1
	if n > len(t.text) {
		n = len(t.text)
	}
	return string(t.text[:n])
}

func (t *Typewriter) Done(elapsed time.Duration) bool {
	return len(t.Visible(elapsed)) == len(string(t.text))
}
