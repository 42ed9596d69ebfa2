package scroll

import (
	"testing"
	"time"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name                  string
		top, height, viewport float64
		want                  float64
	}{
		{"top", 0, 3000, 1000, 0},
		{"half", 1000, 3000, 1000, 50},
		{"bottom", 2000, 3000, 1000, 100},
		{"overscroll", 2500, 3000, 1000, 100},
		{"no_scroll", 0, 800, 1000, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Progress(c.top, c.height, c.viewport); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestParallaxAndNavbar(t *testing.T) {
	if got := Parallax(200, 0); got != -100 {
		t.Fatalf("default speed: got %v", got)
	}
	if got := Parallax(200, 0.25); got != -50 {
		t.Fatalf("custom speed: got %v", got)
	}
	if got := HeroOffset(300); got != 150 {
		t.Fatalf("hero offset: got %v", got)
	}
	if NavbarScrolled(50) || !NavbarScrolled(51) {
		t.Fatalf("navbar threshold is strictly greater than 50")
	}
	if AnchorTarget(500) != 420 || AnchorTarget(30) != 0 {
		t.Fatalf("anchor target should subtract the navbar and clamp at 0")
	}
	if Stagger(3) != 600*time.Millisecond {
		t.Fatalf("stagger: got %v", Stagger(3))
	}
}

func TestActiveSection(t *testing.T) {
	spans := Layout([]string{"home", "about", "projects"}, []float64{700, 600, 900})
	cases := []struct {
		scrollY float64
		want    string
		ok      bool
	}{
		{0, "home", true},
		{599, "home", true},
		{600, "about", true},
		{1200, "projects", true},
		{2100, "", false},
	}
	for _, c := range cases {
		got, ok := ActiveSection(spans, c.scrollY)
		if got != c.want || ok != c.ok {
			t.Fatalf("scrollY=%v: got (%q,%v), want (%q,%v)", c.scrollY, got, ok, c.want, c.ok)
		}
	}
}

func TestScroller(t *testing.T) {
	s := NewScroller(1000)
	s.ScrollTo(5000)
	if s.Target != 1000 {
		t.Fatalf("target should clamp to max, got %v", s.Target)
	}
	for i := 0; i < 200 && !s.Settled(); i++ {
		s.Update()
	}
	if !s.Settled() || s.Pos != 1000 {
		t.Fatalf("expected to settle at 1000, got %v", s.Pos)
	}
	s.ScrollBy(-1500)
	if s.Target != 0 {
		t.Fatalf("target should clamp to 0, got %v", s.Target)
	}
	s.SetMax(200)
	if s.Pos != 200 {
		t.Fatalf("position should clamp to new max, got %v", s.Pos)
	}
}

func TestObserver(t *testing.T) {
	o := NewObserver()
	o.Observe(Span{ID: "img", Top: 1500, Height: 200}, true)
	o.Observe(Span{ID: "title", Top: 100, Height: 50}, false)

	hits := o.Update(0, 800)
	if len(hits) != 1 || hits[0] != "title" {
		t.Fatalf("expected only title visible, got %v", hits)
	}

	// 20px of a 200px image inside the margin-shrunk viewport: exactly 10%
	hits = o.Update(770, 800)
	if len(hits) != 1 || hits[0] != "img" {
		t.Fatalf("expected img at threshold, got %v", hits)
	}
	if o.Len() != 1 {
		t.Fatalf("once target should be unobserved, %d left", o.Len())
	}
	if !o.Animated("img") || !o.Animated("title") {
		t.Fatalf("expected both marked animated")
	}

	o.Unobserve("title")
	if o.Len() != 0 {
		t.Fatalf("expected no targets left")
	}
}

func TestIntersectsBelowThreshold(t *testing.T) {
	if Intersects(Span{ID: "x", Top: 740, Height: 200}, 0, 800) {
		t.Fatalf("10px of 200px should be below threshold")
	}
	if Intersects(Span{ID: "x", Top: 0, Height: 0}, 0, 800) {
		t.Fatalf("empty spans never intersect")
	}
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("héllo")
	cases := []struct {
		at   time.Duration
		want string
	}{
		{0, ""},
		{999 * time.Millisecond, ""},
		{time.Second, "h"},
		{time.Second + 50*time.Millisecond, "hé"},
		{time.Second + 400*time.Millisecond, "héllo"},
	}
	for _, c := range cases {
		if got := tw.Visible(c.at); got != c.want {
			t.Fatalf("at %v: got %q, want %q", c.at, got, c.want)
		}
	}
	if !tw.Done(2 * time.Second) {
		t.Fatalf("expected typewriter to finish")
	}
}
