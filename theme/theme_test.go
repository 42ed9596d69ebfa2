package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestToggleAndIcon(t *testing.T) {
	cases := []struct {
		in   Name
		next Name
		icon string
	}{
		{Dark, Light, "☀️"},
		{Light, Dark, "🌙"},
	}
	for _, c := range cases {
		t.Run(string(c.in), func(t *testing.T) {
			if got := Toggle(c.in); got != c.next {
				t.Fatalf("Toggle(%s) = %s, want %s", c.in, got, c.next)
			}
			if got := Icon(c.in); got != c.icon {
				t.Fatalf("Icon(%s) = %s, want %s", c.in, got, c.icon)
			}
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "nested", "theme.yaml"))

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if got != Dark {
		t.Fatalf("expected default dark, got %s", got)
	}

	next, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if next != Light {
		t.Fatalf("expected light after toggle, got %s", next)
	}

	got, err = NewStore(s.Path()).Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got != Light {
		t.Fatalf("expected persisted light, got %s", got)
	}
}

func TestStoreInvalidContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"unknown_value", "portfolio-theme: sepia\n", false},
		{"other_key", "colour: light\n", false},
		{"broken_yaml", "portfolio-theme: [\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := NewStore(path).Load()
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != Dark {
				t.Fatalf("expected fallback to dark, got %s", got)
			}
		})
	}

	if err := NewStore(path).Save("sepia"); err == nil {
		t.Fatalf("expected error saving unknown theme")
	}
}

func TestTransition(t *testing.T) {
	tr := NewTransition(Dark, Light)
	start := tr.Current()
	if start.Particles.Background != PaletteFor(Dark).Particles.Background {
		t.Fatalf("transition should start at the old palette, got %v", start.Particles.Background)
	}

	mid := tr.Advance(TransitionDuration / 2)
	if mid.Particles.Background == PaletteFor(Dark).Particles.Background ||
		mid.Particles.Background == PaletteFor(Light).Particles.Background {
		t.Fatalf("midpoint should be a blend, got %v", mid.Particles.Background)
	}
	if tr.Done() {
		t.Fatalf("transition finished early")
	}

	end := tr.Advance(time.Second)
	if !tr.Done() || end != PaletteFor(Light) {
		t.Fatalf("expected final light palette, got %+v", end)
	}
}

func TestTransitionFromBlend(t *testing.T) {
	mid := NewTransition(Dark, Light).Advance(TransitionDuration / 2)

	tr := NewTransitionFrom(mid, Dark)
	if got := tr.Current(); got != mid {
		t.Fatalf("reversal should start at the blended palette, got %+v", got)
	}
	if end := tr.Advance(TransitionDuration); end != PaletteFor(Dark) {
		t.Fatalf("expected final dark palette, got %+v", end)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := PaletteFor(Dark).Particles.Accent
	b := PaletteFor(Light).Particles.Accent
	if got := Blend(a, b, 0); got != a {
		t.Fatalf("Blend at 0 = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Fatalf("Blend at 1 = %v, want %v", got, b)
	}
}
