package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/folio/raster"
)

func TestRunSim(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	res, err := runSim(simOptions{
		width: 800, height: 600,
		ticks: 20, seed: 3,
		pointerX: 400, pointerY: 300,
		theme: "light",
		png:   out,
		quiet: true,
	})
	if err != nil {
		t.Fatalf("runSim failed: %v", err)
	}
	if res.particles != 48 {
		t.Fatalf("expected 48 particles, got %d", res.particles)
	}
	if res.frames != 20 {
		t.Fatalf("expected 20 frames, got %d", res.frames)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("unexpected png size %v", b)
	}
}

func TestRunSimRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts simOptions
	}{
		{"zero_width", simOptions{width: 0, height: 10, theme: "dark", quiet: true}},
		{"unknown_theme", simOptions{width: 10, height: 10, theme: "sepia", quiet: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runSim(tc.opts); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestRunSimPointerLeave(t *testing.T) {
	res, err := runSim(simOptions{
		width: 1000, height: 1000,
		ticks: 50, seed: 9,
		leave: true,
		theme: "dark",
		quiet: true,
	})
	if err != nil {
		t.Fatalf("runSim failed: %v", err)
	}
	if res.particles != 100 {
		t.Fatalf("expected the population cap of 100, got %d", res.particles)
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.err
}

func TestSavePNG(t *testing.T) {
	errDisk := errors.New("disk full")
	tests := []struct {
		name     string
		closeErr error
		want     error
	}{
		{"ok", nil, nil},
		{"close_fails", errDisk, errDisk},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &closeRecorder{err: tc.closeErr}
			err := savePNG(w, raster.New(4, 4))
			if !errors.Is(err, tc.want) {
				t.Fatalf("savePNG() = %v, want %v", err, tc.want)
			}
			if !w.closed {
				t.Fatalf("the writer should always be closed")
			}
			if _, err := png.Decode(&w.Buffer); err != nil {
				t.Fatalf("decode png: %v", err)
			}
		})
	}
}
