package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected default window 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Motion.Reduced {
		t.Errorf("reduced motion should default to off")
	}
	if !cfg.Motion.PauseHidden {
		t.Errorf("expected pause_hidden on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")

	original := DefaultConfig()
	original.Window.Title = "portfolio"
	original.Window.Width = 800
	original.Window.Height = 600
	original.Motion.Reduced = true
	original.Motion.Seed = 42
	original.ContentDir = "site"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Window != original.Window {
		t.Errorf("window: got %+v, want %+v", loaded.Window, original.Window)
	}
	if loaded.Motion != original.Motion {
		t.Errorf("motion: got %+v, want %+v", loaded.Motion, original.Motion)
	}
	if loaded.ContentDir != "site" {
		t.Errorf("content_dir: got %q", loaded.ContentDir)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.yaml")

	tests := []struct {
		name      string
		overwrite bool
		wantErr   error
	}{
		{"creates", false, nil},
		{"keeps_existing", false, ErrExists},
		{"overwrites", true, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := WriteDefault(path, tc.overwrite)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("WriteDefault() = %v, want %v", err, tc.wantErr)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if *cfg != *DefaultConfig() {
				t.Fatalf("expected defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got %v", err)
	}
	if cfg.Window.Title != "folio" {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_MOTION__REDUCED", "true")
	t.Setenv("FOLIO_WINDOW__TITLE", "from-env")
	t.Setenv("FOLIO_DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Motion.Reduced {
		t.Errorf("expected reduced motion from env")
	}
	if cfg.Window.Title != "from-env" {
		t.Errorf("expected title from env, got %q", cfg.Window.Title)
	}
	if !cfg.Debug {
		t.Errorf("expected debug from env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_width", func(c *Config) { c.Window.Width = 0 }},
		{"negative_height", func(c *Config) { c.Window.Height = -1 }},
		{"empty_title", func(c *Config) { c.Window.Title = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "folio.yaml")
	if err := os.WriteFile(target, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) != ".yaml" {
				t.Fatalf("non-yaml change leaked through: %s", name)
			}
			if filepath.Base(name) == "folio.yaml" {
				if err := w.Close(); err != nil {
					t.Fatalf("Close failed: %v", err)
				}
				_ = w.Close()
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for change event")
		}
	}
}
