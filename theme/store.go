package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PreferenceKey is the key the theme is stored under.
const PreferenceKey = "portfolio-theme"

// Store persists the single theme preference in a YAML file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user location of the preference file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "theme.yaml"
	}
	return filepath.Join(dir, "folio", "theme.yaml")
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved theme, or Default when nothing valid is saved.
func (s *Store) Load() (Name, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default, nil
	}
	if err != nil {
		return Default, fmt.Errorf("theme: read %s: %w", s.path, err)
	}

	prefs := map[string]string{}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Default, fmt.Errorf("theme: unmarshal %s: %w", s.path, err)
	}
	n := Name(prefs[PreferenceKey])
	if !n.Valid() {
		return Default, nil
	}
	return n, nil
}

// Save writes n as the preference.
func (s *Store) Save(n Name) error {
	if !n.Valid() {
		return fmt.Errorf("theme: unknown theme %q", n)
	}
	data, err := yaml.Marshal(map[string]string{PreferenceKey: string(n)})
	if err != nil {
		return fmt.Errorf("theme: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("theme: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("theme: write %s: %w", s.path, err)
	}
	return nil
}

// Toggle flips the saved theme and returns the new one.
func (s *Store) Toggle() (Name, error) {
	cur, err := s.Load()
	if err != nil {
		return cur, err
	}
	next := Toggle(cur)
	return next, s.Save(next)
}
