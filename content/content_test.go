package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedSite(t *testing.T) {
	site, err := LoadSite("")
	if err != nil {
		t.Fatalf("LoadSite failed: %v", err)
	}
	if len(site.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(site.Projects))
	}
	if len(site.Sections) == 0 || site.PageHeight() <= 0 {
		t.Fatalf("expected sections with height")
	}

	tests := []struct {
		id      string
		title   string
		wantErr bool
	}{
		{"socket-chat", "Real-Time Chat Application", false},
		{"ecommerce", "E-commerce Platform", false},
		{"missing", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			p, err := site.Lookup(tc.id)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownProject) {
					t.Fatalf("expected ErrUnknownProject, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if p.Title != tc.title {
				t.Fatalf("expected title %q, got %q", tc.title, p.Title)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`profile:
  name: Someone
sections:
  - id: home
    title: Home
    height: 100
projects:
  - id: only
    title: Only Project
`)
	if err := os.WriteFile(filepath.Join(dir, SiteFile), data, 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := LoadSite(dir)
	if err != nil {
		t.Fatalf("LoadSite failed: %v", err)
	}
	if site.Profile.Name != "Someone" || len(site.Projects) != 1 {
		t.Fatalf("expected disk copy to win, got %+v", site.Profile)
	}

	empty := t.TempDir()
	site, err = LoadSite(empty)
	if err != nil {
		t.Fatalf("LoadSite fallback failed: %v", err)
	}
	if len(site.Projects) != 2 {
		t.Fatalf("expected embedded fallback")
	}
}

func TestParseSiteValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"duplicate_project", "projects:\n  - id: a\n  - id: a\n"},
		{"missing_project_id", "projects:\n  - title: x\n"},
		{"zero_height_section", "sections:\n  - id: a\n    height: 0\n"},
		{"broken", "projects: [\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseSite([]byte(c.yaml)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestHTML(t *testing.T) {
	site, err := LoadSite("")
	if err != nil {
		t.Fatal(err)
	}
	p, err := site.Lookup("socket-chat")
	if err != nil {
		t.Fatal(err)
	}

	out, err := HTML(p)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	for _, want := range []string{
		"<h2", "Real-Time Chat Application",
		"<li>Real-time messaging</li>",
		"<code>Socket.IO</code>",
		"Challenges &amp; Solutions",
		`href="https://github.com/brijesh-tankariya/socket-chat"`,
		`href="https://demo-chat.example.com"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	bare := Project{ID: "x", Title: "Bare"}
	out, err = HTML(bare)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "View on GitHub") || strings.Contains(out, "View Live Demo") {
		t.Fatalf("links should be omitted when urls are empty")
	}
}
