package content

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownProject is returned by Lookup for an id not in the catalog.
var ErrUnknownProject = errors.New("content: unknown project")

type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Skill struct {
	Name  string  `yaml:"name"`
	Level float64 `yaml:"level"`
}

// Section is one anchor-addressable block of the page.
type Section struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Height float64 `yaml:"height"`
	Skills []Skill `yaml:"skills"`
}

// Project is one entry of the project-detail catalog.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Challenges  string   `yaml:"challenges"`
	Tech        []string `yaml:"tech"`
	Features    []string `yaml:"features"`
	LiveURL     string   `yaml:"live_url"`
	GithubURL   string   `yaml:"github_url"`
}

type Site struct {
	Profile  Profile   `yaml:"profile"`
	Sections []Section `yaml:"sections"`
	Projects []Project `yaml:"projects"`
}

// LoadSite reads and validates the site catalog.
func LoadSite(dir string) (*Site, error) {
	data, err := Load(dir, SiteFile)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", SiteFile, err)
	}
	return ParseSite(data)
}

func ParseSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("content: unmarshal %s: %w", SiteFile, err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) validate() error {
	seen := make(map[string]struct{}, len(s.Projects))
	for i, p := range s.Projects {
		if p.ID == "" {
			return fmt.Errorf("content: project %d has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("content: duplicate project id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for i, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("content: section %d has no id", i)
		}
		if sec.Height <= 0 {
			return fmt.Errorf("content: section %q has non-positive height", sec.ID)
		}
	}
	return nil
}

// Lookup returns the project with the given id.
func (s *Site) Lookup(id string) (Project, error) {
	if s != nil {
		for _, p := range s.Projects {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, id)
}

// PageHeight is the total height of all sections.
func (s *Site) PageHeight() float64 {
	if s == nil {
		return 0
	}
	total := 0.0
	for _, sec := range s.Sections {
		total += sec.Height
	}
	return total
}
