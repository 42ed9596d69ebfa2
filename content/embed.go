package content

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// SiteFile is the catalog's file name, embedded and on disk.
const SiteFile = "site.yaml"

//go:embed site.yaml
var siteFS embed.FS

// Load returns the named file from dir when it exists there and from the
// embedded copy otherwise. An empty dir always uses the embedded copy.
func Load(dir, name string) ([]byte, error) {
	clean := cleanPath(name)
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return siteFS.ReadFile(clean)
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "content/"); ok {
		return after
	}
	return s
}
