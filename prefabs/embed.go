package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// DefaultDir is where on-disk overrides are looked up when no directory is
// configured.
const DefaultDir = "prefabs"

// Loader reads prefab files, preferring copies on disk under Dir over the
// embedded defaults.
type Loader struct {
	Dir          string
	EmbeddedOnly bool
}

func (l Loader) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if l.EmbeddedOnly {
		return PrefabsFS.ReadFile(clean)
	}
	if data, err := os.ReadFile(l.diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// Stat reports the on-disk override for name, if there is one.
func (l Loader) Stat(name string) (fs.FileInfo, bool) {
	if l.EmbeddedOnly {
		return nil, false
	}
	info, err := os.Stat(l.diskPath(cleanPrefabPath(name)))
	if err != nil || info.IsDir() {
		return nil, false
	}
	return info, true
}

func (l Loader) dir() string {
	if l.Dir == "" {
		return DefaultDir
	}
	return l.Dir
}

func (l Loader) diskPath(clean string) string {
	return filepath.Join(l.dir(), filepath.FromSlash(clean))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
