// Package codec reads and writes layout documents as JSON, YAML or TOML.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
)

// ErrUnknownFormat is returned when no codec matches a name or extension.
var ErrUnknownFormat = errors.New("unknown layout format")

var registry = map[string]port.LayoutCodec{
	"json": JSON{},
	"yaml": YAML{},
	"toml": TOML{},
}

var extensions = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
}

// ByName returns the codec for a format name such as "yaml".
func ByName(name string) (port.LayoutCodec, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// ForPath picks a codec from the file extension of path.
func ForPath(path string) (port.LayoutCodec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: extension %q of %s", ErrUnknownFormat, ext, path)
	}
	return registry[name], nil
}

// ForPathOr picks a codec from the extension of path and falls back to the
// named format when the extension is not recognised.
func ForPathOr(path, fallback string) (port.LayoutCodec, error) {
	if c, err := ForPath(path); err == nil {
		return c, nil
	}
	return ByName(fallback)
}

// Names lists the supported format names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
