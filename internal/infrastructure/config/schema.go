// Package config loads dockyard settings from TOML and the environment.
package config

import (
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Layout holds the defaults used when building and writing layouts.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch" toml:"watch" json:"watch"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig locates the named layout store.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/dockyard/layouts.sqlite when empty.
	Path string `mapstructure:"path" yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty"`
}

// LayoutConfig holds layout engine defaults.
type LayoutConfig struct {
	// DefaultFormat is used when a file extension names no codec.
	DefaultFormat string `mapstructure:"default_format" yaml:"default_format" toml:"default_format" json:"default_format" jsonschema:"enum=json,enum=yaml,enum=toml"`
	// InsertPolicy decides where new items go when their parent is missing.
	InsertPolicy entity.InsertPolicy `mapstructure:"insert_policy" yaml:"insert_policy" toml:"insert_policy" json:"insert_policy" jsonschema:"enum=create_first,enum=create_last,enum=create_floating,enum=error"`
	FloatWidth   float64             `mapstructure:"float_width" yaml:"float_width" toml:"float_width" json:"float_width" jsonschema:"exclusiveMinimum=0"`
	FloatHeight  float64             `mapstructure:"float_height" yaml:"float_height" toml:"float_height" json:"float_height" jsonschema:"exclusiveMinimum=0"`
	// Placeholder titles items whose layout entry has none.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" toml:"placeholder" json:"placeholder"`
	// Panels are the tab node ids of a fresh layout.
	Panels []string `mapstructure:"panels" yaml:"panels" toml:"panels" json:"panels"`
}

// FloatSize returns the configured floating window size.
func (c LayoutConfig) FloatSize() entity.Size {
	return entity.Size{Width: c.FloatWidth, Height: c.FloatHeight}
}

// PanelIDs returns Panels as node ids.
func (c LayoutConfig) PanelIDs() []entity.NodeID {
	ids := make([]entity.NodeID, 0, len(c.Panels))
	for _, p := range c.Panels {
		ids = append(ids, entity.NodeID(p))
	}
	return ids
}

// WatchConfig controls `dockyard watch`.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0"`
}

// Debounce returns DebounceMs as a duration.
func (c WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
