package config

import "github.com/bnema/dockyard/internal/domain/entity"

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLayoutFormat  = "json"
	defaultPlaceholder   = "Loading..."
	defaultFloatWidth    = 300
	defaultFloatHeight   = 200
	defaultWatchDebounce = 200 // ms
)

// DefaultConfig returns the default configuration. Database.Path is resolved
// at load time.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Layout: LayoutConfig{
			DefaultFormat: defaultLayoutFormat,
			InsertPolicy:  entity.DefaultInsertPolicy,
			FloatWidth:    defaultFloatWidth,
			FloatHeight:   defaultFloatHeight,
			Placeholder:   defaultPlaceholder,
			Panels:        []string{"left", "center", "right"},
		},
		Watch: WatchConfig{
			DebounceMs: defaultWatchDebounce,
		},
	}
}
