package config

import (
	"context"
	"fmt"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dockyard/internal/logging"
)

// Watch reloads the config file whenever it is saved. Edits that fail
// validation are logged through ctx's logger and the running config is kept.
// Calling Watch again is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.config == nil {
		return fmt.Errorf("config must be loaded before it is watched")
	}

	log := logging.FromContext(ctx)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		changed, err := m.reloadAndNotify()
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("config edit rejected, keeping previous values")
		case !changed:
			log.Debug().Msg("config unchanged")
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers fn to run after every reload that changes the
// effective configuration.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Reload re-reads the config file now.
func (m *Manager) Reload() error {
	_, err := m.reloadAndNotify()
	return err
}

// reloadAndNotify swaps in the re-read config and runs the callbacks outside
// the lock so they may call Get.
func (m *Manager) reloadAndNotify() (bool, error) {
	m.mu.Lock()
	previous := m.config
	next, err := m.read()
	if err != nil {
		m.mu.Unlock()
		return false, err
	}
	if previous != nil && reflect.DeepEqual(previous, next) {
		m.mu.Unlock()
		return false, nil
	}
	m.config = next
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(next)
	}
	return true, nil
}

// read parses the file into a fresh Config. Callers hold m.mu.
func (m *Manager) read() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}
