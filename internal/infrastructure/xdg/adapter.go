// Package xdg exposes the dockyard XDG directories through port.XDGPaths.
package xdg

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
