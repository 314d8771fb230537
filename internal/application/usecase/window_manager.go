package usecase

import (
	"slices"

	"github.com/bnema/dockyard/internal/application/port"
)

// WindowManager keeps track of the secondary windows created through a
// port.WindowFactory.
type WindowManager struct {
	factory port.WindowFactory
	windows []port.Window
}

// NewWindowManager creates a window manager backed by factory.
func NewWindowManager(factory port.WindowFactory) *WindowManager {
	return &WindowManager{factory: factory}
}

// MainWindow returns the window that owns every secondary window.
func (m *WindowManager) MainWindow() port.Window {
	return m.factory.MainWindow()
}

// Windows returns the live secondary windows in creation order.
func (m *WindowManager) Windows() []port.Window {
	return slices.Clone(m.windows)
}

// CreateWindow creates and registers a new window. It is unregistered once
// the host reports it closed.
func (m *WindowManager) CreateWindow() port.Window {
	window := m.factory.CreateWindow()
	if window != nil && !slices.Contains(m.windows, window) {
		m.windows = append(m.windows, window)
		window.OnClosed(func() { m.RemoveWindow(window) })
	}
	return window
}

// RemoveWindow unregisters window without closing it.
func (m *WindowManager) RemoveWindow(window port.Window) bool {
	index := slices.Index(m.windows, window)
	if index < 0 {
		return false
	}
	m.windows = slices.Delete(m.windows, index, index+1)
	return true
}

// ShowAll shows every registered window, owned by the main window.
func (m *WindowManager) ShowAll() {
	owner := m.MainWindow()
	for _, window := range m.Windows() {
		window.Show(owner)
	}
}
