// Package window provides an in-memory port.WindowFactory for hosts with no
// display, such as the CLI.
package window

import (
	"fmt"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultScreen is the display used when a factory is built without one.
var DefaultScreen = entity.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

// Factory creates headless windows. Every window shares the factory's list of
// screens for IsOnScreen.
type Factory struct {
	mu      sync.Mutex
	screens []entity.Rect
	main    *Window
	created []*Window
	nextID  int
}

// NewFactory creates a factory whose main window covers the first screen.
func NewFactory(screens ...entity.Rect) *Factory {
	if len(screens) == 0 {
		screens = []entity.Rect{DefaultScreen}
	}
	f := &Factory{screens: screens}
	f.main = f.newWindow("main")
	f.main.pos = screens[0].Position()
	f.main.size = screens[0].Size()
	f.main.visible = true
	return f
}

// MainWindow implements port.WindowFactory.
func (f *Factory) MainWindow() port.Window {
	return f.main
}

// CreateWindow implements port.WindowFactory.
func (f *Factory) CreateWindow() port.Window {
	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("window-%d", f.nextID)
	f.mu.Unlock()

	w := f.newWindow(id)

	f.mu.Lock()
	f.created = append(f.created, w)
	f.mu.Unlock()
	return w
}

// Created returns every window made by CreateWindow, closed ones included.
func (f *Factory) Created() []*Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Window, len(f.created))
	copy(out, f.created)
	return out
}

// Open returns the created windows that are not closed.
func (f *Factory) Open() []*Window {
	var out []*Window
	for _, w := range f.Created() {
		if !w.Closed() {
			out = append(out, w)
		}
	}
	return out
}

func (f *Factory) onScreen(r entity.Rect) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, screen := range f.screens {
		if screen.Intersects(r) {
			return true
		}
	}
	return false
}

func (f *Factory) newWindow(id string) *Window {
	return &Window{id: id, factory: f, size: entity.DefaultFloatSize}
}

// Window is a headless port.Window. Closing and closed handlers run on the
// caller's goroutine, outside the window lock.
type Window struct {
	mu      sync.Mutex
	id      string
	factory *Factory
	content any
	pos     entity.Point
	size    entity.Size
	owner   port.Window
	visible bool
	closed  bool

	onClosing []func(*port.ClosingEvent)
	onClosed  []func()
}

func (w *Window) ID() string { return w.id }

func (w *Window) Content() any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

func (w *Window) SetContent(content any) {
	w.mu.Lock()
	w.content = content
	w.mu.Unlock()
}

func (w *Window) Position() entity.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pos
}

func (w *Window) SetPosition(p entity.Point) {
	w.mu.Lock()
	w.pos = p
	w.mu.Unlock()
}

func (w *Window) Size() entity.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *Window) SetSize(s entity.Size) {
	w.mu.Lock()
	w.size = s
	w.mu.Unlock()
}

func (w *Window) Bounds() entity.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return entity.RectFrom(w.pos, w.size)
}

func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Owner returns the window passed to the last Show.
func (w *Window) Owner() port.Window {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.owner
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Show is a no-op once the window is closed.
func (w *Window) Show(owner port.Window) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.owner = owner
	w.visible = true
}

// Close closes the window as if the user did.
func (w *Window) Close() {
	w.CloseWithReason(port.CloseReasonWindowClosing)
}

// CloseWithReason runs the closing handlers with reason and closes the window
// unless one of them cancels. It reports whether the window closed.
func (w *Window) CloseWithReason(reason port.CloseReason) bool {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false
	}
	closing := append([]func(*port.ClosingEvent){}, w.onClosing...)
	w.mu.Unlock()

	ev := &port.ClosingEvent{Reason: reason}
	for _, fn := range closing {
		fn(ev)
	}
	if ev.Cancel {
		return false
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false
	}
	w.closed = true
	w.visible = false
	closed := append([]func(){}, w.onClosed...)
	w.mu.Unlock()

	for _, fn := range closed {
		fn()
	}
	return true
}

// IsOnScreen reports whether r overlaps one of the factory's screens.
func (w *Window) IsOnScreen(r entity.Rect) bool {
	return w.factory.onScreen(r)
}

func (w *Window) OnClosing(fn func(ev *port.ClosingEvent)) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.onClosing = append(w.onClosing, fn)
	w.mu.Unlock()
}

func (w *Window) OnClosed(fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.onClosed = append(w.onClosed, fn)
	w.mu.Unlock()
}

var (
	_ port.Window        = (*Window)(nil)
	_ port.WindowFactory = (*Factory)(nil)
)
