package window

import (
	"testing"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_MainWindowCoversFirstScreen(t *testing.T) {
	f := NewFactory()

	main := f.MainWindow()
	assert.Equal(t, "main", main.ID())
	assert.True(t, main.Visible())
	assert.Equal(t, DefaultScreen, main.Bounds())
}

func TestFactory_CreateWindowAssignsIDs(t *testing.T) {
	f := NewFactory()

	a := f.CreateWindow()
	b := f.CreateWindow()

	assert.Equal(t, "window-1", a.ID())
	assert.Equal(t, "window-2", b.ID())
	assert.False(t, a.Visible())
	assert.Equal(t, entity.DefaultFloatSize, a.Size())
	assert.Len(t, f.Created(), 2)
}

func TestWindow_IsOnScreen(t *testing.T) {
	f := NewFactory(
		entity.Rect{X: 0, Y: 0, Width: 1000, Height: 800},
		entity.Rect{X: 1000, Y: 0, Width: 1000, Height: 800},
	)
	main := f.MainWindow()

	tests := []struct {
		name string
		rect entity.Rect
		want bool
	}{
		{"inside first screen", entity.Rect{X: 10, Y: 10, Width: 100, Height: 100}, true},
		{"inside second screen", entity.Rect{X: 1500, Y: 100, Width: 100, Height: 100}, true},
		{"partly visible", entity.Rect{X: -50, Y: -50, Width: 100, Height: 100}, true},
		{"far away", entity.Rect{X: 5000, Y: 5000, Width: 100, Height: 100}, false},
		{"below", entity.Rect{X: 0, Y: 900, Width: 100, Height: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, main.IsOnScreen(tt.rect))
		})
	}
}

func TestWindow_ShowRecordsOwner(t *testing.T) {
	f := NewFactory()
	w := f.CreateWindow().(*Window)

	w.Show(f.MainWindow())

	assert.True(t, w.Visible())
	assert.Equal(t, f.MainWindow(), w.Owner())
}

func TestWindow_CloseRunsHandlers(t *testing.T) {
	f := NewFactory()
	w := f.CreateWindow().(*Window)

	var reasons []port.CloseReason
	closed := 0
	w.OnClosing(func(ev *port.ClosingEvent) { reasons = append(reasons, ev.Reason) })
	w.OnClosed(func() { closed++ })

	w.Show(nil)
	w.Close()
	w.Close()

	assert.Equal(t, []port.CloseReason{port.CloseReasonWindowClosing}, reasons)
	assert.Equal(t, 1, closed)
	assert.True(t, w.Closed())
	assert.False(t, w.Visible())
	assert.Empty(t, f.Open())
}

func TestWindow_CloseCanBeCancelled(t *testing.T) {
	f := NewFactory()
	w := f.CreateWindow().(*Window)

	closed := false
	w.OnClosing(func(ev *port.ClosingEvent) { ev.Cancel = ev.Reason == port.CloseReasonWindowClosing })
	w.OnClosed(func() { closed = true })

	require.False(t, w.CloseWithReason(port.CloseReasonWindowClosing))
	assert.False(t, closed)
	assert.False(t, w.Closed())

	require.True(t, w.CloseWithReason(port.CloseReasonApplicationShutdown))
	assert.True(t, closed)
}

func TestWindow_ShowAfterCloseIsIgnored(t *testing.T) {
	f := NewFactory()
	w := f.CreateWindow().(*Window)
	w.Close()

	w.Show(f.MainWindow())

	assert.False(t, w.Visible())
	assert.Nil(t, w.Owner())
}
