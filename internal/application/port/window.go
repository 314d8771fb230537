package port

import "github.com/bnema/dockyard/internal/domain/entity"

//go:generate mockgen -source=window.go -destination=mocks/mock_window.go -package=mocks

// CloseReason tells a closing handler why a window is going away.
type CloseReason int

const (
	CloseReasonWindowClosing CloseReason = iota // The user closed the window
	CloseReasonOwnerClosing                     // The owner window is closing
	CloseReasonApplicationShutdown
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonWindowClosing:
		return "window_closing"
	case CloseReasonOwnerClosing:
		return "owner_closing"
	case CloseReasonApplicationShutdown:
		return "application_shutdown"
	default:
		return "unknown"
	}
}

// ClosingEvent is passed to closing handlers. Setting Cancel vetoes the close.
type ClosingEvent struct {
	Reason CloseReason
	Cancel bool
}

// Window is a host surface that shows one workspace.
// The engine only passes positions and sizes through; it never draws.
type Window interface {
	ID() string

	// Content is the workspace shown by the window, or nil.
	Content() any
	SetContent(content any)

	Position() entity.Point
	SetPosition(p entity.Point)
	Size() entity.Size
	SetSize(s entity.Size)
	Bounds() entity.Rect
	Visible() bool

	// Show makes the window visible. owner may be nil.
	Show(owner Window)
	// Close asks the host to close the window. Closing handlers run first
	// and may cancel; closed handlers run once the window is gone.
	Close()

	// IsOnScreen reports whether r is visible on one of the host's displays.
	IsOnScreen(r entity.Rect) bool

	OnClosing(fn func(ev *ClosingEvent))
	OnClosed(fn func())
}

// WindowFactory creates host windows.
type WindowFactory interface {
	// MainWindow returns the window showing the primary workspace.
	MainWindow() Window
	// CreateWindow returns a new hidden window.
	CreateWindow() Window
}
