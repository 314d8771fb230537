package entity

import "errors"

var (
	// ErrItemNotFound is returned when an operation targets an item that is not owned by the layout.
	ErrItemNotFound = errors.New("dock item not found")

	// ErrDuplicateItem is returned when an item id is already present in the layout.
	ErrDuplicateItem = errors.New("dock item already present")

	ErrNodeNotFound      = errors.New("node not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")

	ErrAlreadyMinimized = errors.New("dock item is already minimized")
	ErrNotMinimized     = errors.New("dock item is not minimized")
	ErrAlreadyHidden    = errors.New("dock item is already hidden")
	ErrNotHidden        = errors.New("dock item is not hidden")

	ErrCloseDisabled    = errors.New("close is disabled for this item")
	ErrHideDisabled     = errors.New("hide is disabled for this item")
	ErrMinimizeDisabled = errors.New("minimize is disabled for this item")
	ErrMaximizeDisabled = errors.New("maximize is disabled for this item")

	// ErrCenterRequiresTabNode is returned when a center drop targets a split node.
	ErrCenterRequiresTabNode = errors.New("center drop requires a tab node target")

	ErrIndexOutOfRange = errors.New("child index out of range")
	ErrSizeMismatch    = errors.New("size count does not match child count")

	// ErrParentNotFound is returned by the Error insert policy when the requested parent is missing.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrUnsupportedVersion is returned when a layout document has an unknown major version.
	ErrUnsupportedVersion = errors.New("unsupported layout version")

	// ErrMalformedLayout wraps structural problems found while reading a layout document.
	ErrMalformedLayout = errors.New("malformed layout document")

	ErrLayoutNotFound    = errors.New("saved layout not found")
	ErrInvalidLayoutName = errors.New("invalid layout name")
)
