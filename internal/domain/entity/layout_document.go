package entity

import "time"

// Layout document version written by this package. Only documents with the
// same major version can be loaded.
const (
	LayoutVersionMajor = 1
	LayoutVersionMinor = 0
	LayoutVersionPatch = 0
)

// LayoutVersion is the major.minor.patch triple of a layout document.
type LayoutVersion struct {
	Major, Minor, Patch int
}

// NodeDocumentType tags the variants of NodeDocument.
type NodeDocumentType string

const (
	NodeDocumentSplit NodeDocumentType = "split"
	NodeDocumentTab   NodeDocumentType = "tab"
)

// LayoutDocument is the persisted form of a whole dock layout: the primary
// workspace, hidden items and floating windows.
type LayoutDocument struct {
	Major               int                `json:"major" yaml:"major" toml:"major"`
	Minor               int                `json:"minor" yaml:"minor" toml:"minor"`
	Patch               int                `json:"patch" yaml:"patch" toml:"patch"`
	PrimaryWorkspace    *WorkspaceDocument `json:"primaryWorkspace" yaml:"primaryWorkspace" toml:"primaryWorkspace"`
	Hidden              []ItemDocument     `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	SecondaryWorkspaces []WindowDocument   `json:"secondaryWorkspaces,omitempty" yaml:"secondaryWorkspaces,omitempty" toml:"secondaryWorkspaces,omitempty"`
}

// WorkspaceDocument captures one workspace tree and its minimized items.
type WorkspaceDocument struct {
	ID        string         `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	DockTree  *NodeDocument  `json:"dockTree,omitempty" yaml:"dockTree,omitempty" toml:"dockTree,omitempty"`
	Minimized []ItemDocument `json:"minimized,omitempty" yaml:"minimized,omitempty" toml:"minimized,omitempty"`
}

// WindowDocument captures a floating window and the workspace it shows.
type WindowDocument struct {
	Left      int                `json:"left" yaml:"left" toml:"left"`
	Top       int                `json:"top" yaml:"top" toml:"top"`
	Width     float64            `json:"width" yaml:"width" toml:"width"`
	Height    float64            `json:"height" yaml:"height" toml:"height"`
	Workspace *WorkspaceDocument `json:"workspace,omitempty" yaml:"workspace,omitempty" toml:"workspace,omitempty"`
}

// NodeDocument is a tagged union: split fields are set when Type is "split",
// tab fields when Type is "tab".
type NodeDocument struct {
	Type NodeDocumentType `json:"$type" yaml:"$type" toml:"$type" jsonschema:"enum=split,enum=tab"`
	ID   string           `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`

	// split
	Orientation Orientation    `json:"orientation,omitempty" yaml:"orientation,omitempty" toml:"orientation,omitempty"`
	Children    []NodeDocument `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Sizes       []float64      `json:"sizes,omitempty" yaml:"sizes,omitempty" toml:"sizes,omitempty"`

	// tab
	SelectedID string         `json:"selectedId,omitempty" yaml:"selectedId,omitempty" toml:"selectedId,omitempty"`
	Tabs       []ItemDocument `json:"tabs,omitempty" yaml:"tabs,omitempty" toml:"tabs,omitempty"`
}

// ItemDocument captures an item. Context is never persisted.
type ItemDocument struct {
	ID              string `json:"id" yaml:"id" toml:"id"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	DisableClose    bool   `json:"disableClose,omitempty" yaml:"disableClose,omitempty" toml:"disableClose,omitempty"`
	DisableHide     bool   `json:"disableHide,omitempty" yaml:"disableHide,omitempty" toml:"disableHide,omitempty"`
	DisableMaximize bool   `json:"disableMaximize,omitempty" yaml:"disableMaximize,omitempty" toml:"disableMaximize,omitempty"`
	DisableMinimize bool   `json:"disableMinimize,omitempty" yaml:"disableMinimize,omitempty" toml:"disableMinimize,omitempty"`
	Panel           string `json:"panel,omitempty" yaml:"panel,omitempty" toml:"panel,omitempty"`
	Workspace       string `json:"workspace,omitempty" yaml:"workspace,omitempty" toml:"workspace,omitempty"`
}

// NewLayoutDocument returns an empty document stamped with the current version.
func NewLayoutDocument() *LayoutDocument {
	return &LayoutDocument{
		Major: LayoutVersionMajor,
		Minor: LayoutVersionMinor,
		Patch: LayoutVersionPatch,
	}
}

// Version returns the document version.
func (d *LayoutDocument) Version() LayoutVersion {
	return LayoutVersion{Major: d.Major, Minor: d.Minor, Patch: d.Patch}
}

// Workspaces returns the primary workspace followed by every floating one.
func (d *LayoutDocument) Workspaces() []*WorkspaceDocument {
	var out []*WorkspaceDocument
	if d.PrimaryWorkspace != nil {
		out = append(out, d.PrimaryWorkspace)
	}
	for i := range d.SecondaryWorkspaces {
		if ws := d.SecondaryWorkspaces[i].Workspace; ws != nil {
			out = append(out, ws)
		}
	}
	return out
}

// CountItems returns the number of items declared anywhere in the document.
func (d *LayoutDocument) CountItems() int {
	count := len(d.Hidden)
	for _, ws := range d.Workspaces() {
		count += len(ws.Minimized)
		if ws.DockTree != nil {
			count += ws.DockTree.CountItems()
		}
	}
	return count
}

// CountItems returns the number of tabs in the subtree.
func (n *NodeDocument) CountItems() int {
	count := len(n.Tabs)
	for i := range n.Children {
		count += n.Children[i].CountItems()
	}
	return count
}

// SavedLayout is a named layout document stored by a repository.
type SavedLayout struct {
	Name      string
	Document  *LayoutDocument
	Digest    uint64 // content fingerprint of the encoded document
	ItemCount int
	UpdatedAt time.Time
}
