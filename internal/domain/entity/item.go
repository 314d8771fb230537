package entity

// ItemID uniquely identifies a dock item within one layout.
type ItemID string

// UntitledTitle is the title given to items created without one.
const UntitledTitle = "[Untitled]"

// DockItem is a single dockable unit of content.
// It lives in exactly one place at a time: a TabNode, a workspace's minimized
// list, or the hidden list of the layout.
type DockItem struct {
	ID      ItemID
	Title   string
	Context any // owned by the host, never inspected

	DisableClose    bool
	DisableHide     bool
	DisableMaximize bool
	DisableMinimize bool

	// Routing hints. Empty means unset.
	PreferredTabNode   NodeID
	PreferredWorkspace WorkspaceID

	workspace WorkspaceID
}

// NewDockItem creates an item with the given id and title.
func NewDockItem(id ItemID, title string) *DockItem {
	if title == "" {
		title = UntitledTitle
	}
	return &DockItem{ID: id, Title: title}
}

// Workspace returns the id of the workspace currently holding the item,
// or "" when the item is hidden or detached.
func (i *DockItem) Workspace() WorkspaceID {
	return i.workspace
}

// AttachWorkspace records the workspace holding the item.
func (i *DockItem) AttachWorkspace(id WorkspaceID) {
	i.workspace = id
}

// DetachWorkspace clears the workspace back-reference.
func (i *DockItem) DetachWorkspace() {
	i.workspace = ""
}

func (i *DockItem) CanClose() bool    { return !i.DisableClose }
func (i *DockItem) CanHide() bool     { return !i.DisableHide }
func (i *DockItem) CanMinimize() bool { return !i.DisableMinimize }
func (i *DockItem) CanMaximize() bool { return !i.DisableMaximize }

// ClearPreferredTabNode drops the tab group routing hint.
func (i *DockItem) ClearPreferredTabNode() {
	i.PreferredTabNode = ""
}

// ClearPreferredWorkspace drops the workspace routing hint.
func (i *DockItem) ClearPreferredWorkspace() {
	i.PreferredWorkspace = ""
}
