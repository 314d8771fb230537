package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Prefixes of generated node ids.
const (
	fallbackTabPrefix = "default:"
	floatSplitPrefix  = "float:"
)

// MoveOptions controls where a moved item lands.
type MoveOptions struct {
	DropZone entity.DropZone
	// RequiredOrientation rejects edge drops that would create a split with
	// another orientation. Empty accepts any.
	RequiredOrientation entity.Orientation
}

type secondaryWorkspace struct {
	workspace *WorkspaceManager
	window    port.Window
	// closing is set while the engine itself closes the window or hides its
	// items, so settle leaves it alone until the close resolves.
	closing bool
	vetoed  bool
}

// ControlManager owns the primary workspace, the floating workspaces and the
// hidden items of one dock control. It is not safe for concurrent use.
type ControlManager struct {
	primary     *WorkspaceManager
	secondaries []*secondaryWorkspace
	hidden      []*entity.DockItem
	windows     *WindowManager
	idGenerator IDGenerator
}

// NewControlManager creates a control manager around primary.
func NewControlManager(primary *WorkspaceManager, windows *WindowManager, idGenerator IDGenerator) *ControlManager {
	idGenerator = idGenerator.orDefault()
	if primary == nil {
		primary = NewWorkspaceManager("", nil, idGenerator)
	}
	cm := &ControlManager{
		primary:     primary,
		windows:     windows,
		idGenerator: idGenerator,
	}
	primary.OnMinimizedChanged(cm.onMinimizedChanged)
	return cm
}

// PrimaryWorkspace returns the workspace shown by the main window.
func (cm *ControlManager) PrimaryWorkspace() *WorkspaceManager {
	return cm.primary
}

// SecondaryWorkspaces returns the floating workspaces in creation order.
func (cm *ControlManager) SecondaryWorkspaces() []*WorkspaceManager {
	out := make([]*WorkspaceManager, 0, len(cm.secondaries))
	for _, s := range cm.secondaries {
		out = append(out, s.workspace)
	}
	return out
}

// Workspaces returns the primary workspace followed by the floating ones.
func (cm *ControlManager) Workspaces() []*WorkspaceManager {
	return append([]*WorkspaceManager{cm.primary}, cm.SecondaryWorkspaces()...)
}

// Workspace returns the workspace with id, or nil.
func (cm *ControlManager) Workspace(id entity.WorkspaceID) *WorkspaceManager {
	for _, ws := range cm.Workspaces() {
		if ws.ID() == id {
			return ws
		}
	}
	return nil
}

// Windows returns the window manager.
func (cm *ControlManager) Windows() *WindowManager {
	return cm.windows
}

// HiddenItems returns a copy of the hidden list.
func (cm *ControlManager) HiddenItems() []*entity.DockItem {
	return slices.Clone(cm.hidden)
}

// IsHidden reports whether item is in the hidden list.
func (cm *ControlManager) IsHidden(item *entity.DockItem) bool {
	return slices.Contains(cm.hidden, item)
}

// Items returns every item owned by the control: primary, floating, hidden.
func (cm *ControlManager) Items() []*entity.DockItem {
	var items []*entity.DockItem
	for _, ws := range cm.Workspaces() {
		items = append(items, ws.Items()...)
	}
	return append(items, cm.hidden...)
}

// FindItem searches the workspaces in order, then the hidden list.
func (cm *ControlManager) FindItem(id entity.ItemID) *entity.DockItem {
	for _, ws := range cm.Workspaces() {
		if item := ws.FindItem(id); item != nil {
			return item
		}
	}
	for _, item := range cm.hidden {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// FindNode returns the node with id from any workspace tree.
func (cm *ControlManager) FindNode(id entity.NodeID) entity.Node {
	for _, ws := range cm.Workspaces() {
		if node := entity.FindNode(ws.Tree(), id); node != nil {
			return node
		}
	}
	return nil
}

// FindOwningTabNode returns the tab node holding the item with id.
func (cm *ControlManager) FindOwningTabNode(id entity.ItemID) *entity.TabNode {
	for _, ws := range cm.Workspaces() {
		if tab := entity.FindOwningTabNode(ws.Tree(), id); tab != nil {
			return tab
		}
	}
	return nil
}

// WorkspaceForNode returns the workspace whose tree contains node.
func (cm *ControlManager) WorkspaceForNode(node entity.Node) *WorkspaceManager {
	if node == nil {
		return nil
	}
	for _, ws := range cm.Workspaces() {
		found := false
		entity.Walk(ws.Tree(), func(n entity.Node) bool {
			found = n == node
			return !found
		})
		if found {
			return ws
		}
	}
	return nil
}

// WorkspaceForItem returns the workspace holding item in its tree or its
// minimized list. Hidden items have no workspace.
func (cm *ControlManager) WorkspaceForItem(item *entity.DockItem) *WorkspaceManager {
	if item == nil {
		return nil
	}
	for _, ws := range cm.Workspaces() {
		if ws.FindItem(item.ID) != nil {
			return ws
		}
	}
	return nil
}

// AttachSecondaryWorkspace binds ws to a new host window. location may be nil
// to let the host place the window.
func (cm *ControlManager) AttachSecondaryWorkspace(ctx context.Context, ws *WorkspaceManager, location *entity.Point, size entity.Size) (port.Window, error) {
	if ws == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	if cm.secondary(ws) != nil || ws == cm.primary {
		return nil, fmt.Errorf("workspace %q is already attached", ws.ID())
	}

	window := cm.windows.CreateWindow()
	if window == nil {
		return nil, fmt.Errorf("window factory returned no window")
	}
	window.SetContent(ws)
	window.SetSize(size)
	if location != nil {
		window.SetPosition(*location)
	}

	rec := &secondaryWorkspace{workspace: ws, window: window}
	cm.secondaries = append(cm.secondaries, rec)

	ws.OnMinimizedChanged(cm.onMinimizedChanged)
	window.OnClosing(func(ev *port.ClosingEvent) { cm.handleClosing(ctx, rec, ev) })
	window.OnClosed(func() { cm.detachSecondary(ctx, rec) })

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(ws.ID())).
		Str("window_id", window.ID()).
		Msg("secondary workspace attached")

	return window, nil
}

// RemoveFloatingWorkspace closes the window of ws the way a user would: its
// items move to the hidden list and the workspace is detached once the window
// is gone. It fails with entity.ErrCloseDisabled when an item vetoes the close.
func (cm *ControlManager) RemoveFloatingWorkspace(ctx context.Context, ws *WorkspaceManager) error {
	rec := cm.secondary(ws)
	if rec == nil {
		return fmt.Errorf("remove floating workspace: %w", entity.ErrWorkspaceNotFound)
	}
	rec.vetoed = false
	rec.window.Close()
	if rec.vetoed {
		return fmt.Errorf("remove floating workspace %q: %w", ws.ID(), entity.ErrCloseDisabled)
	}
	return nil
}

// FloatingWorkspaceBounds returns the window bounds of a floating workspace.
func (cm *ControlManager) FloatingWorkspaceBounds(ws *WorkspaceManager) (entity.Rect, bool) {
	rec := cm.secondary(ws)
	if rec == nil {
		return entity.Rect{}, false
	}
	return rec.window.Bounds(), true
}

// ShowAllWindows shows every floating window.
func (cm *ControlManager) ShowAllWindows() {
	cm.windows.ShowAll()
}

// AddHiddenItem puts an item straight into the hidden list.
func (cm *ControlManager) AddHiddenItem(item *entity.DockItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	if cm.FindItem(item.ID) != nil {
		return fmt.Errorf("add hidden item %q: %w", item.ID, entity.ErrDuplicateItem)
	}
	item.DetachWorkspace()
	cm.hidden = append(cm.hidden, item)
	return nil
}

// MoveItem moves item relative to target. It reports false when the item or
// the target cannot be located, or the drop is rejected; nothing changes then.
func (cm *ControlManager) MoveItem(ctx context.Context, item *entity.DockItem, target entity.Node, opts MoveOptions) (bool, error) {
	if item == nil {
		return false, fmt.Errorf("item is required")
	}
	if target == nil {
		return false, fmt.Errorf("target node is required")
	}

	op := &moveOperation{owner: cm, item: item, target: target, options: opts}
	moved, err := op.execute(ctx)
	cm.settle(ctx)
	return moved, err
}

// FloatItem moves item into a new floating workspace shown in its own window.
// size defaults to entity.DefaultFloatSize.
func (cm *ControlManager) FloatItem(ctx context.Context, item *entity.DockItem, location *entity.Point, size *entity.Size) (*WorkspaceManager, error) {
	if item == nil {
		return nil, fmt.Errorf("item is required")
	}
	if cm.FindOwningTabNode(item.ID) == nil {
		return nil, fmt.Errorf("float %q: %w", item.ID, entity.ErrItemNotFound)
	}

	split := entity.NewSplitNode(entity.NodeID(floatSplitPrefix+cm.idGenerator()), entity.Horizontal)
	tab := entity.NewTabNode(entity.NodeID(cm.idGenerator()))
	split.AddChild(tab, entity.DefaultSize)
	ws := NewWorkspaceManager("", split, cm.idGenerator)

	windowSize := entity.DefaultFloatSize
	if size != nil {
		windowSize = *size
	}

	window, err := cm.AttachSecondaryWorkspace(ctx, ws, location, windowSize)
	if err != nil {
		return nil, fmt.Errorf("float %q: %w", item.ID, err)
	}
	window.Show(cm.windows.MainWindow())

	if _, err := cm.MoveItem(ctx, item, tab, MoveOptions{DropZone: entity.DropCenter}); err != nil {
		return nil, fmt.Errorf("float %q: %w", item.ID, err)
	}

	logging.FromContext(ctx).Debug().
		Str("item_id", string(item.ID)).
		Str("workspace_id", string(ws.ID())).
		Msg("item floated")

	return ws, nil
}

// Hide takes item out of its workspace into the hidden list, remembering the
// workspace and tab node for Show.
func (cm *ControlManager) Hide(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	if cm.IsHidden(item) {
		return ItemChange{}, fmt.Errorf("hide %q: %w", item.ID, entity.ErrAlreadyHidden)
	}
	ws := cm.WorkspaceForItem(item)
	if ws == nil {
		return ItemChange{}, fmt.Errorf("hide %q: %w", item.ID, entity.ErrItemNotFound)
	}

	item.PreferredWorkspace = ws.ID()
	if tab := entity.FindOwningTabNode(ws.Tree(), item.ID); tab != nil {
		item.PreferredTabNode = tab.ID
	}

	change, err := ws.RemoveItem(ctx, item)
	if err != nil {
		return ItemChange{}, err
	}
	cm.hidden = append(cm.hidden, item)
	change = change.Merge(ws.CommitChanges(true))

	logging.FromContext(ctx).Debug().
		Str("item_id", string(item.ID)).
		Str("workspace_id", string(ws.ID())).
		Msg("item hidden")

	cm.settle(ctx)
	return change, nil
}

// Show returns a hidden item to the workspace it was hidden from, or to the
// primary workspace when that one is gone.
func (cm *ControlManager) Show(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	index := slices.Index(cm.hidden, item)
	if index < 0 {
		return ItemChange{}, fmt.Errorf("show %q: %w", item.ID, entity.ErrNotHidden)
	}

	ws := cm.primary
	if item.PreferredWorkspace != "" {
		if preferred := cm.Workspace(item.PreferredWorkspace); preferred != nil {
			ws = preferred
		}
	}

	cm.hidden = slices.Delete(cm.hidden, index, index+1)
	change, err := ws.AddItem(ctx, item)
	if err != nil {
		cm.hidden = slices.Insert(cm.hidden, index, item)
		return ItemChange{}, fmt.Errorf("show %q: %w", item.ID, err)
	}
	item.ClearPreferredWorkspace()
	change = change.Merge(ws.CommitChanges(true))

	logging.FromContext(ctx).Debug().
		Str("item_id", string(item.ID)).
		Str("workspace_id", string(ws.ID())).
		Msg("item shown")

	cm.settle(ctx)
	return change, nil
}

// Close removes item from wherever it is. It does not consult DisableClose;
// use RequestClose for that.
func (cm *ControlManager) Close(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	log := logging.FromContext(ctx)

	if index := slices.Index(cm.hidden, item); index >= 0 {
		cm.hidden = slices.Delete(cm.hidden, index, index+1)
		log.Debug().Str("item_id", string(item.ID)).Msg("hidden item closed")
		return ItemChange{}, nil
	}

	ws := cm.WorkspaceForItem(item)
	if ws == nil {
		return ItemChange{}, fmt.Errorf("close %q: %w", item.ID, entity.ErrItemNotFound)
	}
	change, err := ws.RemoveItem(ctx, item)
	if err != nil {
		return ItemChange{}, err
	}
	change = change.Merge(ws.CommitChanges(true))

	log.Debug().
		Str("item_id", string(item.ID)).
		Str("workspace_id", string(ws.ID())).
		Msg("item closed")

	cm.settle(ctx)
	return change, nil
}

// Minimize moves item into its workspace's minimized list.
func (cm *ControlManager) Minimize(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	ws := cm.WorkspaceForItem(item)
	if ws == nil {
		return ItemChange{}, fmt.Errorf("minimize %q: %w", item.ID, entity.ErrItemNotFound)
	}
	change, err := ws.Minimize(ctx, item)
	if err != nil {
		return ItemChange{}, err
	}
	cm.settle(ctx)
	return change, nil
}

// Restore returns a minimized item to its workspace tree.
func (cm *ControlManager) Restore(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	ws := cm.WorkspaceForItem(item)
	if ws == nil {
		return ItemChange{}, fmt.Errorf("restore %q: %w", item.ID, entity.ErrItemNotFound)
	}
	change, err := ws.Restore(ctx, item)
	if err != nil {
		return ItemChange{}, err
	}
	cm.settle(ctx)
	return change, nil
}

// RequestClose closes item unless DisableClose is set.
func (cm *ControlManager) RequestClose(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item != nil && !item.CanClose() {
		cm.logRejected(ctx, item, "close")
		return ItemChange{}, fmt.Errorf("close %q: %w", item.ID, entity.ErrCloseDisabled)
	}
	return cm.Close(ctx, item)
}

// RequestHide hides item unless DisableHide is set.
func (cm *ControlManager) RequestHide(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item != nil && !item.CanHide() {
		cm.logRejected(ctx, item, "hide")
		return ItemChange{}, fmt.Errorf("hide %q: %w", item.ID, entity.ErrHideDisabled)
	}
	return cm.Hide(ctx, item)
}

// RequestMinimize minimizes item unless DisableMinimize is set.
func (cm *ControlManager) RequestMinimize(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item != nil && !item.CanMinimize() {
		cm.logRejected(ctx, item, "minimize")
		return ItemChange{}, fmt.Errorf("minimize %q: %w", item.ID, entity.ErrMinimizeDisabled)
	}
	return cm.Minimize(ctx, item)
}

// RequestMaximize checks that item may be maximized and returns the tab node
// the renderer should maximize. The tree is not changed.
func (cm *ControlManager) RequestMaximize(ctx context.Context, item *entity.DockItem) (*entity.TabNode, error) {
	if item == nil {
		return nil, fmt.Errorf("item is required")
	}
	if !item.CanMaximize() {
		cm.logRejected(ctx, item, "maximize")
		return nil, fmt.Errorf("maximize %q: %w", item.ID, entity.ErrMaximizeDisabled)
	}
	tab := cm.FindOwningTabNode(item.ID)
	if tab == nil {
		return nil, fmt.Errorf("maximize %q: %w", item.ID, entity.ErrItemNotFound)
	}
	tab.Select(item.ID)
	return tab, nil
}

// EnsureWorkspaceHasTabNode gives an empty workspace root a fresh empty tab
// node so there is always somewhere to drop. It reports whether one was added.
func (cm *ControlManager) EnsureWorkspaceHasTabNode(ctx context.Context, ws *WorkspaceManager) bool {
	if ws == nil || !ws.Tree().IsEmpty() {
		return false
	}
	tab := entity.NewTabNode(entity.NodeID(fallbackTabPrefix + cm.idGenerator()))
	ws.Tree().AddChild(tab, entity.DefaultSize)
	ws.CommitChanges(false)

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(ws.ID())).
		Str("node_id", string(tab.ID)).
		Msg("fallback tab node added")
	return true
}

// settle runs after every public mutation: floating workspaces left with no
// items close their window and every remaining workspace keeps a drop target.
func (cm *ControlManager) settle(ctx context.Context) {
	cm.pruneSecondaries(ctx)

	cm.EnsureWorkspaceHasTabNode(ctx, cm.primary)
	for _, rec := range slices.Clone(cm.secondaries) {
		if !rec.closing {
			cm.EnsureWorkspaceHasTabNode(ctx, rec.workspace)
		}
	}
}

// pruneSecondaries closes empty floating windows. A close the host cancels or
// defers leaves the workspace attached and is asked for again next time.
func (cm *ControlManager) pruneSecondaries(ctx context.Context) {
	for _, rec := range slices.Clone(cm.secondaries) {
		if rec.closing || len(rec.workspace.Items()) > 0 {
			continue
		}
		logging.FromContext(ctx).Debug().
			Str("workspace_id", string(rec.workspace.ID())).
			Msg("closing empty floating workspace")

		rec.closing = true
		rec.window.Close()
		rec.closing = false
	}
}

// handleClosing vetoes closing a floating window while it holds an item that
// cannot be closed; otherwise its items are hidden before the window goes.
func (cm *ControlManager) handleClosing(ctx context.Context, rec *secondaryWorkspace, ev *port.ClosingEvent) {
	if rec.closing || ev.Reason != port.CloseReasonWindowClosing {
		return
	}
	log := logging.FromContext(ctx)

	items := rec.workspace.Items()
	for _, item := range items {
		if !item.CanClose() {
			ev.Cancel = true
			rec.vetoed = true
			log.Warn().
				Str("workspace_id", string(rec.workspace.ID())).
				Str("item_id", string(item.ID)).
				Msg("floating window close vetoed")
			return
		}
	}

	// Hide settles after each item; the window must not be closed from there
	// while its own close is still running.
	rec.closing = true
	defer func() { rec.closing = false }()
	for _, item := range items {
		if _, err := cm.Hide(ctx, item); err != nil {
			log.Warn().Err(err).Str("item_id", string(item.ID)).Msg("failed to hide item of closing window")
		}
	}
}

func (cm *ControlManager) detachSecondary(ctx context.Context, rec *secondaryWorkspace) {
	index := slices.Index(cm.secondaries, rec)
	if index < 0 {
		return
	}
	cm.secondaries = slices.Delete(cm.secondaries, index, index+1)
	cm.windows.RemoveWindow(rec.window)

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(rec.workspace.ID())).
		Msg("secondary workspace detached")
}

// discardSecondaries closes every floating window of a control that is being
// thrown away. Items are not hidden.
func (cm *ControlManager) discardSecondaries(ctx context.Context) {
	for _, rec := range slices.Clone(cm.secondaries) {
		rec.closing = true
		cm.detachSecondary(ctx, rec)
		rec.window.Close()
	}
}

func (cm *ControlManager) secondary(ws *WorkspaceManager) *secondaryWorkspace {
	for _, rec := range cm.secondaries {
		if rec.workspace == ws {
			return rec
		}
	}
	return nil
}

func (cm *ControlManager) onMinimizedChanged(ctx context.Context, ws *WorkspaceManager, _ *entity.DockItem, _ bool) {
	if ws == cm.primary || cm.secondary(ws) != nil {
		cm.EnsureWorkspaceHasTabNode(ctx, ws)
	}
}

func (cm *ControlManager) logRejected(ctx context.Context, item *entity.DockItem, action string) {
	logging.FromContext(ctx).Warn().
		Str("item_id", string(item.ID)).
		Str("action", action).
		Msg("item request rejected")
}
