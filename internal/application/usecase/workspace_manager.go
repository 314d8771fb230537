package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// MinimizedChangedFunc is called after an item enters (minimized true) or
// leaves the minimized list of a workspace.
type MinimizedChangedFunc func(ctx context.Context, ws *WorkspaceManager, item *entity.DockItem, minimized bool)

// WorkspaceManager owns one dock tree and the items minimized out of it.
// It is not safe for concurrent use.
type WorkspaceManager struct {
	id          entity.WorkspaceID
	tree        *entity.SplitNode
	minimized   []*entity.DockItem
	hovered     *entity.DockItem
	monitor     *NodeMonitor
	idGenerator IDGenerator

	minimizedChanged []MinimizedChangedFunc
}

// NewWorkspaceManager creates a workspace around root. A nil root is replaced
// by an empty horizontal split.
func NewWorkspaceManager(id entity.WorkspaceID, root *entity.SplitNode, idGenerator IDGenerator) *WorkspaceManager {
	idGenerator = idGenerator.orDefault()
	if id == "" {
		id = entity.WorkspaceID(idGenerator())
	}
	if root == nil {
		root = entity.NewSplitNode(entity.NodeID(idGenerator()), entity.Horizontal)
	}

	ws := &WorkspaceManager{
		id:          id,
		tree:        root,
		idGenerator: idGenerator,
	}
	ws.monitor = NewNodeMonitor(ws.hookItem, ws.unhookItem)
	ws.monitor.Monitor(root)
	return ws
}

// ID returns the workspace id.
func (ws *WorkspaceManager) ID() entity.WorkspaceID {
	return ws.id
}

// Tree returns the root split.
func (ws *WorkspaceManager) Tree() *entity.SplitNode {
	return ws.tree
}

// SetTree replaces the root split.
func (ws *WorkspaceManager) SetTree(root *entity.SplitNode) ItemChange {
	if root == nil || root == ws.tree {
		return ItemChange{}
	}
	old := ws.tree
	ws.tree = root
	return ws.monitor.Replace(old, root)
}

// Items returns the items in the tree followed by the minimized ones.
func (ws *WorkspaceManager) Items() []*entity.DockItem {
	return append(ws.monitor.Items(), ws.minimized...)
}

// MinimizedItems returns a copy of the minimized list.
func (ws *WorkspaceManager) MinimizedItems() []*entity.DockItem {
	return slices.Clone(ws.minimized)
}

// IsMinimized reports whether item is in this workspace's minimized list.
func (ws *WorkspaceManager) IsMinimized(item *entity.DockItem) bool {
	return ws.minimizedIndex(item) >= 0
}

// HoveredItem returns the minimized item currently previewed, or nil.
func (ws *WorkspaceManager) HoveredItem() *entity.DockItem {
	return ws.hovered
}

// SetHoveredItem sets the previewed item. It is never persisted.
func (ws *WorkspaceManager) SetHoveredItem(item *entity.DockItem) {
	ws.hovered = item
}

// OnMinimizedChanged registers fn for minimized list changes.
func (ws *WorkspaceManager) OnMinimizedChanged(fn MinimizedChangedFunc) {
	if fn != nil {
		ws.minimizedChanged = append(ws.minimizedChanged, fn)
	}
}

// FindItem returns the item with id from the tree or the minimized list.
func (ws *WorkspaceManager) FindItem(id entity.ItemID) *entity.DockItem {
	if id == "" {
		return nil
	}
	if item := entity.FindItem(ws.tree, id); item != nil {
		return item
	}
	for _, item := range ws.minimized {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// AddItem inserts item into the tree. The preferred tab node wins when it
// exists, then the first tab node; otherwise a tab node is created under the
// root. The preferred tab node is cleared on success.
func (ws *WorkspaceManager) AddItem(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	log := logging.FromContext(ctx)

	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	if ws.IsMinimized(item) {
		return ItemChange{}, fmt.Errorf("add item %q: %w", item.ID, entity.ErrAlreadyMinimized)
	}
	if entity.FindOwningTabNode(ws.tree, item.ID) != nil {
		return ItemChange{}, fmt.Errorf("add item %q: %w", item.ID, entity.ErrDuplicateItem)
	}

	var tab *entity.TabNode
	if item.PreferredTabNode != "" {
		tab, _ = entity.FindNode(ws.tree, item.PreferredTabNode).(*entity.TabNode)
	}
	if tab == nil {
		tab = entity.FindFirstTabNode(ws.tree)
	}
	if tab == nil {
		id := item.PreferredTabNode
		if id == "" {
			id = entity.NodeID(ws.idGenerator())
		}
		tab = entity.NewTabNode(id)
		ws.tree.AddChild(tab, entity.DefaultSize)
	}

	tab.AddTab(item)
	item.ClearPreferredTabNode()

	log.Debug().
		Str("workspace_id", string(ws.id)).
		Str("item_id", string(item.ID)).
		Str("node_id", string(tab.ID)).
		Msg("item added to workspace")

	return ws.monitor.Sync(), nil
}

// RemoveItem takes item out of the workspace, from the minimized list or the
// tree. A tab node left empty is removed from its parent. Removing an item
// the workspace does not hold is not an error.
func (ws *WorkspaceManager) RemoveItem(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	log := logging.FromContext(ctx)

	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}

	if index := ws.minimizedIndex(item); index >= 0 {
		ws.minimized = slices.Delete(ws.minimized, index, index+1)
		if ws.hovered == item {
			ws.hovered = nil
		}
		ws.unhookItem(item)
		log.Debug().
			Str("workspace_id", string(ws.id)).
			Str("item_id", string(item.ID)).
			Msg("minimized item removed from workspace")
		ws.notifyMinimized(ctx, item, false)
		return ItemChange{}, nil
	}

	tab := entity.FindOwningTabNode(ws.tree, item.ID)
	if tab == nil {
		return ItemChange{}, nil
	}

	tab.RemoveTab(item.ID)
	if tab.IsEmpty() {
		if parent := entity.FindContainingSplit(ws.tree, tab); parent != nil {
			parent.RemoveChild(tab)
		}
	}

	log.Debug().
		Str("workspace_id", string(ws.id)).
		Str("item_id", string(item.ID)).
		Str("node_id", string(tab.ID)).
		Msg("item removed from workspace")

	return ws.monitor.Sync(), nil
}

// Minimize moves item from the tree into the minimized list and records its
// tab node so Restore can return it there.
func (ws *WorkspaceManager) Minimize(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	if ws.IsMinimized(item) {
		return ItemChange{}, fmt.Errorf("minimize %q: %w", item.ID, entity.ErrAlreadyMinimized)
	}
	tab := entity.FindOwningTabNode(ws.tree, item.ID)
	if tab == nil {
		return ItemChange{}, fmt.Errorf("minimize %q: %w", item.ID, entity.ErrItemNotFound)
	}

	item.PreferredTabNode = tab.ID
	change, err := ws.RemoveItem(ctx, item)
	if err != nil {
		return ItemChange{}, err
	}
	ws.minimized = append(ws.minimized, item)
	item.AttachWorkspace(ws.id)
	change = change.Merge(ws.CommitChanges(true))

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(ws.id)).
		Str("item_id", string(item.ID)).
		Str("node_id", string(tab.ID)).
		Msg("item minimized")

	ws.notifyMinimized(ctx, item, true)
	return change, nil
}

// Restore moves a minimized item back into the tree.
func (ws *WorkspaceManager) Restore(ctx context.Context, item *entity.DockItem) (ItemChange, error) {
	if item == nil {
		return ItemChange{}, fmt.Errorf("item is required")
	}
	index := ws.minimizedIndex(item)
	if index < 0 {
		return ItemChange{}, fmt.Errorf("restore %q: %w", item.ID, entity.ErrNotMinimized)
	}

	ws.hovered = nil
	ws.minimized = slices.Delete(ws.minimized, index, index+1)

	change, err := ws.AddItem(ctx, item)
	if err != nil {
		ws.minimized = slices.Insert(ws.minimized, index, item)
		return ItemChange{}, err
	}
	change = change.Merge(ws.CommitChanges(true))

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(ws.id)).
		Str("item_id", string(item.ID)).
		Msg("item restored")

	ws.notifyMinimized(ctx, item, false)
	return change, nil
}

// CommitChanges ends a batch of structural edits. With collapse set the tree
// is normalized first. The tree is then flagged for a visual rebuild.
func (ws *WorkspaceManager) CommitChanges(collapse bool) ItemChange {
	if collapse {
		ws.tree.RemoveEmptyPanels()
	}
	ws.tree.CommitChanges()
	return ws.monitor.Sync()
}

func (ws *WorkspaceManager) minimizedIndex(item *entity.DockItem) int {
	return slices.Index(ws.minimized, item)
}

func (ws *WorkspaceManager) notifyMinimized(ctx context.Context, item *entity.DockItem, minimized bool) {
	for _, fn := range ws.minimizedChanged {
		fn(ctx, ws, item, minimized)
	}
}

func (ws *WorkspaceManager) hookItem(item *entity.DockItem) {
	item.AttachWorkspace(ws.id)
}

func (ws *WorkspaceManager) unhookItem(item *entity.DockItem) {
	if ws.IsMinimized(item) || item.Workspace() != ws.id {
		return
	}
	item.DetachWorkspace()
}
