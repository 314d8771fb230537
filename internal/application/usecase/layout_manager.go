package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// LayoutManager is the entry point a host uses to populate a dock control and
// to save or load its layout.
type LayoutManager struct {
	control      *ControlManager
	windows      *WindowManager
	codec        port.LayoutCodec
	idGenerator  IDGenerator
	insertPolicy entity.InsertPolicy
	placeholder  string
	floatSize    entity.Size
}

// NewLayoutManager creates a layout with a horizontal primary root holding one
// empty tab node per panel id.
func NewLayoutManager(windows *WindowManager, codec port.LayoutCodec, idGenerator IDGenerator, panels ...entity.NodeID) *LayoutManager {
	idGenerator = idGenerator.orDefault()

	root := entity.NewSplitNode(entity.NodeID(idGenerator()), entity.Horizontal)
	for _, id := range panels {
		if id == "" {
			continue
		}
		root.AddChild(entity.NewTabNode(id), entity.DefaultSize)
	}

	primary := NewWorkspaceManager("", root, idGenerator)
	return &LayoutManager{
		control:      NewControlManager(primary, windows, idGenerator),
		windows:      windows,
		codec:        codec,
		idGenerator:  idGenerator,
		insertPolicy: entity.DefaultInsertPolicy,
		placeholder:  DefaultPlaceholder,
		floatSize:    entity.DefaultFloatSize,
	}
}

// Control returns the current control. ApplyLayout swaps it.
func (lm *LayoutManager) Control() *ControlManager {
	return lm.control
}

// InsertPolicy returns the policy used by CreateOrUpdateItem.
func (lm *LayoutManager) InsertPolicy() entity.InsertPolicy {
	return lm.insertPolicy
}

// SetInsertPolicy sets the policy used by CreateOrUpdateItem.
func (lm *LayoutManager) SetInsertPolicy(policy entity.InsertPolicy) {
	lm.insertPolicy = policy
}

// SetPlaceholder sets the title and context given to items read from a layout.
func (lm *LayoutManager) SetPlaceholder(placeholder string) {
	if placeholder != "" {
		lm.placeholder = placeholder
	}
}

// SetFloatSize sets the size of windows opened by the CreateFloating policy.
func (lm *LayoutManager) SetFloatSize(size entity.Size) {
	if size.Width > 0 && size.Height > 0 {
		lm.floatSize = size
	}
}

// CreateOrUpdateItem updates the item with id when it exists anywhere in the
// control. Otherwise it creates it under defaultParentID, or under the
// primary root when defaultParentID is empty. A nil title leaves an existing
// title alone.
func (lm *LayoutManager) CreateOrUpdateItem(ctx context.Context, id entity.ItemID, title *string, itemContext any, defaultParentID entity.NodeID) (*entity.DockItem, error) {
	log := logging.FromContext(ctx)
	cm := lm.control

	if strings.TrimSpace(string(id)) == "" {
		return nil, fmt.Errorf("item id cannot be blank")
	}

	if item := cm.FindItem(id); item != nil {
		if title != nil {
			item.Title = *title
		}
		item.Context = itemContext
		if ws := cm.WorkspaceForItem(item); ws != nil {
			ws.CommitChanges(true)
		}
		log.Debug().Str("item_id", string(id)).Msg("item updated")
		return item, nil
	}

	var target entity.Node = cm.PrimaryWorkspace().Tree()
	if defaultParentID != "" {
		target = cm.FindNode(defaultParentID)
	}

	if target == nil {
		switch lm.insertPolicy {
		case entity.InsertError:
			return nil, fmt.Errorf("create %q under %q: %w", id, defaultParentID, entity.ErrParentNotFound)
		case entity.InsertCreateFloating:
			tab, err := lm.openFloatingTarget(ctx)
			if err != nil {
				return nil, fmt.Errorf("create %q: %w", id, err)
			}
			target = tab
		default:
			target = cm.PrimaryWorkspace().Tree()
		}
	}

	var text string
	if title != nil {
		text = *title
	}
	item := entity.NewDockItem(id, text)
	item.Context = itemContext

	switch node := target.(type) {
	case *entity.TabNode:
		node.AddTab(item)
	case *entity.SplitNode:
		tab := entity.NewTabNode(entity.NodeID(lm.idGenerator()))
		tab.AddTab(item)
		if lm.insertPolicy == entity.InsertCreateFirst {
			if err := node.InsertAt(0, tab, entity.DefaultSize); err != nil {
				return nil, err
			}
		} else {
			node.AddChild(tab, entity.DefaultSize)
		}
	}

	ws := cm.WorkspaceForItem(item)
	if ws == nil {
		return nil, fmt.Errorf("create %q: target %q is not in a workspace", id, target.NodeID())
	}
	ws.CommitChanges(true)

	log.Debug().
		Str("item_id", string(id)).
		Str("workspace_id", string(ws.ID())).
		Str("policy", string(lm.insertPolicy)).
		Msg("item created")
	return item, nil
}

func (lm *LayoutManager) openFloatingTarget(ctx context.Context) (*entity.TabNode, error) {
	tab := entity.NewTabNode(entity.NodeID(lm.idGenerator()))
	split := entity.NewSplitNode(entity.NodeID(floatSplitPrefix+lm.idGenerator()), entity.Horizontal)
	split.AddChild(tab, entity.DefaultSize)
	ws := NewWorkspaceManager("", split, lm.idGenerator)

	window, err := lm.control.AttachSecondaryWorkspace(ctx, ws, nil, lm.floatSize)
	if err != nil {
		return nil, err
	}
	window.Show(lm.windows.MainWindow())
	return tab, nil
}

// Snapshot captures the current layout.
func (lm *LayoutManager) Snapshot() *entity.LayoutDocument {
	return BuildLayout(lm.control)
}

// ApplyLayout replaces the control with one built from doc. Items known at
// runtime keep their context when the layout names them; the rest go to the
// hidden list. When doc cannot be built the current control is untouched.
func (lm *LayoutManager) ApplyLayout(ctx context.Context, doc *entity.LayoutDocument) error {
	log := logging.FromContext(ctx)

	next, err := BuildControl(ctx, doc, lm.windows, lm.idGenerator, lm.placeholder)
	if err != nil {
		return fmt.Errorf("apply layout: %w", err)
	}

	previous := lm.control
	var kept, parked int
	for _, runtime := range previous.Items() {
		if _, err := previous.Close(ctx, runtime); err != nil {
			log.Warn().Err(err).Str("item_id", string(runtime.ID)).Msg("failed to release item from previous layout")
		}

		if serialized := next.FindItem(runtime.ID); serialized != nil {
			serialized.Context = runtime.Context
			kept++
			continue
		}
		if err := next.AddHiddenItem(runtime); err != nil {
			log.Warn().Err(err).Str("item_id", string(runtime.ID)).Msg("failed to park runtime item")
			continue
		}
		parked++
	}

	for _, ws := range next.Workspaces() {
		ws.CommitChanges(true)
		next.EnsureWorkspaceHasTabNode(ctx, ws)
	}
	lm.control = next
	next.ShowAllWindows()

	log.Info().
		Int("item_count", len(next.Items())).
		Int("kept", kept).
		Int("parked", parked).
		Int("floating", len(next.SecondaryWorkspaces())).
		Msg("layout applied")
	return nil
}

// SaveLayout writes the current layout through the codec.
func (lm *LayoutManager) SaveLayout(ctx context.Context, w io.Writer) error {
	doc := lm.Snapshot()
	if err := lm.codec.Encode(w, doc); err != nil {
		return fmt.Errorf("save layout as %s: %w", lm.codec.Name(), err)
	}
	logging.FromContext(ctx).Debug().
		Str("codec", lm.codec.Name()).
		Int("item_count", doc.CountItems()).
		Msg("layout saved")
	return nil
}

// LoadLayout reads a layout through the codec and applies it.
func (lm *LayoutManager) LoadLayout(ctx context.Context, r io.Reader) error {
	doc, err := lm.codec.Decode(r)
	if err != nil {
		return fmt.Errorf("load layout as %s: %w", lm.codec.Name(), err)
	}
	return lm.ApplyLayout(ctx, doc)
}
