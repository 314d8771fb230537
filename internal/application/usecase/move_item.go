package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// moveOperation is one MoveItem call. Every branch either commits fully or
// leaves the trees untouched.
type moveOperation struct {
	owner   *ControlManager
	item    *entity.DockItem
	target  entity.Node
	options MoveOptions
}

func (op *moveOperation) execute(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	source := op.owner.FindOwningTabNode(op.item.ID)
	if source == nil {
		log.Debug().Str("item_id", string(op.item.ID)).Msg("move ignored: item is not in a tab node")
		return false, nil
	}
	sourceWS := op.owner.WorkspaceForNode(source)
	targetWS := op.owner.WorkspaceForNode(op.target)
	if sourceWS == nil || targetWS == nil {
		log.Debug().
			Str("item_id", string(op.item.ID)).
			Str("node_id", string(op.target.NodeID())).
			Msg("move ignored: source or target is not in a workspace")
		return false, nil
	}

	zone := op.options.DropZone
	if zone == entity.DropNone || (entity.Node(source) == op.target && source.Len() == 1) {
		return true, nil
	}

	switch {
	case zone == entity.DropCenter:
		return op.dropCenter(ctx, sourceWS, targetWS)
	case zone.IsEdge():
		orientation, _ := zone.Orientation()
		if op.options.RequiredOrientation != "" && op.options.RequiredOrientation != orientation {
			log.Debug().
				Str("item_id", string(op.item.ID)).
				Str("zone", zone.String()).
				Str("required", string(op.options.RequiredOrientation)).
				Msg("move rejected: orientation mismatch")
			return false, nil
		}
		return op.dropEdge(ctx, sourceWS, targetWS, orientation)
	default:
		return false, fmt.Errorf("unsupported drop zone %s", zone)
	}
}

// dropCenter adds the item as a tab of the target tab node.
func (op *moveOperation) dropCenter(ctx context.Context, sourceWS, targetWS *WorkspaceManager) (bool, error) {
	tab, ok := op.target.(*entity.TabNode)
	if !ok {
		return false, fmt.Errorf("move %q onto %q: %w", op.item.ID, op.target.NodeID(), entity.ErrCenterRequiresTabNode)
	}

	if _, err := sourceWS.RemoveItem(ctx, op.item); err != nil {
		return false, err
	}
	tab.AddTab(op.item)
	tab.Select(op.item.ID)
	op.commit(sourceWS, targetWS)

	logging.FromContext(ctx).Debug().
		Str("item_id", string(op.item.ID)).
		Str("node_id", string(tab.ID)).
		Msg("item joined tab node")
	return true, nil
}

// dropEdge wraps the target and a new tab node holding the item into a split.
func (op *moveOperation) dropEdge(ctx context.Context, sourceWS, targetWS *WorkspaceManager, orientation entity.Orientation) (bool, error) {
	root := targetWS.Tree()
	parent := entity.FindContainingSplit(root, op.target)
	if parent == nil && op.target != entity.Node(root) {
		return false, nil
	}

	newTab := entity.NewTabNode(entity.NodeID(op.owner.idGenerator()))
	before := op.options.DropZone.InsertsBefore()

	if _, err := sourceWS.RemoveItem(ctx, op.item); err != nil {
		return false, err
	}
	newTab.AddTab(op.item)

	if parent == nil {
		op.dropOnRoot(root, newTab, orientation, before)
	} else {
		// Removing the item may have pruned a sibling, so the index is
		// resolved only now.
		index := parent.IndexOf(op.target)
		if index < 0 {
			return false, fmt.Errorf("move %q: target %q left its parent", op.item.ID, op.target.NodeID())
		}

		wrapper := entity.NewSplitNode(entity.NodeID(op.owner.idGenerator()), orientation)
		if before {
			wrapper.AddChild(newTab, entity.DefaultSize)
			wrapper.AddChild(op.target, entity.DefaultSize)
		} else {
			wrapper.AddChild(op.target, entity.DefaultSize)
			wrapper.AddChild(newTab, entity.DefaultSize)
		}
		if err := parent.ReplaceChildAt(index, wrapper); err != nil {
			return false, err
		}
		parent.FlattenChild(index)
	}

	op.commit(sourceWS, targetWS)

	logging.FromContext(ctx).Debug().
		Str("item_id", string(op.item.ID)).
		Str("node_id", string(op.target.NodeID())).
		Str("zone", op.options.DropZone.String()).
		Msg("item split next to target")
	return true, nil
}

// dropOnRoot docks the new tab node along an edge of the whole workspace.
// The root keeps its identity; when the orientation changes its children are
// pushed down into a nested split first.
func (op *moveOperation) dropOnRoot(root *entity.SplitNode, newTab *entity.TabNode, orientation entity.Orientation, before bool) {
	if root.Orientation != orientation && !root.IsEmpty() {
		root.WrapChildren(entity.NodeID(op.owner.idGenerator()), orientation)
	}
	root.Orientation = orientation
	if before {
		_ = root.InsertAt(0, newTab, entity.DefaultSize)
		return
	}
	root.AddChild(newTab, entity.DefaultSize)
}

func (op *moveOperation) commit(sourceWS, targetWS *WorkspaceManager) {
	sourceWS.CommitChanges(true)
	if targetWS != sourceWS {
		targetWS.CommitChanges(true)
	}
}
