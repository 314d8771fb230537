package usecase

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ItemChange lists the items that entered or left a set of trees during one
// mutation.
type ItemChange struct {
	Entered []*entity.DockItem
	Left    []*entity.DockItem
}

// IsEmpty reports whether nothing entered or left.
func (c ItemChange) IsEmpty() bool {
	return len(c.Entered) == 0 && len(c.Left) == 0
}

// Merge combines two changes. An item that left one tree and entered another
// is a move and cancels out.
func (c ItemChange) Merge(o ItemChange) ItemChange {
	entered := append(slices.Clone(c.Entered), o.Entered...)
	left := append(slices.Clone(c.Left), o.Left...)

	out := ItemChange{}
	for _, item := range entered {
		if !slices.Contains(left, item) {
			out.Entered = append(out.Entered, item)
		}
	}
	for _, item := range left {
		if !slices.Contains(entered, item) {
			out.Left = append(out.Left, item)
		}
	}
	return out
}

// NodeMonitor tracks which items are reachable from a set of root splits.
// Sync diffs the current trees against the last snapshot and runs the enter
// and leave hooks for every difference, leaves first.
type NodeMonitor struct {
	roots   []*entity.SplitNode
	items   []*entity.DockItem
	onEnter func(*entity.DockItem)
	onLeave func(*entity.DockItem)
}

// NewNodeMonitor creates a monitor. Either hook may be nil.
func NewNodeMonitor(onEnter, onLeave func(*entity.DockItem)) *NodeMonitor {
	return &NodeMonitor{onEnter: onEnter, onLeave: onLeave}
}

// Monitor starts tracking root. Monitoring a root twice is a no-op.
func (m *NodeMonitor) Monitor(root *entity.SplitNode) ItemChange {
	if root == nil || slices.Contains(m.roots, root) {
		return ItemChange{}
	}
	m.roots = append(m.roots, root)
	return m.Sync()
}

// Unmonitor stops tracking root. Its items are reported as left.
func (m *NodeMonitor) Unmonitor(root *entity.SplitNode) ItemChange {
	index := slices.Index(m.roots, root)
	if index < 0 {
		return ItemChange{}
	}
	m.roots = slices.Delete(m.roots, index, index+1)
	return m.Sync()
}

// Replace swaps old for root in one step so items present in both trees are
// not reported.
func (m *NodeMonitor) Replace(old, root *entity.SplitNode) ItemChange {
	if index := slices.Index(m.roots, old); index >= 0 {
		m.roots = slices.Delete(m.roots, index, index+1)
	}
	if root != nil && !slices.Contains(m.roots, root) {
		m.roots = append(m.roots, root)
	}
	return m.Sync()
}

// Items returns the items seen by the last Sync, in tree order.
func (m *NodeMonitor) Items() []*entity.DockItem {
	return slices.Clone(m.items)
}

// Sync walks every monitored root and reports what changed since the last call.
func (m *NodeMonitor) Sync() ItemChange {
	var current []*entity.DockItem
	for _, root := range m.roots {
		current = append(current, entity.CollectItems(root)...)
	}

	var change ItemChange
	for _, item := range m.items {
		if !slices.Contains(current, item) {
			change.Left = append(change.Left, item)
		}
	}
	for _, item := range current {
		if !slices.Contains(m.items, item) {
			change.Entered = append(change.Entered, item)
		}
	}
	m.items = current

	if m.onLeave != nil {
		for _, item := range change.Left {
			m.onLeave(item)
		}
	}
	if m.onEnter != nil {
		for _, item := range change.Entered {
			m.onEnter(item)
		}
	}
	return change
}
