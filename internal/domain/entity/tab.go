package entity

import "slices"

// TabNode is a leaf container holding an ordered group of items, one of
// which may be selected.
type TabNode struct {
	ID NodeID

	tabs     []*DockItem
	selected *DockItem
}

// NewTabNode creates an empty tab node.
func NewTabNode(id NodeID) *TabNode {
	return &TabNode{ID: id}
}

// Tabs returns a copy of the tab list.
func (t *TabNode) Tabs() []*DockItem {
	return slices.Clone(t.tabs)
}

// Len returns the number of tabs.
func (t *TabNode) Len() int {
	return len(t.tabs)
}

// IsEmpty reports whether the node holds no tabs.
func (t *TabNode) IsEmpty() bool {
	return len(t.tabs) == 0
}

// IndexOfTab returns the position of the item with id, or -1.
func (t *TabNode) IndexOfTab(id ItemID) int {
	return slices.IndexFunc(t.tabs, func(item *DockItem) bool { return item.ID == id })
}

// HasTab reports whether an item with id is in this node.
func (t *TabNode) HasTab(id ItemID) bool {
	return t.IndexOfTab(id) >= 0
}

// Tab returns the item with id, or nil.
func (t *TabNode) Tab(id ItemID) *DockItem {
	if i := t.IndexOfTab(id); i >= 0 {
		return t.tabs[i]
	}
	return nil
}

// AddTab appends item. It returns false when an item with the same id is
// already present. The first tab added to an empty node becomes selected.
func (t *TabNode) AddTab(item *DockItem) bool {
	if item == nil || t.HasTab(item.ID) {
		return false
	}
	t.tabs = append(t.tabs, item)
	if t.selected == nil {
		t.selected = item
	}
	return true
}

// RemoveTab removes the item with id and reports whether it was present.
// Removing the selected tab selects its neighbour.
func (t *TabNode) RemoveTab(id ItemID) bool {
	index := t.IndexOfTab(id)
	if index < 0 {
		return false
	}
	removed := t.tabs[index]
	t.tabs = slices.Delete(t.tabs, index, index+1)

	if t.selected == removed {
		t.selected = nil
		if len(t.tabs) > 0 {
			t.selected = t.tabs[max(index-1, 0)]
		}
	}
	return true
}

// ClearTabs removes every tab.
func (t *TabNode) ClearTabs() {
	t.tabs = nil
	t.selected = nil
}

// Selected returns the selected item, or nil.
func (t *TabNode) Selected() *DockItem {
	return t.selected
}

// Select makes the item with id the selected tab. An empty id clears the
// selection. It returns false when the id is not one of this node's tabs.
func (t *TabNode) Select(id ItemID) bool {
	if id == "" {
		t.selected = nil
		return true
	}
	item := t.Tab(id)
	if item == nil {
		return false
	}
	t.selected = item
	return true
}
