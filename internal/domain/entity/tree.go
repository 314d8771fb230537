package entity

import (
	"fmt"
	"strings"
)

// Walk visits node and its descendants in pre-order. Returning false from fn
// stops the walk.
func Walk(node Node, fn func(Node) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	switch n := node.(type) {
	case *SplitNode:
		for _, child := range n.children {
			if !Walk(child, fn) {
				return false
			}
		}
	case *TabNode:
	default:
		unknownNode(node)
	}
	return true
}

// FindFirstTabNode returns the first TabNode in pre-order, or nil.
func FindFirstTabNode(root Node) *TabNode {
	var found *TabNode
	Walk(root, func(n Node) bool {
		if tab, ok := n.(*TabNode); ok {
			found = tab
			return false
		}
		return true
	})
	return found
}

// FindOwningTabNode returns the TabNode holding the item with id, or nil.
func FindOwningTabNode(root Node, id ItemID) *TabNode {
	if id == "" {
		return nil
	}
	var found *TabNode
	Walk(root, func(n Node) bool {
		if tab, ok := n.(*TabNode); ok && tab.HasTab(id) {
			found = tab
			return false
		}
		return true
	})
	return found
}

// FindNode returns the node with id, or nil.
func FindNode(root Node, id NodeID) Node {
	if id == "" {
		return nil
	}
	var found Node
	Walk(root, func(n Node) bool {
		if n.NodeID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindContainingSplit returns the immediate parent split of child, or nil.
func FindContainingSplit(root Node, child Node) *SplitNode {
	if child == nil {
		return nil
	}
	var found *SplitNode
	Walk(root, func(n Node) bool {
		if split, ok := n.(*SplitNode); ok && split.IndexOf(child) >= 0 {
			found = split
			return false
		}
		return true
	})
	return found
}

// FindItem returns the item with id from any TabNode under root, or nil.
func FindItem(root Node, id ItemID) *DockItem {
	if tab := FindOwningTabNode(root, id); tab != nil {
		return tab.Tab(id)
	}
	return nil
}

// CollectItems returns every item under root in tree order.
func CollectItems(root Node) []*DockItem {
	var items []*DockItem
	Walk(root, func(n Node) bool {
		if tab, ok := n.(*TabNode); ok {
			items = append(items, tab.tabs...)
		}
		return true
	})
	return items
}

// CollectTabNodes returns every TabNode under root in tree order.
func CollectTabNodes(root Node) []*TabNode {
	var tabs []*TabNode
	Walk(root, func(n Node) bool {
		if tab, ok := n.(*TabNode); ok {
			tabs = append(tabs, tab)
		}
		return true
	})
	return tabs
}

// CountNodes returns the number of split and tab nodes under root.
func CountNodes(root Node) (splits, tabs int) {
	Walk(root, func(n Node) bool {
		switch n.(type) {
		case *SplitNode:
			splits++
		case *TabNode:
			tabs++
		}
		return true
	})
	return splits, tabs
}

// InvariantError lists every structural violation found in a tree.
type InvariantError struct {
	Violations []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("dock tree invariants violated:\n  - %s", strings.Join(e.Violations, "\n  - "))
}

// CheckInvariants verifies a committed workspace tree: no empty splits below
// the root, no same-orientation nesting, parallel sizes, at least one TabNode
// and unique item ids.
func CheckInvariants(root *SplitNode) error {
	if root == nil {
		return &InvariantError{Violations: []string{"root is nil"}}
	}

	var violations []string
	seen := make(map[ItemID]NodeID)

	var visit func(split *SplitNode, isRoot bool)
	visit = func(split *SplitNode, isRoot bool) {
		if len(split.sizes) != len(split.children) {
			violations = append(violations, fmt.Sprintf("split %q has %d children but %d sizes",
				split.ID, len(split.children), len(split.sizes)))
		}
		if !isRoot && split.IsEmpty() {
			violations = append(violations, fmt.Sprintf("split %q has no children", split.ID))
		}
		for _, child := range split.children {
			switch c := child.(type) {
			case *SplitNode:
				if c.Orientation == split.Orientation {
					violations = append(violations, fmt.Sprintf("split %q nests split %q with the same orientation %s",
						split.ID, c.ID, split.Orientation))
				}
				visit(c, false)
			case *TabNode:
				for _, item := range c.tabs {
					if owner, dup := seen[item.ID]; dup {
						violations = append(violations, fmt.Sprintf("item %q appears in %q and %q", item.ID, owner, c.ID))
						continue
					}
					seen[item.ID] = c.ID
				}
				if c.selected != nil && !c.HasTab(c.selected.ID) {
					violations = append(violations, fmt.Sprintf("tab node %q selects a foreign item %q", c.ID, c.selected.ID))
				}
			default:
				unknownNode(child)
			}
		}
	}
	visit(root, true)

	if FindFirstTabNode(root) == nil {
		violations = append(violations, fmt.Sprintf("workspace root %q has no tab node", root.ID))
	}

	if len(violations) > 0 {
		return &InvariantError{Violations: violations}
	}
	return nil
}
