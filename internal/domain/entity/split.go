package entity

import (
	"fmt"
	"slices"
)

const (
	// DefaultSize is the weight given to a child added without an explicit size.
	DefaultSize = 1.0
	// MinSize is the smallest weight a child can hold.
	MinSize = 0.1
)

// SplitNode divides its space among ordered children along one axis.
// Sizes are proportional weights, parallel to the children.
type SplitNode struct {
	ID          NodeID
	Orientation Orientation

	children     []Node
	sizes        []float64
	needsRebuild bool
}

// NewSplitNode creates an empty split node.
func NewSplitNode(id NodeID, orientation Orientation) *SplitNode {
	return &SplitNode{ID: id, Orientation: orientation}
}

// Children returns a copy of the child list.
func (s *SplitNode) Children() []Node {
	return slices.Clone(s.children)
}

// Sizes returns a copy of the size weights.
func (s *SplitNode) Sizes() []float64 {
	return slices.Clone(s.sizes)
}

// Len returns the number of children.
func (s *SplitNode) Len() int {
	return len(s.children)
}

// IsEmpty reports whether the split has no children.
func (s *SplitNode) IsEmpty() bool {
	return len(s.children) == 0
}

// AddChild appends a child with the given weight.
func (s *SplitNode) AddChild(child Node, size float64) {
	s.children = append(s.children, child)
	s.sizes = append(s.sizes, clampSize(size))
}

// ChildAt returns the child at index.
func (s *SplitNode) ChildAt(index int) (Node, error) {
	if index < 0 || index >= len(s.children) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.children))
	}
	return s.children[index], nil
}

// SizeAt returns the weight of the child at index, or 0 when out of range.
func (s *SplitNode) SizeAt(index int) float64 {
	if index < 0 || index >= len(s.sizes) {
		return 0
	}
	return s.sizes[index]
}

// IndexOf returns the position of child, or -1.
func (s *SplitNode) IndexOf(child Node) int {
	for i, c := range s.children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertAt inserts child at index (0..Len) with the given weight.
func (s *SplitNode) InsertAt(index int, child Node, size float64) error {
	if index < 0 || index > len(s.children) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(s.children))
	}
	s.children = slices.Insert(s.children, index, child)
	s.sizes = slices.Insert(s.sizes, index, clampSize(size))
	return nil
}

// RemoveChild removes child if present and reports whether it was found.
func (s *SplitNode) RemoveChild(child Node) bool {
	index := s.IndexOf(child)
	if index < 0 {
		return false
	}
	_ = s.RemoveChildAt(index)
	return true
}

// RemoveChildAt removes the child at index together with its weight.
func (s *SplitNode) RemoveChildAt(index int) error {
	if index < 0 || index >= len(s.children) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.children))
	}
	s.children = slices.Delete(s.children, index, index+1)
	s.sizes = slices.Delete(s.sizes, index, index+1)
	return nil
}

// ReplaceChildAt swaps the child at index, keeping the slot's weight.
func (s *SplitNode) ReplaceChildAt(index int, child Node) error {
	if index < 0 || index >= len(s.children) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.children))
	}
	s.children[index] = child
	return nil
}

// UpdateSizes replaces every weight. The count must match the children.
func (s *SplitNode) UpdateSizes(sizes []float64) error {
	if len(sizes) != len(s.children) {
		return fmt.Errorf("%w: expected %d sizes but got %d", ErrSizeMismatch, len(s.children), len(sizes))
	}
	next := make([]float64, len(sizes))
	for i, size := range sizes {
		next[i] = clampSize(size)
	}
	s.sizes = next
	return nil
}

// NormalizedSizes returns the weights scaled to sum to 1.
// An all-zero or empty split yields an empty slice.
func (s *SplitNode) NormalizedSizes() []float64 {
	var total float64
	for _, size := range s.sizes {
		total += size
	}
	if total <= 0 {
		return []float64{}
	}
	out := make([]float64, len(s.sizes))
	for i, size := range s.sizes {
		out[i] = size / total
	}
	return out
}

// CommitChanges flags this split and every nested split for a visual rebuild.
func (s *SplitNode) CommitChanges() {
	for _, child := range s.children {
		if split, ok := child.(*SplitNode); ok {
			split.CommitChanges()
		}
	}
	s.needsRebuild = true
}

// NeedsRebuild reports whether a commit happened since the last ClearRebuild.
func (s *SplitNode) NeedsRebuild() bool {
	return s.needsRebuild
}

// ClearRebuild is called by renderers once the visuals match the tree.
func (s *SplitNode) ClearRebuild() {
	s.needsRebuild = false
}

// RemoveEmptyPanels normalizes the subtree bottom-up:
// empty splits and empty tab nodes are removed, single-child splits are
// replaced by their child, and same-orientation child splits are flattened
// into this one.
func (s *SplitNode) RemoveEmptyPanels() {
	for _, child := range slices.Clone(s.children) {
		switch c := child.(type) {
		case *SplitNode:
			c.RemoveEmptyPanels()

			index := s.IndexOf(c)
			switch {
			case c.IsEmpty():
				_ = s.RemoveChildAt(index)
			case c.Len() == 1:
				promoted := c.children[0]
				s.children[index] = promoted
				if p, ok := promoted.(*SplitNode); ok && p.Orientation == s.Orientation {
					s.spliceAt(index, p)
				}
			case c.Orientation == s.Orientation:
				s.spliceAt(index, c)
			}
		case *TabNode:
			if c.IsEmpty() {
				s.RemoveChild(c)
			}
		default:
			unknownNode(child)
		}
	}
}

// FlattenChild splices the child split at index into s when both share an
// orientation. It reports whether anything changed.
func (s *SplitNode) FlattenChild(index int) bool {
	if index < 0 || index >= len(s.children) {
		return false
	}
	nested, ok := s.children[index].(*SplitNode)
	if !ok || nested.Orientation != s.Orientation || nested.IsEmpty() {
		return false
	}
	s.spliceAt(index, nested)
	return true
}

// WrapChildren moves every child of s into a new split with id and the
// current orientation of s, then turns s to orientation with that split as
// its only child. It returns the new split.
func (s *SplitNode) WrapChildren(id NodeID, orientation Orientation) *SplitNode {
	inner := &SplitNode{
		ID:          id,
		Orientation: s.Orientation,
		children:    s.children,
		sizes:       s.sizes,
	}
	s.Orientation = orientation
	s.children = []Node{inner}
	s.sizes = []float64{DefaultSize}
	return inner
}

// spliceAt replaces the child split at index by its own children. The slot's
// weight is shared among them in proportion to their weights.
func (s *SplitNode) spliceAt(index int, nested *SplitNode) {
	slot := s.sizes[index]
	weights := nested.NormalizedSizes()

	children := make([]Node, 0, len(s.children)+nested.Len()-1)
	children = append(children, s.children[:index]...)
	children = append(children, nested.children...)
	children = append(children, s.children[index+1:]...)

	sizes := make([]float64, 0, len(children))
	sizes = append(sizes, s.sizes[:index]...)
	for _, w := range weights {
		sizes = append(sizes, clampSize(slot*w))
	}
	sizes = append(sizes, s.sizes[index+1:]...)

	s.children = children
	s.sizes = sizes
}

func clampSize(size float64) float64 {
	if size < MinSize {
		return MinSize
	}
	return size
}
