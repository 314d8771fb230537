// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strings"
)

// NodeID uniquely identifies a node in a dock tree.
type NodeID string

// Orientation is the axis along which a split node lays out its children.
type Orientation string

const (
	Horizontal Orientation = "Horizontal" // Left/right
	Vertical   Orientation = "Vertical"   // Top/bottom
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseOrientation parses an orientation case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return "", fmt.Errorf("unknown orientation %q", s)
	}
}

// NodeKind tags the two node variants.
type NodeKind int

const (
	NodeKindSplit NodeKind = iota
	NodeKindTab
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindSplit:
		return "split"
	case NodeKindTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Node is a node of a dock tree. The set of implementations is closed:
// *SplitNode and *TabNode.
type Node interface {
	NodeID() NodeID
	Kind() NodeKind
	isNode()
}

func (*SplitNode) isNode() {}
func (*TabNode) isNode()   {}

func (s *SplitNode) NodeID() NodeID { return s.ID }
func (t *TabNode) NodeID() NodeID   { return t.ID }

func (*SplitNode) Kind() NodeKind { return NodeKindSplit }
func (*TabNode) Kind() NodeKind   { return NodeKindTab }

// unknownNode panics on a node type outside the closed set.
func unknownNode(n Node) {
	panic(fmt.Sprintf("entity: unexpected node type %T", n))
}
