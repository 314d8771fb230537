package entity

import (
	"fmt"
	"strings"
)

// DropZone is the region of a target node an item is released onto.
type DropZone int

const (
	DropNone DropZone = iota
	DropCenter
	DropLeft
	DropRight
	DropTop
	DropBottom
)

var dropZoneNames = map[DropZone]string{
	DropNone:   "none",
	DropCenter: "center",
	DropLeft:   "left",
	DropRight:  "right",
	DropTop:    "top",
	DropBottom: "bottom",
}

func (z DropZone) String() string {
	if name, ok := dropZoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("DropZone(%d)", int(z))
}

// ParseDropZone parses a zone name case-insensitively.
func ParseDropZone(s string) (DropZone, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for zone, name := range dropZoneNames {
		if name == want {
			return zone, nil
		}
	}
	return DropNone, fmt.Errorf("unknown drop zone %q", s)
}

// IsEdge reports whether the zone splits the target instead of joining it.
func (z DropZone) IsEdge() bool {
	switch z {
	case DropLeft, DropRight, DropTop, DropBottom:
		return true
	default:
		return false
	}
}

// Orientation returns the split orientation created by an edge zone.
func (z DropZone) Orientation() (Orientation, bool) {
	switch z {
	case DropLeft, DropRight:
		return Horizontal, true
	case DropTop, DropBottom:
		return Vertical, true
	default:
		return "", false
	}
}

// InsertsBefore reports whether the dropped item goes before the target.
func (z DropZone) InsertsBefore() bool {
	return z == DropLeft || z == DropTop
}
