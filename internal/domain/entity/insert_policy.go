package entity

import (
	"fmt"
	"strings"
)

// InsertPolicy decides where a newly created item goes when its requested
// parent is a split or cannot be found.
type InsertPolicy string

const (
	InsertCreateFirst    InsertPolicy = "create_first"    // New tab node first in the split
	InsertCreateLast     InsertPolicy = "create_last"     // New tab node last in the split
	InsertCreateFloating InsertPolicy = "create_floating" // Missing parent: open a floating workspace
	InsertError          InsertPolicy = "error"           // Missing parent: fail
)

// DefaultInsertPolicy is used when none is configured.
const DefaultInsertPolicy = InsertCreateLast

// ParseInsertPolicy parses a policy name, accepting dashes or underscores.
func ParseInsertPolicy(s string) (InsertPolicy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch InsertPolicy(normalized) {
	case InsertCreateFirst, InsertCreateLast, InsertCreateFloating, InsertError:
		return InsertPolicy(normalized), nil
	case "":
		return DefaultInsertPolicy, nil
	default:
		return "", fmt.Errorf("unknown insert policy %q", s)
	}
}
