package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var layoutNameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// IsLayoutName reports whether name can key a stored layout: up to 64
// letters, digits, dots, dashes or underscores, not starting with a symbol.
func IsLayoutName(name string) bool {
	return layoutNameRE.MatchString(name)
}

// ValidateLayoutDocument checks a layout document before it is built into a
// live tree. Each returned string names the offending field.
func ValidateLayoutDocument(doc *entity.LayoutDocument) []string {
	if doc == nil {
		return []string{"layout document is nil"}
	}

	var errs []string
	if doc.Major != entity.LayoutVersionMajor {
		errs = append(errs, fmt.Sprintf("version %d.%d.%d is not supported (major must be %d)",
			doc.Major, doc.Minor, doc.Patch, entity.LayoutVersionMajor))
	}

	seen := make(map[string]string)
	if doc.PrimaryWorkspace == nil {
		errs = append(errs, "primaryWorkspace is required")
	} else {
		errs = append(errs, validateWorkspace("primaryWorkspace", doc.PrimaryWorkspace, seen)...)
	}

	for i, item := range doc.Hidden {
		errs = append(errs, validateItem(fmt.Sprintf("hidden[%d]", i), item, seen)...)
	}

	for i, window := range doc.SecondaryWorkspaces {
		field := fmt.Sprintf("secondaryWorkspaces[%d]", i)
		if window.Width < 0 || window.Height < 0 {
			errs = append(errs, field+" must not have a negative size")
		}
		if window.Workspace != nil {
			errs = append(errs, validateWorkspace(field+".workspace", window.Workspace, seen)...)
		}
	}

	return errs
}

func validateWorkspace(field string, ws *entity.WorkspaceDocument, seen map[string]string) []string {
	var errs []string
	if ws.DockTree != nil {
		if ws.DockTree.Type != entity.NodeDocumentSplit {
			errs = append(errs, field+".dockTree must be a split node")
		}
		errs = append(errs, validateNode(field+".dockTree", ws.DockTree, seen)...)
	}
	for i, item := range ws.Minimized {
		errs = append(errs, validateItem(fmt.Sprintf("%s.minimized[%d]", field, i), item, seen)...)
	}
	return errs
}

func validateNode(field string, node *entity.NodeDocument, seen map[string]string) []string {
	var errs []string
	switch node.Type {
	case entity.NodeDocumentSplit:
		if !node.Orientation.Valid() {
			errs = append(errs, fmt.Sprintf("%s.orientation %q must be Horizontal or Vertical", field, node.Orientation))
		}
		if len(node.Sizes) > 0 && len(node.Sizes) != len(node.Children) {
			errs = append(errs, fmt.Sprintf("%s has %d children but %d sizes", field, len(node.Children), len(node.Sizes)))
		}
		for i, size := range node.Sizes {
			if size < 0 {
				errs = append(errs, fmt.Sprintf("%s.sizes[%d] must be non-negative", field, i))
			}
		}
		if len(node.Tabs) > 0 {
			errs = append(errs, field+" is a split but declares tabs")
		}
		for i := range node.Children {
			errs = append(errs, validateNode(fmt.Sprintf("%s.children[%d]", field, i), &node.Children[i], seen)...)
		}
	case entity.NodeDocumentTab:
		if len(node.Children) > 0 {
			errs = append(errs, field+" is a tab but declares children")
		}
		selectedFound := node.SelectedID == ""
		for i, item := range node.Tabs {
			errs = append(errs, validateItem(fmt.Sprintf("%s.tabs[%d]", field, i), item, seen)...)
			if item.ID == node.SelectedID {
				selectedFound = true
			}
		}
		if !selectedFound {
			errs = append(errs, fmt.Sprintf("%s.selectedId %q is not one of its tabs", field, node.SelectedID))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s has unknown node type %q", field, node.Type))
	}
	return errs
}

func validateItem(field string, item entity.ItemDocument, seen map[string]string) []string {
	id := strings.TrimSpace(item.ID)
	if id == "" {
		return []string{field + ".id cannot be empty"}
	}
	if previous, dup := seen[id]; dup {
		return []string{fmt.Sprintf("%s.id %q duplicates %s", field, id, previous)}
	}
	seen[id] = field
	return nil
}
