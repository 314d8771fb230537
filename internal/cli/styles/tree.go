package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// TreeRenderer draws a layout document as nested trees, one per workspace.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Render renders the primary workspace, floating windows and hidden items.
func (r *TreeRenderer) Render(doc *entity.LayoutDocument) string {
	if doc == nil {
		return r.theme.Subtle.Render("(no layout)")
	}

	var sections []string
	if doc.PrimaryWorkspace != nil {
		sections = append(sections, r.workspace(r.theme.Title.Render("Primary workspace"), doc.PrimaryWorkspace).String())
	}

	for i, w := range doc.SecondaryWorkspaces {
		header := fmt.Sprintf("%s %s %s",
			IconWindow,
			r.theme.Title.Render(fmt.Sprintf("Floating window %d", i+1)),
			r.theme.Subtle.Render(fmt.Sprintf("%gx%g at %d,%d", w.Width, w.Height, w.Left, w.Top)))
		if w.Workspace == nil {
			sections = append(sections, header)
			continue
		}
		sections = append(sections, r.workspace(header, w.Workspace).String())
	}

	if len(doc.Hidden) > 0 {
		t := r.newTree(fmt.Sprintf("%s %s", IconEyeSlash, r.theme.Title.Render("Hidden")))
		for _, item := range doc.Hidden {
			t.Child(r.item(item, false) + r.route(item))
		}
		sections = append(sections, t.String())
	}

	return strings.Join(sections, "\n\n")
}

func (r *TreeRenderer) newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border))
}

func (r *TreeRenderer) workspace(header string, ws *entity.WorkspaceDocument) *tree.Tree {
	if ws.ID != "" {
		header += " " + r.theme.Subtle.Render(ws.ID)
	}
	t := r.newTree(header)
	if ws.DockTree != nil {
		t.Child(r.node(ws.DockTree, ""))
	}
	if len(ws.Minimized) > 0 {
		m := r.newTree(fmt.Sprintf("%s %s", IconMinimize, r.theme.Subtitle.Render("Minimized")))
		for _, item := range ws.Minimized {
			m.Child(r.item(item, false) + r.route(item))
		}
		t.Child(m)
	}
	return t
}

func (r *TreeRenderer) node(node *entity.NodeDocument, share string) *tree.Tree {
	switch node.Type {
	case entity.NodeDocumentSplit:
		label := fmt.Sprintf("%s %s %s", IconColumns, r.theme.Split.Render(string(node.Orientation)), node.ID)
		t := r.newTree(label + share)
		for i := range node.Children {
			childShare := ""
			if i < len(node.Sizes) {
				childShare = " " + r.theme.Subtle.Render(fmt.Sprintf("%.0f%%", node.Sizes[i]*100))
			}
			t.Child(r.node(&node.Children[i], childShare))
		}
		return t

	case entity.NodeDocumentTab:
		label := fmt.Sprintf("%s %s", IconFolder, r.theme.TabGroup.Render(node.ID))
		t := r.newTree(label + share)
		for _, item := range node.Tabs {
			t.Child(r.item(item, item.ID == node.SelectedID))
		}
		return t

	default:
		return r.newTree(r.theme.ErrorStyle.Render(fmt.Sprintf("unknown node %q", node.Type)))
	}
}

func (r *TreeRenderer) item(item entity.ItemDocument, selected bool) string {
	id := item.ID
	if selected {
		id = r.theme.Selected.Render("*" + id)
	}
	out := fmt.Sprintf("%s %s", id, r.theme.Normal.Render(item.Title))
	if flags := disabledFlags(item); len(flags) > 0 {
		out += " " + r.theme.Flag.Render("["+strings.Join(flags, " ")+"]")
	}
	return out
}

func (r *TreeRenderer) route(item entity.ItemDocument) string {
	var parts []string
	if item.Panel != "" {
		parts = append(parts, "panel "+item.Panel)
	}
	if item.Workspace != "" {
		parts = append(parts, "workspace "+item.Workspace)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + r.theme.Subtle.Render("-> "+strings.Join(parts, ", "))
}

func disabledFlags(item entity.ItemDocument) []string {
	var flags []string
	if item.DisableClose {
		flags = append(flags, "no-close")
	}
	if item.DisableHide {
		flags = append(flags, "no-hide")
	}
	if item.DisableMinimize {
		flags = append(flags, "no-minimize")
	}
	if item.DisableMaximize {
		flags = append(flags, "no-maximize")
	}
	return flags
}
