package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const layoutTimeFormat = "2006-01-02 15:04"

// LayoutsRenderer renders the named layout store.
type LayoutsRenderer struct {
	theme *Theme
}

// NewLayoutsRenderer creates a layouts renderer with the given theme.
func NewLayoutsRenderer(theme *Theme) *LayoutsRenderer {
	return &LayoutsRenderer{theme: theme}
}

// RenderList renders stored layout summaries as a table.
func (r *LayoutsRenderer) RenderList(layouts []*entity.SavedLayout) string {
	if len(layouts) == 0 {
		return r.theme.Subtle.Render("No saved layouts.")
	}

	rows := make([][]string, 0, len(layouts))
	for _, l := range layouts {
		rows = append(rows, []string{
			l.Name,
			fmt.Sprintf("%d", l.ItemCount),
			fmt.Sprintf("%016x", l.Digest),
			l.UpdatedAt.Local().Format(layoutTimeFormat),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("Name", "Items", "Digest", "Updated").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return t.String()
}

// RenderSaved reports a store write.
func (r *LayoutsRenderer) RenderSaved(layout *entity.SavedLayout, written bool) string {
	if !written {
		return fmt.Sprintf("%s %s %s", r.theme.Subtle.Render(IconDatabase), r.theme.Title.Render(layout.Name),
			r.theme.Subtle.Render("unchanged"))
	}
	return fmt.Sprintf("%s %s %s", r.theme.SuccessStyle.Render(IconDatabase), r.theme.Title.Render(layout.Name),
		r.theme.Subtle.Render(fmt.Sprintf("saved, %d item(s)", layout.ItemCount)))
}
