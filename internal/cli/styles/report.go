package styles

import (
	"fmt"
	"strings"
)

// ValidationResult is one validated file as the CLI reports it.
type ValidationResult struct {
	Path       string
	Problems   []string
	Reshaped   bool
	Workspaces int
	Items      int
	Hidden     int
	Minimized  int
	// Err is set when the file could not be read or decoded.
	Err error
}

// OK reports whether the file passed.
func (r ValidationResult) OK() bool {
	return r.Err == nil && len(r.Problems) == 0
}

// ReportRenderer renders validation results.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// Render renders one block per result followed by a summary line.
func (r *ReportRenderer) Render(results []ValidationResult) string {
	var b strings.Builder
	failed := 0
	for _, res := range results {
		b.WriteString(r.renderOne(res))
		b.WriteString("\n")
		if !res.OK() {
			failed++
		}
	}

	summary := fmt.Sprintf("%d file(s), %d failed", len(results), failed)
	if failed > 0 {
		b.WriteString(r.theme.ErrorStyle.Render(summary))
	} else {
		b.WriteString(r.theme.SuccessStyle.Render(summary))
	}
	return b.String()
}

func (r *ReportRenderer) renderOne(res ValidationResult) string {
	switch {
	case res.Err != nil:
		return fmt.Sprintf("%s %s\n    %s",
			r.theme.ErrorStyle.Render(IconX), r.theme.Title.Render(res.Path), r.theme.ErrorStyle.Render(res.Err.Error()))

	case len(res.Problems) > 0:
		lines := []string{fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Title.Render(res.Path))}
		for _, p := range res.Problems {
			lines = append(lines, "    "+r.theme.ErrorStyle.Render(p))
		}
		return strings.Join(lines, "\n")
	}

	line := fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render(res.Path),
		r.theme.Subtle.Render(fmt.Sprintf("%d workspace(s), %d item(s), %d hidden, %d minimized",
			res.Workspaces, res.Items, res.Hidden, res.Minimized)))
	if res.Reshaped {
		line += "\n    " + r.theme.WarningStyle.Render(IconWarning+" loading normalizes this layout; saving it back would change the file")
	}
	return line
}
