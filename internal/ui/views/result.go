package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quicklip/internal/domain"
	"quicklip/internal/highlight"
)

// ResultRenderer handles rendering of search result rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// SectionLabel returns the label to show above row index, or "" when the
// row continues the previous type run. Labels live on the items but are
// only rendered at type transitions, recomputed on every render.
func SectionLabel(results []domain.SearchResultItem, index int) string {
	if index < 0 || index >= len(results) {
		return ""
	}
	if index == 0 || results[index-1].Type != results[index].Type {
		return results[index].Section
	}
	return ""
}

// RenderRow renders one result row with matched spans of the query in bold.
func (r *ResultRenderer) RenderRow(item domain.SearchResultItem, query string, isSelected bool, width int) string {
	rowStyle := r.styles.Row
	matchStyle := r.styles.Match
	if isSelected {
		rowStyle = r.styles.SelectedRow
		matchStyle = matchStyle.Background(lipgloss.Color("238"))
	}

	var b strings.Builder
	if item.Type == domain.ResultClipboardTracked {
		b.WriteString(r.styles.ClipMarker.Render("⧉ "))
	} else {
		b.WriteString("  ")
	}

	value := singleLine(item.Value)
	for _, seg := range highlight.Tokenize(value, query) {
		b.WriteString(rowStyle.Render(seg.Plain))
		b.WriteString(matchStyle.Render(seg.Matched))
	}

	if len(item.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(r.styles.Tag.Render("#" + strings.Join(item.Tags, " #")))
	}

	line := b.String()
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate(line, width)
	}
	return line
}

// singleLine collapses multi-line snippet values to one displayable row.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// truncate cuts a styled line down to width cells.
func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	style := lipgloss.NewStyle().MaxWidth(width - 1)
	return style.Render(s) + "…"
}
