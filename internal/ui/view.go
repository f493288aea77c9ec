package ui

import (
	"strings"

	"quicklip/internal/ui/views"
)

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("quicklip"))
	b.WriteString("\n\n")

	if m.mode == modeEdit {
		m.renderForm(&b)
	} else {
		m.renderResults(&b)
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	}

	return b.String()
}

func (m *Model) renderResults(b *strings.Builder) {
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")

	query := m.queryInput.Value()

	if len(m.results) == 0 {
		if query == "" {
			b.WriteString(m.styles.Dim.Render("Nothing stored yet. ctrl+n adds a snippet."))
		} else {
			b.WriteString(m.styles.Dim.Render("No matches. Press enter to store the query as a snippet."))
		}
		b.WriteString("\n")
	} else {
		first := m.nav.FirstVisibleRow()
		last := first + m.nav.VisibleRows()
		if last > len(m.results) {
			last = len(m.results)
		}

		for i := first; i < last; i++ {
			if label := views.SectionLabel(m.results, i); label != "" {
				b.WriteString(m.styles.Section.Render(label))
				b.WriteString("\n")
			}
			b.WriteString(m.renderer.RenderRow(m.results[i], query, i == m.nav.Cursor(), m.width))
			b.WriteString("\n")
		}

		if last < len(m.results) {
			b.WriteString(m.styles.Dim.Render("↓ more"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ navigate · enter copy · ctrl+n new · ctrl+e edit · ctrl+d delete · ctrl+s keep clip · esc quit"))
}

func (m *Model) renderForm(b *strings.Builder) {
	if m.editID == "" {
		b.WriteString(m.styles.Prompt.Render("New snippet"))
	} else {
		b.WriteString(m.styles.Prompt.Render("Edit snippet"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.valueInput.View())
	b.WriteString("\n")
	b.WriteString(m.tagsInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("tab switch field · enter save · esc cancel"))
}
