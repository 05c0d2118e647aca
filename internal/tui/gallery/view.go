package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	header := m.renderHeader()
	selector := m.layout.selector.View(m.width)
	footer := footerStyle.Width(max(m.width, 1)).Render(m.help.View(m.keys))

	listHeight := 0
	if m.height > 0 {
		listHeight = max(m.height-lipgloss.Height(header)-lipgloss.Height(selector)-lipgloss.Height(footer), 1)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		selector,
		m.layout.list.View(listHeight),
		footer,
	)
	if m.height > 0 {
		view = truncateLines(view, m.height)
	}
	return view
}

// truncateLines keeps the first n lines of s.
func truncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) renderHeader() string {
	visible := len(m.layout.list.visible)
	summary := fmt.Sprintf("%d of %d gradients  •  filter: %s", visible, m.dataset.Len(), m.store.Active())
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Gradients"),
		subtitleStyle.PaddingLeft(1).Render(summary),
	)
}
