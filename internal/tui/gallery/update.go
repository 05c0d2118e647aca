package gallery

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case SelectFilterMsg:
		for i, c := range m.layout.selector.Controls() {
			if c.Filter == msg.Filter {
				m.layout.selector.Select(i)
				break
			}
		}
		return m, nil

	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selector := m.layout.selector
	list := m.layout.list

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Reset):
		selector.Reset()

	case key.Matches(msg, m.keys.Left):
		selector.MoveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		selector.MoveCursor(1)

	case key.Matches(msg, m.keys.Select):
		selector.SelectFocused()

	case key.Matches(msg, m.keys.Up):
		list.Scroll(-1)

	case key.Matches(msg, m.keys.Down):
		list.Scroll(1)

	case key.Matches(msg, m.keys.TagPrev):
		list.MoveTagFocus(-1)

	case key.Matches(msg, m.keys.TagNext):
		list.MoveTagFocus(1)

	case key.Matches(msg, m.keys.PickTag):
		return m, m.pickCardTag()

	default:
		// 1-9 jump straight to the nth tag.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			selector.Select(n)
		}
	}

	return m, nil
}

// pickCardTag resolves the focused card back to its dataset record and asks
// for a filter on the tag under the card's cursor.
func (m Model) pickCardTag() tea.Cmd {
	item, ok := m.layout.list.Focused()
	if !ok {
		return nil
	}
	g, ok := m.dataset.Lookup(item.Name)
	if !ok {
		return nil
	}
	i := m.layout.list.TagFocus()
	if i < 0 || i >= len(g.Tags) {
		return nil
	}
	f := filter.ByTag(g.Tags[i])
	return func() tea.Msg {
		return SelectFilterMsg{Filter: f}
	}
}
