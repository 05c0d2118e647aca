package gallery

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
)

// TagControl is one button of the tag selector.
type TagControl struct {
	Label       string
	Filter      filter.Filter
	Active      bool
	Interactive bool
}

// TagSelector renders one control per tag plus a leading "all" control, and
// is the only writer of the filter store.
type TagSelector struct {
	store       *filter.Store
	tags        []string
	active      filter.Filter
	cursor      int
	unsubscribe func()
}

// NewTagSelector builds a selector that was handed the store explicitly.
func NewTagSelector(store *filter.Store, tags []string) *TagSelector {
	s := &TagSelector{
		store:  store,
		tags:   append([]string(nil), tags...),
		active: store.Active(),
	}
	s.unsubscribe = store.Subscribe(s.onFilterChanged)
	return s
}

// TagSelectorFromContext builds a selector from the store mounted on ctx.
// It panics when no store is mounted.
func TagSelectorFromContext(ctx context.Context, tags []string) *TagSelector {
	return NewTagSelector(filter.MustFromContext(ctx), tags)
}

func (s *TagSelector) onFilterChanged(f filter.Filter) {
	s.active = f
}

// Controls returns the controls in render order: "all" first, then the tags
// sorted lexicographically. The order is recomputed on every call.
func (s *TagSelector) Controls() []TagControl {
	sorted := append([]string(nil), s.tags...)
	sort.Strings(sorted)

	controls := make([]TagControl, 0, len(sorted)+1)
	controls = append(controls, s.control(filter.All))
	for _, tag := range sorted {
		controls = append(controls, s.control(filter.ByTag(tag)))
	}
	return controls
}

func (s *TagSelector) control(f filter.Filter) TagControl {
	active := f == s.active
	return TagControl{
		Label:       f.String(),
		Filter:      f,
		Active:      active,
		Interactive: !active,
	}
}

// Active returns the filter the selector last observed.
func (s *TagSelector) Active() filter.Filter {
	return s.active
}

// Cursor returns the index of the focused control.
func (s *TagSelector) Cursor() int {
	return s.cursor
}

// MoveCursor moves focus by delta controls, wrapping at both ends.
func (s *TagSelector) MoveCursor(delta int) {
	n := len(s.tags) + 1
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Select activates the control at index. Selecting the active control or an
// index out of range does nothing and returns false.
func (s *TagSelector) Select(index int) bool {
	controls := s.Controls()
	if index < 0 || index >= len(controls) {
		return false
	}
	s.cursor = index
	control := controls[index]
	if !control.Interactive {
		return false
	}
	s.store.SetFilter(control.Filter)
	return true
}

// SelectFocused activates the control under the cursor.
func (s *TagSelector) SelectFocused() bool {
	return s.Select(s.cursor)
}

// Reset selects the "all" control.
func (s *TagSelector) Reset() bool {
	return s.Select(0)
}

// View renders the controls on one line, wrapped to width when width > 0.
func (s *TagSelector) View(width int) string {
	controls := s.Controls()
	buttons := make([]string, len(controls))
	for i, c := range controls {
		buttons[i] = s.renderControl(i, c)
	}

	if width <= 0 {
		return selectorStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, b := range buttons {
		w := lipgloss.Width(b)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, b)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return selectorStyle.Render(strings.Join(rows, "\n"))
}

func (s *TagSelector) renderControl(index int, c TagControl) string {
	label := c.Label
	switch {
	case c.Active:
		return activeButtonStyle.Render(label)
	case index == s.cursor:
		return focusedButtonStyle.Render(label)
	default:
		return inactiveButtonStyle.Render(label)
	}
}

// Close detaches the selector from the store.
func (s *TagSelector) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
