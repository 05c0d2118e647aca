package gallery

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
)

// DisplayItem is the projection of one visible gradient handed to the swatch
// renderer. Tags are passed through unfiltered.
type DisplayItem struct {
	Name       string         `json:"name"`
	ColorStart gradient.Color `json:"colorStart"`
	ColorEnd   gradient.Color `json:"colorEnd"`
	Tags       []string       `json:"tags"`
}

func project(g gradient.Gradient) DisplayItem {
	return DisplayItem{
		Name:       g.Name,
		ColorStart: g.Start,
		ColorEnd:   g.End,
		Tags:       append([]string{}, g.Tags...),
	}
}

// FilteredList keeps the visible subset of the dataset in sync with the store.
// When focus is enabled the first rendered card is the focused one, and its
// tags can be walked with a cursor.
type FilteredList struct {
	gradients   []gradient.Gradient
	active      filter.Filter
	visible     []DisplayItem
	offset      int
	tagFocus    int
	focusable   bool
	swatch      SwatchRenderer
	unsubscribe func()
}

// NewFilteredList builds a list that was handed the store explicitly.
func NewFilteredList(store *filter.Store, gradients []gradient.Gradient, swatch SwatchRenderer) *FilteredList {
	l := &FilteredList{
		gradients: append([]gradient.Gradient(nil), gradients...),
		swatch:    swatch,
	}
	l.recompute(store.Active())
	l.unsubscribe = store.Subscribe(l.recompute)
	return l
}

// FilteredListFromContext builds a list from the store mounted on ctx. It
// panics when no store is mounted.
func FilteredListFromContext(ctx context.Context, gradients []gradient.Gradient, swatch SwatchRenderer) *FilteredList {
	return NewFilteredList(filter.MustFromContext(ctx), gradients, swatch)
}

func (l *FilteredList) recompute(f filter.Filter) {
	l.active = f
	matches := filter.Apply(l.gradients, f)
	l.visible = make([]DisplayItem, len(matches))
	for i, g := range matches {
		l.visible[i] = project(g)
	}
	l.offset = 0
	l.tagFocus = 0
}

// Items returns the visible items in dataset order.
func (l *FilteredList) Items() []DisplayItem {
	return append([]DisplayItem{}, l.visible...)
}

// Names returns the names of the visible items in dataset order.
func (l *FilteredList) Names() []string {
	out := make([]string, len(l.visible))
	for i, item := range l.visible {
		out[i] = item.Name
	}
	return out
}

// Active returns the filter the list was last computed from.
func (l *FilteredList) Active() filter.Filter {
	return l.active
}

// Offset returns the index of the first rendered item.
func (l *FilteredList) Offset() int {
	return l.offset
}

// Scroll moves the window by delta items, clamped to the list. The tag
// cursor goes back to the first tag of the new top card.
func (l *FilteredList) Scroll(delta int) {
	l.offset += delta
	if l.offset > len(l.visible)-1 {
		l.offset = len(l.visible) - 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
	l.tagFocus = 0
}

// EnableFocus marks the top card as focused when rendering.
func (l *FilteredList) EnableFocus() {
	l.focusable = true
}

// Focused returns the focused card. It reports false when focus is disabled
// or nothing is visible.
func (l *FilteredList) Focused() (DisplayItem, bool) {
	if !l.focusable || len(l.visible) == 0 {
		return DisplayItem{}, false
	}
	return l.visible[l.offset], true
}

// TagFocus returns the index of the focused card's tag under the cursor.
func (l *FilteredList) TagFocus() int {
	return l.tagFocus
}

// MoveTagFocus moves the tag cursor of the focused card by delta, wrapping.
func (l *FilteredList) MoveTagFocus(delta int) {
	item, ok := l.Focused()
	if !ok || len(item.Tags) == 0 {
		return
	}
	n := len(item.Tags)
	l.tagFocus = ((l.tagFocus+delta)%n + n) % n
}

// View renders the cards that fit in height lines, scroll hints included. A
// height of zero or less renders every item.
func (l *FilteredList) View(height int) string {
	if len(l.visible) == 0 {
		return emptyStateStyle.Render("No gradients tagged " + quoteFilter(l.active) + ".")
	}

	above := l.offset > 0
	end := len(l.visible)
	if height > 0 {
		room := height
		if above {
			room--
		}
		fit := room / l.swatch.Height()
		if l.offset+fit < end {
			// leave a line for the "more below" hint
			fit = (room - 1) / l.swatch.Height()
		}
		end = min(l.offset+max(fit, 0), end)
	}

	var lines []string
	used := 0
	if above && (height <= 0 || used < height) {
		lines = append(lines, scrollHintStyle.Render(l.swatch.glyphs.up+" More above"))
		used++
	}
	for i, item := range l.visible[l.offset:end] {
		if l.focusable && i == 0 {
			lines = append(lines, l.swatch.RenderFocused(item, l.active, l.tagFocus))
		} else {
			lines = append(lines, l.swatch.Render(item, l.active))
		}
		used += l.swatch.Height()
	}
	if end < len(l.visible) && (height <= 0 || used < height) {
		lines = append(lines, scrollHintStyle.Render(l.swatch.glyphs.down+" More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func quoteFilter(f filter.Filter) string {
	if f.IsAll() {
		return "at all"
	}
	return `"` + strings.TrimSpace(f.String()) + `"`
}

// Close detaches the list from the store.
func (l *FilteredList) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}
