package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
)

const defaultSwatchWidth = 40

type glyphs struct {
	arrow  string
	cell   string
	up     string
	down   string
	marker string
}

var (
	unicodeGlyphs = glyphs{arrow: "→", cell: "█", up: "▲", down: "▼", marker: "▸"}
	asciiGlyphs   = glyphs{arrow: "->", cell: "#", up: "^", down: "v", marker: ">"}
)

// SwatchRenderer draws a DisplayItem as a name line, a gradient bar and a
// line of tags.
type SwatchRenderer struct {
	width  int
	glyphs glyphs
}

// NewSwatchRenderer returns a renderer whose bar is width cells wide.
func NewSwatchRenderer(width int, unicode bool) SwatchRenderer {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	g := asciiGlyphs
	if unicode {
		g = unicodeGlyphs
	}
	return SwatchRenderer{width: width, glyphs: g}
}

// Height is the number of terminal lines one swatch occupies, margin included.
func (r SwatchRenderer) Height() int {
	return 4
}

// Render draws item as an unfocused card, highlighting the tag that matches
// active.
func (r SwatchRenderer) Render(item DisplayItem, active filter.Filter) string {
	return r.render(item, active, false, -1)
}

// RenderFocused draws item as the focused card with its tag at tagFocus
// under the cursor.
func (r SwatchRenderer) RenderFocused(item DisplayItem, active filter.Filter, tagFocus int) string {
	return r.render(item, active, true, tagFocus)
}

func (r SwatchRenderer) render(item DisplayItem, active filter.Filter, focused bool, tagFocus int) string {
	name := swatchNameStyle.Render(item.Name)
	if focused {
		name = focusedNameStyle.Render(r.glyphs.marker + " " + item.Name)
	}
	header := name + "  " +
		swatchMetaStyle.Render(item.ColorStart.Hex()+" "+r.glyphs.arrow+" "+item.ColorEnd.Hex())

	return swatchStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		r.Bar(item),
		r.tags(CardTags(item, active), tagFocus),
	))
}

// Bar renders the gradient as width coloured cells blended from start to end.
func (r SwatchRenderer) Bar(item DisplayItem) string {
	var b strings.Builder
	for _, c := range item.ColorStart.Ramp(item.ColorEnd, r.width) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(r.glyphs.cell))
	}
	return b.String()
}

// CardTags returns one control per tag of item, in the item's own order. The
// tag matching active is the active, non-interactive one, exactly as in the
// tag selector.
func CardTags(item DisplayItem, active filter.Filter) []TagControl {
	controls := make([]TagControl, len(item.Tags))
	for i, tag := range item.Tags {
		f := filter.ByTag(tag)
		controls[i] = TagControl{
			Label:       "#" + tag,
			Filter:      f,
			Active:      f == active,
			Interactive: f != active,
		}
	}
	return controls
}

func (r SwatchRenderer) tags(controls []TagControl, tagFocus int) string {
	if len(controls) == 0 {
		return swatchMetaStyle.Render("(untagged)")
	}
	badges := make([]string, len(controls))
	for i, c := range controls {
		badges[i] = badgeStyle(c, i == tagFocus).Render(c.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// badgeStyle draws the active tag like the selector's active button, so the
// current filter is visible on every card carrying it.
func badgeStyle(c TagControl, focused bool) lipgloss.Style {
	switch {
	case c.Active:
		return activeButtonStyle
	case focused:
		return focusedButtonStyle
	default:
		return tagBadgeStyle
	}
}
