package gallery

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
)

func manyGradients(n int) []gradient.Gradient {
	out := make([]gradient.Gradient, n)
	for i := range out {
		out[i] = gradient.Gradient{
			Name:  "G" + string(rune('A'+i)),
			Start: gradient.MustParseColor("#000000"),
			End:   gradient.MustParseColor("#ffffff"),
			Tags:  []string{"grey"},
		}
	}
	return out
}

func TestFilteredList_ProjectsDisplayItems(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, scenarioDataset().Gradients(), NewSwatchRenderer(10, true))
	defer l.Close()

	store.SetFilter(filter.ByTag("cool"))
	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Ocean", items[0].Name)
	assert.Equal(t, "#2193b0", items[0].ColorStart.Hex())
	assert.Equal(t, "#6dd5ed", items[0].ColorEnd.Hex())
	assert.Equal(t, []string{"cool", "blue"}, items[0].Tags, "tags pass through unfiltered")
}

func TestFilteredList_SubsetOfDataset(t *testing.T) {
	ds := scenarioDataset()
	store := filter.NewStore(nil)
	l := NewFilteredList(store, ds.Gradients(), NewSwatchRenderer(10, true))
	defer l.Close()

	all := l.Names()
	for _, tag := range append(ds.UniqueTags(), "missing") {
		store.SetFilter(filter.ByTag(tag))
		assert.Subset(t, all, l.Names())
	}
}

func TestFilteredList_ScrollClampsAndResets(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, manyGradients(5), NewSwatchRenderer(10, false))
	defer l.Close()

	l.Scroll(-3)
	assert.Equal(t, 0, l.Offset())
	l.Scroll(10)
	assert.Equal(t, 4, l.Offset())

	store.SetFilter(filter.ByTag("grey"))
	assert.Equal(t, 0, l.Offset())

	store.SetFilter(filter.ByTag("none"))
	l.Scroll(1)
	assert.Equal(t, 0, l.Offset())
}

func TestFilteredList_ViewWindow(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, manyGradients(5), NewSwatchRenderer(10, false))
	defer l.Close()

	view := l.View(9)
	assert.Contains(t, view, "GA")
	assert.Contains(t, view, "GB")
	assert.NotContains(t, view, "GC")
	assert.Contains(t, view, "v More below")
	assert.NotContains(t, view, "More above")

	l.Scroll(2)
	view = l.View(9)
	assert.Contains(t, view, "^ More above")
	assert.Contains(t, view, "GC")

	full := l.View(0)
	assert.Equal(t, 5, strings.Count(full, "#000000 -> #ffffff"))
}

func TestFilteredList_ViewNeverExceedsHeight(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, manyGradients(12), NewSwatchRenderer(10, false))
	defer l.Close()

	for _, offset := range []int{0, 1, 11} {
		l.Scroll(-20)
		l.Scroll(offset)
		for h := 1; h <= 60; h++ {
			assert.LessOrEqual(t, lipgloss.Height(l.View(h)), h, "offset %d height %d", offset, h)
		}
	}
}

func TestFilteredList_TagFocus(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, scenarioDataset().Gradients(), NewSwatchRenderer(10, false))
	defer l.Close()

	_, ok := l.Focused()
	assert.False(t, ok, "focus is off until enabled")
	l.MoveTagFocus(1)
	assert.Equal(t, 0, l.TagFocus())

	l.EnableFocus()
	item, ok := l.Focused()
	require.True(t, ok)
	assert.Equal(t, "Sunset", item.Name)

	l.MoveTagFocus(1)
	assert.Equal(t, 1, l.TagFocus())
	l.MoveTagFocus(1)
	assert.Equal(t, 0, l.TagFocus(), "wraps past the last tag")
	l.MoveTagFocus(-1)
	assert.Equal(t, 1, l.TagFocus())

	l.Scroll(1)
	item, _ = l.Focused()
	assert.Equal(t, "Ocean", item.Name)
	assert.Equal(t, 0, l.TagFocus())
	assert.Contains(t, l.View(20), "> Ocean")

	l.MoveTagFocus(1)
	store.SetFilter(filter.ByTag("warm"))
	item, _ = l.Focused()
	assert.Equal(t, "Sunset", item.Name)
	assert.Equal(t, 0, l.TagFocus())

	store.SetFilter(filter.ByTag("none"))
	_, ok = l.Focused()
	assert.False(t, ok)
}

func TestFilteredList_EmptyState(t *testing.T) {
	store := filter.NewStore(nil)
	l := NewFilteredList(store, nil, NewSwatchRenderer(10, false))
	defer l.Close()

	assert.Empty(t, l.Items())
	assert.Contains(t, l.View(20), "No gradients tagged at all.")
}

func TestFilteredListFromContext_RequiresScope(t *testing.T) {
	assert.Panics(t, func() {
		FilteredListFromContext(context.Background(), nil, NewSwatchRenderer(10, false))
	})

	store := filter.NewStore(nil)
	ctx, unmount := filter.Mount(context.Background(), store)
	defer unmount()

	l := FilteredListFromContext(ctx, scenarioDataset().Gradients(), NewSwatchRenderer(10, false))
	defer l.Close()
	store.SetFilter(filter.ByTag("warm"))
	assert.Equal(t, []string{"Sunset"}, l.Names())
}
