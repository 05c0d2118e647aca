package gallery

import (
	"context"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
)

// layout sits between the gallery and its two filter-aware children. It never
// reads the filter itself; the two constructors differ only in how the store
// reaches the children.
type layout struct {
	selector *TagSelector
	list     *FilteredList
}

// newThreadedLayout receives the store only to pass it down.
func newThreadedLayout(store *filter.Store, ds *gradient.Dataset, swatch SwatchRenderer) *layout {
	l := &layout{
		selector: NewTagSelector(store, ds.UniqueTags()),
		list:     NewFilteredList(store, ds.Gradients(), swatch),
	}
	l.list.EnableFocus()
	return l
}

// newScopedLayout lets each child resolve the store from ctx.
func newScopedLayout(ctx context.Context, ds *gradient.Dataset, swatch SwatchRenderer) *layout {
	l := &layout{
		selector: TagSelectorFromContext(ctx, ds.UniqueTags()),
		list:     FilteredListFromContext(ctx, ds.Gradients(), swatch),
	}
	l.list.EnableFocus()
	return l
}

func (l *layout) close() {
	l.selector.Close()
	l.list.Close()
}
