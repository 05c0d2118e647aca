package gallery

import (
	"github.com/alexisbeaulieu97/gradients/internal/filter"
)

// SelectFilterMsg asks the gallery to select a filter as if the user had
// activated its control. Filters without a control are ignored.
type SelectFilterMsg struct {
	Filter filter.Filter
}

// ToggleHelpMsg requests help overlay toggle
type ToggleHelpMsg struct{}
