// Package filter holds the gallery's single piece of mutable state, the active
// tag filter, and the two ways of handing it to the components that read it.
package filter

import (
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
)

// AllLabel is how the All filter is shown to users.
const AllLabel = "all"

// Filter is either All or a concrete tag. All is a distinct value rather than
// the string "all", so a dataset may carry a real tag named "all".
type Filter struct {
	tag    string
	scoped bool
}

// All shows every gradient. It is the zero Filter.
var All = Filter{}

// ByTag returns a filter that keeps gradients carrying tag. Tags are not
// checked against the dataset; an unknown tag simply matches nothing.
func ByTag(tag string) Filter {
	return Filter{tag: tag, scoped: true}
}

// IsAll reports whether f is the All filter.
func (f Filter) IsAll() bool {
	return !f.scoped
}

// Tag returns the concrete tag and false for All.
func (f Filter) Tag() (string, bool) {
	return f.tag, f.scoped
}

func (f Filter) String() string {
	if f.IsAll() {
		return AllLabel
	}
	return f.tag
}

// Matches reports whether g is visible under f.
func (f Filter) Matches(g gradient.Gradient) bool {
	if f.IsAll() {
		return true
	}
	return g.HasTag(f.tag)
}

// Apply returns the gradients visible under f in their original order.
// The result is never nil so empty views render as empty, not missing.
func Apply(gradients []gradient.Gradient, f Filter) []gradient.Gradient {
	visible := make([]gradient.Gradient, 0, len(gradients))
	for _, g := range gradients {
		if f.Matches(g) {
			visible = append(visible, g)
		}
	}
	return visible
}
