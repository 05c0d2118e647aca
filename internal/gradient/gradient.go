package gradient

import (
	"slices"
	"sort"
)

// Gradient is one swatch of the gallery. Name is the identity key.
type Gradient struct {
	Name  string   `json:"name"`
	Start Color    `json:"start"`
	End   Color    `json:"end"`
	Tags  []string `json:"tags"`
}

// HasTag reports whether tag is attached to the gradient.
func (g Gradient) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

// Dataset is the immutable, ordered collection the gallery renders.
type Dataset struct {
	gradients []Gradient
	tags      []string
}

// NewDataset copies gradients and derives the tag set once.
func NewDataset(gradients []Gradient) *Dataset {
	owned := make([]Gradient, len(gradients))
	for i, g := range gradients {
		g.Tags = slices.Clone(g.Tags)
		owned[i] = g
	}
	return &Dataset{gradients: owned, tags: UniqueTags(owned)}
}

// Gradients returns the records in dataset order. Callers get a copy.
func (d *Dataset) Gradients() []Gradient {
	if d == nil {
		return nil
	}
	return slices.Clone(d.gradients)
}

// UniqueTags returns the sorted tag set. Callers get a copy.
func (d *Dataset) UniqueTags() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.tags)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.gradients)
}

// Lookup finds a gradient by name.
func (d *Dataset) Lookup(name string) (Gradient, bool) {
	if d == nil {
		return Gradient{}, false
	}
	for _, g := range d.gradients {
		if g.Name == name {
			return g, true
		}
	}
	return Gradient{}, false
}

// CountByTag returns how many records carry each tag.
func (d *Dataset) CountByTag() map[string]int {
	counts := make(map[string]int)
	if d == nil {
		return counts
	}
	for _, g := range d.gradients {
		seen := make(map[string]struct{}, len(g.Tags))
		for _, tag := range g.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			counts[tag]++
		}
	}
	return counts
}

// UniqueTags derives the distinct tags of gradients in lexicographic order.
func UniqueTags(gradients []Gradient) []string {
	set := make(map[string]struct{})
	for _, g := range gradients {
		for _, tag := range g.Tags {
			set[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
