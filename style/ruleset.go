package style

import (
	"slices"

	"stylegen/css"
)

// Ruleset is an ordered CSS property to value mapping. Insertion order is
// preserved: a property keeps its first position even when a later write
// overwrites its value.
type Ruleset struct {
	names  []string
	values map[string]string
}

// NewRuleset returns an empty ruleset.
func NewRuleset() *Ruleset {
	return &Ruleset{values: make(map[string]string)}
}

// Set stores a declaration. The last write wins on collision while the
// property keeps its original position.
func (r *Ruleset) Set(property, value string) {
	if _, ok := r.values[property]; !ok {
		r.names = append(r.names, property)
	}
	r.values[property] = value
}

// Get returns the value stored for property.
func (r *Ruleset) Get(property string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[property]
	return v, ok
}

// Len returns the number of stored declarations.
func (r *Ruleset) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Properties returns property names in insertion order.
func (r *Ruleset) Properties() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Declarations returns the stored pairs in insertion order.
func (r *Ruleset) Declarations() []css.Declaration {
	if r == nil || len(r.names) == 0 {
		return nil
	}
	out := make([]css.Declaration, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, css.Declaration{Property: name, Value: r.values[name]})
	}
	return out
}

// Merge folds other into r pair by pair, keeping other's order for
// properties r has not seen yet.
func (r *Ruleset) Merge(other *Ruleset) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		r.Set(name, other.values[name])
	}
}
