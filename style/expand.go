package style

import (
	"slices"
	"strings"
)

// ExpandFunc builds declarations for one schema entry. Implementations
// receive the looked up value (already preset rewritten) and the entry
// property and return a fragment to merge; nil and empty fragments
// contribute nothing. Implementations must never fail: unusable input
// produces an empty fragment.
type ExpandFunc func(value any, property string) *Ruleset

// expandHandlers maps handler ids referenced by custom schema entries to
// their implementations. Filled at package load, read only afterwards.
var expandHandlers = map[string]ExpandFunc{
	"border-side": expandBorderSides,
	"radius":      expandRadius,
}

// Handler returns the registered implementation for id.
func Handler(id string) (ExpandFunc, bool) {
	fn, ok := expandHandlers[id]
	return fn, ok
}

// HandlerIDs returns the registered handler ids sorted by name.
func HandlerIDs() []string {
	ids := make([]string, 0, len(expandHandlers))
	for id := range expandHandlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// subKeyRank fixes sub-key emission order. Decoded mappings do not preserve
// document order, so expansion uses the CSS conventions instead: sides
// clockwise from top, corners clockwise from top-left, border attributes as
// in the border shorthand. Unknown keys follow in name order.
var subKeyRank = map[string]int{
	"top":    0,
	"right":  1,
	"bottom": 2,
	"left":   3,

	"topLeft":     4,
	"topRight":    5,
	"bottomRight": 6,
	"bottomLeft":  7,

	"width": 8,
	"style": 9,
	"color": 10,
}

// mappingKeys returns the keys of m in expansion order.
func mappingKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		ra, oka := subKeyRank[a]
		rb, okb := subKeyRank[b]
		switch {
		case oka && okb:
			return ra - rb
		case oka:
			return -1
		case okb:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return keys
}

// expandFlat is the built in expansion shared by the default and box kinds.
// A flat mapping emits one declaration per sub-key with the kebab cased
// sub-key appended to the property name; a scalar emits a single
// declaration. Empty sub-values and nested mappings are skipped.
func expandFlat(value any, property string) *Ruleset {
	out := NewRuleset()
	if m, ok := asMapping(value); ok {
		for _, key := range mappingKeys(m) {
			sub := m[key]
			if IsEmpty(sub) {
				continue
			}
			text, ok := ScalarText(sub)
			if !ok {
				continue
			}
			if suffix := KebabCase(key); suffix != "" {
				out.Set(property+"-"+suffix, text)
			}
		}
		return out
	}
	if text, ok := ScalarText(value); ok {
		out.Set(property, text)
	}
	return out
}

// boxSides enumerates side keys recognized by the border-side handler.
var boxSides = []string{"top", "right", "bottom", "left"}

// expandBorderSides emits declarations for individual border sides. The
// value is the whole border mapping; keys other than the four sides belong
// to other schema entries and are ignored here. A side holding a flat
// mapping produces border-{side}-{attr} declarations, a side holding a
// scalar produces the border-{side} shorthand.
func expandBorderSides(value any, property string) *Ruleset {
	out := NewRuleset()
	m, ok := asMapping(value)
	if !ok {
		return out
	}
	for _, side := range boxSides {
		sub, ok := m[side]
		if !ok || IsEmpty(sub) {
			continue
		}
		out.Merge(expandFlat(sub, property+"-"+side))
	}
	return out
}

// boxCorners enumerates corner keys recognized by the radius handler.
var boxCorners = []string{"topLeft", "topRight", "bottomRight", "bottomLeft"}

// expandRadius emits corner radii. A scalar produces the property itself, a
// mapping produces border-{corner}-radius per corner: the corner segment is
// spliced in before the trailing "-radius".
func expandRadius(value any, property string) *Ruleset {
	out := NewRuleset()
	if m, ok := asMapping(value); ok {
		prefix := strings.TrimSuffix(property, "-radius")
		for _, corner := range boxCorners {
			sub, ok := m[corner]
			if !ok || IsEmpty(sub) {
				continue
			}
			text, ok := ScalarText(sub)
			if !ok {
				continue
			}
			out.Set(prefix+"-"+KebabCase(corner)+"-radius", text)
		}
		return out
	}
	if text, ok := ScalarText(value); ok {
		out.Set(property, text)
	}
	return out
}
