// Package style converts nested attribute trees describing visual styling
// into CSS declarations and utility classnames.
//
// Resolution is driven by a static schema: an ordered table of definitions,
// one per recognized style attribute, each naming where the value lives in
// the input tree, which CSS property it produces and, optionally, a
// classname template. The schema is immutable after construction, input
// trees are read only and every call allocates fresh results, so a single
// resolver is safe for concurrent use. It supports:
//
// # Value shapes
//
//   - Scalars: strings, numbers and booleans ("2em", 400)
//   - Flat mappings: box-model values keyed by side, corner or attribute
//     ({top: "10px", left: "5px"})
//   - Preset references: "var:preset|color|primary" rewritten to
//     var(--preset--color--primary)
//
// # Expansion kinds
//
//   - default: a scalar becomes a single declaration, a flat mapping one
//     declaration per sub-key ("padding-top: 10px")
//   - box: same expansion, declared for attributes that only make sense as
//     composites; such entries never carry a classname template
//   - custom: a registered handler builds the declarations (corner radii,
//     per-side borders)
//
// # Emptiness
//
// Values that are absent, null, empty strings, numeric zero, false or empty
// collections contribute nothing. A deliberate zero is written in the
// document as the string "0" or "0px", which is non-empty and renders.
//
// # Usage
//
//	resolver := style.NewResolver(nil, log)
//
//	rules := resolver.Rules(tree)
//	classes := resolver.Classnames(tree)
//	inline := resolver.Generate(tree, style.Options{Inline: true})
package style
