package css

import "slices"

// safeDeclarationProperty lists the CSS properties allowed through the
// sanitizer. Expanded box-model names are enumerated explicitly: matching
// is exact, a prefix check would be too permissive.
var safeDeclarationProperty = map[string]bool{
	// Typography
	"font":            true,
	"font-family":     true,
	"font-size":       true,
	"font-style":      true,
	"font-weight":     true,
	"font-variant":    true,
	"line-height":     true,
	"letter-spacing":  true,
	"word-spacing":    true,
	"text-align":      true,
	"text-decoration": true,
	"text-indent":     true,
	"text-transform":  true,
	"text-shadow":     true,
	"white-space":     true,
	"column-count":    true,
	"column-gap":      true,

	// Color
	"color":            true,
	"background":       true,
	"background-color": true,
	"opacity":          true,
	"filter":           true,

	// Box model
	"margin":         true,
	"margin-top":     true,
	"margin-right":   true,
	"margin-bottom":  true,
	"margin-left":    true,
	"padding":        true,
	"padding-top":    true,
	"padding-right":  true,
	"padding-bottom": true,
	"padding-left":   true,
	"gap":            true,
	"row-gap":        true,

	// Borders
	"border":                     true,
	"border-width":               true,
	"border-style":               true,
	"border-color":               true,
	"border-top":                 true,
	"border-top-width":           true,
	"border-top-style":           true,
	"border-top-color":           true,
	"border-right":               true,
	"border-right-width":         true,
	"border-right-style":         true,
	"border-right-color":         true,
	"border-bottom":              true,
	"border-bottom-width":        true,
	"border-bottom-style":        true,
	"border-bottom-color":        true,
	"border-left":                true,
	"border-left-width":          true,
	"border-left-style":          true,
	"border-left-color":          true,
	"border-radius":              true,
	"border-top-left-radius":     true,
	"border-top-right-radius":    true,
	"border-bottom-right-radius": true,
	"border-bottom-left-radius":  true,

	// Outline
	"outline":        true,
	"outline-width":  true,
	"outline-style":  true,
	"outline-color":  true,
	"outline-offset": true,

	// Dimensions
	"width":        true,
	"height":       true,
	"min-width":    true,
	"min-height":   true,
	"max-width":    true,
	"max-height":   true,
	"aspect-ratio": true,

	// Layout
	"display":        true,
	"float":          true,
	"clear":          true,
	"vertical-align": true,
	"overflow":       true,
	"box-shadow":     true,
	"box-sizing":     true,
}

// safeValueFunction lists functions allowed inside declaration values.
// url() is handled separately and expression() never passes.
var safeValueFunction = map[string]bool{
	"var":   true,
	"calc":  true,
	"clamp": true,
	"min":   true,
	"max":   true,

	"rgb":  true,
	"rgba": true,
	"hsl":  true,
	"hsla": true,

	"linear-gradient":           true,
	"radial-gradient":           true,
	"conic-gradient":            true,
	"repeating-linear-gradient": true,
	"repeating-radial-gradient": true,
}

// SafeProperties returns the built in property allow list sorted by name.
func SafeProperties() []string {
	out := make([]string, 0, len(safeDeclarationProperty))
	for name := range safeDeclarationProperty {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
