package theme

import (
	"slices"
	"strings"
)

// Fixed element table. Order determines stylesheet rule order; the selector
// attaches element styles to real markup. Specific headings follow the
// generic heading entry so they can override it.

var elementOrder = []string{
	"heading", "h1", "h2", "h3", "h4", "h5", "h6",
	"paragraph", "link", "button", "blockquote", "code", "caption", "cite",
	"list", "table",
}

var elementSelectors = map[string]string{
	"heading":    "h1, h2, h3, h4, h5, h6",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"paragraph":  "p",
	"link":       "a",
	"button":     "button, .button",
	"blockquote": "blockquote",
	"code":       "code, pre",
	"caption":    "figcaption, .caption",
	"cite":       "cite",
	"list":       "ul, ol",
	"table":      "table",
}

// ElementSelector maps a document element name to its CSS selector.
func ElementSelector(name string) (string, bool) {
	sel, ok := elementSelectors[name]
	return sel, ok
}

// ElementNames lists the supported element names in stylesheet emission
// order.
func ElementNames() []string {
	return slices.Clone(elementOrder)
}

// ElementTags returns the bare tag names from the element's selector,
// class based alternatives are left out.
func ElementTags(name string) []string {
	sel, ok := elementSelectors[name]
	if !ok {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.HasPrefix(part, ".") {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
