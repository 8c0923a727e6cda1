package style

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// KebabCase renders a scalar value as a lowercase hyphen separated token
// suitable for classnames and property name suffixes. Camel case splits at
// case boundaries first so "topLeft" becomes "top-left", then the result is
// slugified: whitespace and punctuation collapse into single hyphens and
// non-ASCII letters transliterate. Non-scalar values yield "".
func KebabCase(v any) string {
	text, ok := ScalarText(v)
	if !ok || text == "" {
		return ""
	}
	return slug.Make(splitCamel(text))
}

// splitCamel inserts hyphens at lower-to-upper case boundaries.
func splitCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
