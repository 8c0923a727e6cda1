// The only reason this package exists is because some enums are needed both
// by the main configuration and by the debug tooling, and the tools should
// not have to pull in the whole configuration package with its embedded
// defaults. So the shared enums live in a package of their own.
package common

// Specification of requested output type.
// ENUM(css, html, bundle)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtHtml:
		return ".html"
	case OutputFmtBundle:
		return ".zip"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// IsBundle reports whether the format packages multiple artifacts into a
// single archive.
func (o OutputFmt) IsBundle() bool {
	return o == OutputFmtBundle
}

// Identifier of a sample markup fragment used when assembling previews.
// ENUM(masthead, palette, typography, elements, footer)
type SampleBlock string
