package generate

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"stylegen/utils/debug"
)

// String returns a readable dump of the whole compilation result. It exists
// solely for manual inspection during debugging.
func (r *Result) String() string {
	if r == nil {
		return "<nil Result>"
	}

	tw := debug.NewTreeWriter()

	tw.Line(0, "Theme %q doc[%s] format[%s]", r.Doc.Title, r.DocID, r.Format)
	tw.Line(1, "Source: %s", r.SrcName)
	if r.WorkDir != "" {
		tw.Line(1, "Work dir: %s", r.WorkDir)
	}

	if !r.Sheet.IsEmpty() {
		tw.Blank()
		tw.Line(0, "Stylesheet: %d rules", len(r.Sheet.Rules))
		for _, rule := range r.Sheet.Rules {
			tw.Line(1, "Rule[%s] declarations[%d]", rule.Selector, len(rule.Declarations))
			for _, d := range rule.Declarations {
				tw.Line(2, "%s: %s", d.Property, d.Value)
			}
		}
	}

	if len(r.RootClasses) > 0 {
		tw.Blank()
		tw.Line(0, "Root classnames: %d", len(r.RootClasses))
		for _, name := range r.RootClasses {
			tw.Line(1, "%s", name)
		}
	}

	if len(r.Classnames) > 0 {
		tw.Blank()
		tw.Line(0, "Element classnames: %d elements", len(r.Classnames))
		keys := slices.Collect(maps.Keys(r.Classnames))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Line(1, "Element[%q] classes[%d]", k, len(r.Classnames[k]))
			for _, name := range r.Classnames[k] {
				tw.Line(2, "%s", name)
			}
		}
	}

	if len(r.Inline) > 0 {
		tw.Blank()
		tw.Line(0, "Inline declarations: %d elements", len(r.Inline))
		keys := slices.Collect(maps.Keys(r.Inline))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.TextBlock(1, "Element["+k+"]", r.Inline[k])
		}
	}

	return tw.String()
}
