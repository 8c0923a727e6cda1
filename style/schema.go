package style

import (
	"fmt"
	"strings"
)

// Definition describes how one recognized style attribute resolves: where
// its value lives in the tree, which CSS property it produces and how it
// expands into declarations.
type Definition struct {
	Property      string     // CSS property name emitted by built in expansion
	Path          []string   // location of the value in the attribute tree
	ClassTemplate string     // optional classname template with a single %s verb
	Expand        ExpandKind // expansion kind, ExpandKindDefault unless set
	Handler       string     // registered handler id, required for ExpandKindCustom
}

// Category groups definitions under a named section of the schema. Order is
// structural: declarations merge and classnames concatenate in category and
// definition order.
type Category struct {
	Name string
	Defs []Definition
}

// Schema is an ordered immutable table of style definitions. Construct one
// through NewSchema or use the bundled Default.
type Schema struct {
	categories []Category
	defs       []Definition
}

// NewSchema validates categories and builds a schema from them. Validation
// is the single fail fast point of the package: a misconfigured table is a
// programming error, everything downstream is total.
func NewSchema(categories []Category) (*Schema, error) {
	s := &Schema{categories: categories}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("schema category without a name")
		}
		for _, def := range cat.Defs {
			if err := validateDefinition(cat.Name, def); err != nil {
				return nil, err
			}
			s.defs = append(s.defs, def)
		}
	}
	return s, nil
}

// MustSchema builds a schema from categories and panics when they do not
// validate. Used for tables declared at package level.
func MustSchema(categories []Category) *Schema {
	s, err := NewSchema(categories)
	if err != nil {
		panic(err)
	}
	return s
}

func validateDefinition(category string, def Definition) error {
	where := fmt.Sprintf("schema entry %s/%s", category, def.Property)
	if def.Property == "" {
		return fmt.Errorf("schema entry in category %s without a property", category)
	}
	if len(def.Path) == 0 {
		return fmt.Errorf("%s has an empty path", where)
	}
	for _, seg := range def.Path {
		if seg == "" {
			return fmt.Errorf("%s has an empty path segment", where)
		}
	}
	if !def.Expand.IsValid() {
		return fmt.Errorf("%s has unknown expansion kind %d", where, int(def.Expand))
	}
	switch def.Expand {
	case ExpandKindCustom:
		if def.Handler == "" {
			return fmt.Errorf("%s is custom but names no handler", where)
		}
		if _, ok := Handler(def.Handler); !ok {
			return fmt.Errorf("%s names unregistered handler %q", where, def.Handler)
		}
	case ExpandKindBox:
		if def.ClassTemplate != "" {
			return fmt.Errorf("%s is a box entry and cannot carry a classname template", where)
		}
		fallthrough
	default:
		if def.Handler != "" {
			return fmt.Errorf("%s names handler %q but is not custom", where, def.Handler)
		}
	}
	if def.ClassTemplate != "" {
		if strings.Count(def.ClassTemplate, "%s") != 1 {
			return fmt.Errorf("%s template %q must contain exactly one %%s", where, def.ClassTemplate)
		}
		if strings.Count(strings.ReplaceAll(def.ClassTemplate, "%s", ""), "%") != 0 {
			return fmt.Errorf("%s template %q contains extra verbs", where, def.ClassTemplate)
		}
	}
	return nil
}

// Len returns the number of definitions across all categories.
func (s *Schema) Len() int {
	return len(s.defs)
}

// Properties returns the distinct CSS property names entries emit directly,
// in schema order. Sub-properties derived by expansion are not included.
func (s *Schema) Properties() []string {
	seen := make(map[string]bool, len(s.defs))
	out := make([]string, 0, len(s.defs))
	for _, def := range s.defs {
		if seen[def.Property] {
			continue
		}
		seen[def.Property] = true
		out = append(out, def.Property)
	}
	return out
}
