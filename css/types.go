// Package css models generated CSS text: declarations, rules and
// stylesheets, plus the declaration sanitizer used for attribute output.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations. Declaration order is
// meaningful and survives output unchanged.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// IsEmpty reports whether the rule would render no declarations.
func (r *Rule) IsEmpty() bool {
	return len(r.Declarations) == 0
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Append adds a rule unless it is empty.
func (s *Stylesheet) Append(rule Rule) {
	if rule.IsEmpty() {
		return
	}
	s.Rules = append(s.Rules, rule)
}

// IsEmpty reports whether the stylesheet has no rules.
func (s *Stylesheet) IsEmpty() bool {
	return len(s.Rules) == 0
}

// WriteTo writes the stylesheet to w in rule order, implementing
// io.WriterTo. Rules are separated by blank lines.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		if i > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, &rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the stylesheet as CSS text.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
