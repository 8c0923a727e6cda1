package css

import (
	"bytes"
	"maps"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Sanitizer validates single CSS declarations before they reach attribute
// or stylesheet output. Rejection is silent: a bad declaration contributes
// nothing, its siblings are unaffected.
type Sanitizer struct {
	log      *zap.Logger
	allowed  map[string]bool
	allowURL bool
}

// Option adjusts sanitizer behavior.
type Option func(*Sanitizer)

// WithProperties extends the allowed property set.
func WithProperties(names ...string) Option {
	return func(s *Sanitizer) {
		for _, name := range names {
			if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
				s.allowed[name] = true
			}
		}
	}
}

// WithURLValues permits url() in values, rejected unless set.
func WithURLValues() Option {
	return func(s *Sanitizer) { s.allowURL = true }
}

// NewSanitizer creates a sanitizer with the built in property allow list.
func NewSanitizer(log *zap.Logger, opts ...Option) *Sanitizer {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sanitizer{
		log:     log.Named("css-sanitizer"),
		allowed: make(map[string]bool, len(safeDeclarationProperty)),
	}
	maps.Copy(s.allowed, safeDeclarationProperty)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultSanitizer backs the package level SanitizeDeclaration.
var defaultSanitizer = NewSanitizer(nil)

// SanitizeDeclaration validates text with the built in property set and
// returns it HTML escaped, or "" when rejected.
func SanitizeDeclaration(text string) string {
	return defaultSanitizer.Declaration(text)
}

// Declaration validates text and returns it HTML escaped for attribute
// output, or "" when rejected.
func (s *Sanitizer) Declaration(text string) string {
	clean, ok := s.Validate(text)
	if !ok {
		return ""
	}
	return html.EscapeString(clean)
}

// Validate checks one "property: value" declaration and returns its
// normalized un-escaped form. Stylesheet output uses this directly;
// attribute output goes through Declaration which also HTML escapes.
// Input holding more than one declaration is rejected outright.
func (s *Sanitizer) Validate(text string) (string, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
	if text == "" || strings.ContainsAny(text, `{}<>\`) {
		// braces and angle brackets smuggle markup, backslashes smuggle
		// escaped forms of everything else
		return "", false
	}
	for _, r := range text {
		if r < ' ' && r != '\t' {
			return "", false
		}
	}

	input := parse.NewInput(bytes.NewReader([]byte(text)))
	parser := css.NewParser(input, true)

	var (
		property string
		value    string
		seen     int
	)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			// end of input
			if seen != 1 || property == "" || value == "" {
				return "", false
			}
			if !s.allowed[property] && !strings.HasPrefix(property, "--") {
				s.log.Debug("Rejected property", zap.String("property", property))
				return "", false
			}
			return property + ": " + value, true

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if seen++; seen > 1 {
				s.log.Debug("Rejected compound input")
				return "", false
			}
			property = strings.ToLower(string(data))
			if !validPropertyName(property) {
				return "", false
			}
			var ok bool
			if value, ok = s.cleanValue(parser.Values()); !ok {
				return "", false
			}

		default:
			// comments, rulesets, at-rules: nothing legitimate produces these
			return "", false
		}
	}
}

// cleanValue scans value tokens and reconstructs the value text with
// whitespace collapsed. One unsafe token rejects the whole declaration.
func (s *Sanitizer) cleanValue(tokens []css.Token) (string, bool) {
	var parts []string
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if len(parts) > 0 {
				parts = append(parts, " ")
			}
			continue

		case css.CustomPropertyValueToken:
			// custom property values arrive as one opaque blob
			if !s.customValueOK(string(t.Data)) {
				return "", false
			}

		case css.URLToken, css.BadURLToken:
			if !s.allowURL {
				s.log.Debug("Rejected url value")
				return "", false
			}

		case css.BadStringToken, css.LeftBraceToken, css.RightBraceToken,
			css.SemicolonToken, css.AtKeywordToken, css.CDOToken, css.CDCToken:
			return "", false

		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(t.Data), "("))
			if name == "url" && s.allowURL {
				break
			}
			if !safeValueFunction[name] {
				s.log.Debug("Rejected function", zap.String("function", name))
				return "", false
			}
		}
		parts = append(parts, string(t.Data))
	}
	value := strings.TrimSpace(strings.Join(parts, ""))
	return value, value != ""
}

// customValueOK applies string level checks to a custom property value.
func (s *Sanitizer) customValueOK(blob string) bool {
	low := strings.ToLower(blob)
	if strings.Contains(low, "expression(") || strings.Contains(low, "javascript:") {
		return false
	}
	if !s.allowURL && strings.Contains(low, "url(") {
		return false
	}
	return true
}

// validPropertyName accepts standard and custom property names: ASCII
// letters, digits and hyphens, starting with a letter or "--".
func validPropertyName(name string) bool {
	rest := strings.TrimPrefix(name, "--")
	if rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		case c == '-' && i > 0:
		default:
			return false
		}
	}
	return true
}
