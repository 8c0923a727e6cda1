package style

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"stylegen/css"
)

// Resolver turns attribute trees into declarations and classnames according
// to a schema. A resolver is stateless between calls and safe for
// concurrent use.
type Resolver struct {
	log        *zap.Logger
	schema     *Schema
	sanitize   *css.Sanitizer
	varMode    VarMode
	extraProps []string
	allowURL   bool
}

// Option adjusts resolver behavior.
type Option func(*Resolver)

// WithVarMode sets preset reference handling, VarModeExpand unless set.
func WithVarMode(mode VarMode) Option {
	return func(r *Resolver) { r.varMode = mode }
}

// WithExtraProperties extends the sanitizer allow list used for inline
// rendering beyond the schema's own properties.
func WithExtraProperties(names ...string) Option {
	return func(r *Resolver) { r.extraProps = append(r.extraProps, names...) }
}

// WithURLValues lets url(...) values through inline rendering.
func WithURLValues() Option {
	return func(r *Resolver) { r.allowURL = true }
}

// NewResolver creates a resolver for schema. A nil schema selects the
// bundled default, a nil logger disables logging.
func NewResolver(schema *Schema, log *zap.Logger, opts ...Option) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if schema == nil {
		schema = Default()
	}
	r := &Resolver{
		log:     log.Named("style-resolver"),
		schema:  schema,
		varMode: VarModeExpand,
	}
	for _, opt := range opts {
		opt(r)
	}
	sopts := []css.Option{css.WithProperties(append(r.schema.Properties(), r.extraProps...)...)}
	if r.allowURL {
		sopts = append(sopts, css.WithURLValues())
	}
	r.sanitize = css.NewSanitizer(log, sopts...)
	return r
}

// Rules resolves tree into an ordered ruleset. Entries whose value is
// absent or empty contribute nothing; the result may be empty but is never
// nil, and resolution never fails.
func (r *Resolver) Rules(tree Tree) *Ruleset {
	rules := NewRuleset()
	if len(tree) == 0 {
		return rules
	}
	for _, def := range r.schema.defs {
		value, ok := Lookup(tree, def.Path)
		if !ok || IsEmpty(value) {
			continue
		}
		if value = rewriteValue(value, r.varMode); IsEmpty(value) {
			continue
		}
		var frag *Ruleset
		if def.Expand == ExpandKindCustom {
			fn, _ := Handler(def.Handler)
			frag = fn(value, def.Property)
		} else {
			frag = expandFlat(value, def.Property)
		}
		rules.Merge(frag)
	}
	r.log.Debug("Resolved declarations", zap.Int("count", rules.Len()))
	return rules
}

// Classnames resolves tree into utility classname tokens in schema order.
// An entry with a template contributes the formatted form, one without
// contributes the normalized value itself. Values without a scalar form and
// values that normalize to nothing are skipped; duplicates are kept.
func (r *Resolver) Classnames(tree Tree) []string {
	var classes []string
	if len(tree) == 0 {
		return classes
	}
	for _, def := range r.schema.defs {
		value, ok := Lookup(tree, def.Path)
		if !ok || IsEmpty(value) {
			continue
		}
		token := r.classToken(value)
		if token == "" {
			continue
		}
		if def.ClassTemplate != "" {
			classes = append(classes, fmt.Sprintf(def.ClassTemplate, token))
		} else {
			classes = append(classes, token)
		}
	}
	return classes
}

// classToken normalizes a value into a classname token. Preset references
// contribute their slug segment so "var:preset|color|primary" under the
// template "has-%s-color" yields "has-primary-color".
func (r *Resolver) classToken(value any) string {
	if ref, ok := ParsePresetRef(value); ok {
		if r.varMode == VarModeStrip {
			return ""
		}
		return KebabCase(ref.Slug())
	}
	return KebabCase(value)
}

// ClassnameString returns the classnames joined with single spaces, ready
// for a class attribute.
func (r *Resolver) ClassnameString(tree Tree) string {
	return strings.Join(r.Classnames(tree), " ")
}

// Inline renders rules as a single inline style string. Every declaration
// passes through the sanitizer; a rejected one is dropped without affecting
// its siblings.
func (r *Resolver) Inline(rules *Ruleset) string {
	var b strings.Builder
	for _, d := range rules.Declarations() {
		clean := r.sanitize.Declaration(d.Property + ": " + d.Value)
		if clean == "" {
			r.log.Debug("Dropped declaration", zap.String("property", d.Property))
			continue
		}
		b.WriteString(clean)
		b.WriteString("; ")
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// Options controls Generate output.
type Options struct {
	Inline bool // render the resolved declarations as an inline style string
}

// Generate resolves tree and renders it according to options. Only inline
// rendering is defined: with Inline unset the result is always empty, and
// callers wanting the raw ruleset use Rules directly.
func (r *Resolver) Generate(tree Tree, opts Options) string {
	if len(tree) == 0 {
		return ""
	}
	if !opts.Inline {
		return ""
	}
	return r.Inline(r.Rules(tree))
}
