package style

import (
	"slices"
	"testing"

	"go.uber.org/zap"
)

func newTestResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	return NewResolver(nil, zap.NewNop(), opts...)
}

func TestResolverEmptyTree(t *testing.T) {
	r := newTestResolver(t)

	for _, tree := range []Tree{nil, {}} {
		if got := r.Rules(tree); got.Len() != 0 {
			t.Errorf("Rules(%v) produced %d declarations, want 0", tree, got.Len())
		}
		if got := r.Classnames(tree); len(got) != 0 {
			t.Errorf("Classnames(%v) = %v, want none", tree, got)
		}
		if got := r.Generate(tree, Options{Inline: true}); got != "" {
			t.Errorf("Generate(%v) = %q, want empty", tree, got)
		}
	}
}

func TestResolverRulesScalar(t *testing.T) {
	r := newTestResolver(t)

	rules := r.Rules(Tree{"typography": map[string]any{"fontSize": "2em"}})
	if rules.Len() != 1 {
		t.Fatalf("Rules() produced %d declarations, want 1", rules.Len())
	}
	if v, _ := rules.Get("font-size"); v != "2em" {
		t.Errorf("Get(font-size) = %q, want 2em", v)
	}
}

func TestResolverRulesComposite(t *testing.T) {
	r := newTestResolver(t)

	rules := r.Rules(Tree{"spacing": map[string]any{
		"padding": map[string]any{"top": "10px", "left": "5px"},
	}})

	want := []string{"padding-top", "padding-left"}
	if got := rules.Properties(); !slices.Equal(got, want) {
		t.Fatalf("Rules() properties = %v, want %v", got, want)
	}
	if v, _ := rules.Get("padding-top"); v != "10px" {
		t.Errorf("Get(padding-top) = %q, want 10px", v)
	}
	if v, _ := rules.Get("padding-left"); v != "5px" {
		t.Errorf("Get(padding-left) = %q, want 5px", v)
	}
}

func TestResolverRulesLastWriteWins(t *testing.T) {
	schema := MustSchema([]Category{{Name: "test", Defs: []Definition{
		{Property: "color", Path: []string{"one"}},
		{Property: "color", Path: []string{"two"}},
	}}})
	r := NewResolver(schema, zap.NewNop())

	rules := r.Rules(Tree{"one": "red", "two": "blue"})
	if rules.Len() != 1 {
		t.Fatalf("Rules() produced %d declarations, want 1", rules.Len())
	}
	if v, _ := rules.Get("color"); v != "blue" {
		t.Errorf("Get(color) = %q, want blue", v)
	}
}

func TestResolverRulesSkipsEmpty(t *testing.T) {
	r := newTestResolver(t)

	rules := r.Rules(Tree{
		"typography": map[string]any{
			"fontSize":   "",
			"fontWeight": 0,
			"fontStyle":  nil,
			"lineHeight": 1.5,
		},
	})
	if rules.Len() != 1 {
		t.Fatalf("Rules() produced %d declarations, want 1", rules.Len())
	}
	if v, _ := rules.Get("line-height"); v != "1.5" {
		t.Errorf("Get(line-height) = %q, want 1.5", v)
	}
}

func TestResolverRulesBorder(t *testing.T) {
	r := newTestResolver(t)

	rules := r.Rules(Tree{"border": map[string]any{
		"radius": map[string]any{"topLeft": "4px"},
		"width":  "1px",
		"top":    map[string]any{"color": "blue"},
	}})

	want := []string{"border-top-left-radius", "border-width", "border-top-color"}
	if got := rules.Properties(); !slices.Equal(got, want) {
		t.Errorf("Rules() properties = %v, want %v", got, want)
	}
}

func TestResolverRulesMissingPaths(t *testing.T) {
	r := newTestResolver(t)

	rules := r.Rules(Tree{
		"bogus":      map[string]any{"deep": map[string]any{"deeper": "x"}},
		"typography": "not a mapping",
	})
	if rules.Len() != 0 {
		t.Errorf("Rules() produced %d declarations, want 0", rules.Len())
	}
}

func TestResolverClassnames(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{
		"typography": map[string]any{
			"fontSize":  "2em",
			"fontStyle": "italic",
		},
		"color": map[string]any{
			"text": "var:preset|color|primary",
		},
		"spacing": map[string]any{
			"padding": map[string]any{"top": "1em"}, // composite, no classname
		},
	}

	want := []string{"has-2em-font-size", "italic", "has-primary-color"}
	if got := r.Classnames(tree); !slices.Equal(got, want) {
		t.Errorf("Classnames() = %v, want %v", got, want)
	}
}

func TestResolverClassnamesDuplicatesKept(t *testing.T) {
	schema := MustSchema([]Category{{Name: "test", Defs: []Definition{
		{Property: "color", Path: []string{"one"}, ClassTemplate: "has-%s-color"},
		{Property: "background-color", Path: []string{"two"}, ClassTemplate: "has-%s-color"},
	}}})
	r := NewResolver(schema, zap.NewNop())

	got := r.Classnames(Tree{"one": "red", "two": "red"})
	if !slices.Equal(got, []string{"has-red-color", "has-red-color"}) {
		t.Errorf("Classnames() = %v, want the duplicate kept", got)
	}
}

func TestResolverClassnameString(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{"typography": map[string]any{"fontSize": "2em", "fontStyle": "italic"}}
	if got := r.ClassnameString(tree); got != "has-2em-font-size italic" {
		t.Errorf("ClassnameString() = %q, want %q", got, "has-2em-font-size italic")
	}
	if got := r.ClassnameString(Tree{}); got != "" {
		t.Errorf("ClassnameString(empty) = %q, want empty", got)
	}
}

func TestResolverGenerateInline(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{"spacing": map[string]any{"margin": "1em"}}
	if got := r.Generate(tree, Options{Inline: true}); got != "margin: 1em;" {
		t.Errorf("Generate() = %q, want %q", got, "margin: 1em;")
	}
	if got := r.Generate(tree, Options{}); got != "" {
		t.Errorf("Generate() without inline = %q, want empty", got)
	}
}

func TestResolverGenerateMultiple(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{
		"typography": map[string]any{"fontSize": "2em"},
		"color":      map[string]any{"text": "#333333"},
	}
	want := "font-size: 2em; color: #333333;"
	if got := r.Generate(tree, Options{Inline: true}); got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestResolverInlineDropsRejected(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{
		"typography": map[string]any{"fontSize": "2em"},
		"color":      map[string]any{"text": "expression(document.title)"},
	}
	if got := r.Generate(tree, Options{Inline: true}); got != "font-size: 2em;" {
		t.Errorf("Generate() = %q, want the rejected declaration dropped", got)
	}

	// resolution itself keeps the value, only inline rendering filters
	rules := r.Rules(tree)
	if _, ok := rules.Get("color"); !ok {
		t.Error("Rules() should still carry the unsanitized declaration")
	}
}

func TestResolverIdempotent(t *testing.T) {
	r := newTestResolver(t)

	tree := Tree{
		"spacing":    map[string]any{"padding": map[string]any{"top": "10px", "left": "5px"}},
		"typography": map[string]any{"fontSize": "2em"},
	}

	first := r.Rules(tree)
	second := r.Rules(tree)
	if !slices.Equal(first.Properties(), second.Properties()) {
		t.Errorf("Rules() not stable: %v vs %v", first.Properties(), second.Properties())
	}
	if !slices.Equal(r.Classnames(tree), r.Classnames(tree)) {
		t.Error("Classnames() not stable")
	}
	if r.Generate(tree, Options{Inline: true}) != r.Generate(tree, Options{Inline: true}) {
		t.Error("Generate() not stable")
	}
}

func TestResolverVarModes(t *testing.T) {
	tree := Tree{"color": map[string]any{"text": "var:preset|color|primary"}}

	tests := []struct {
		name      string
		mode      VarMode
		value     string
		hasRule   bool
		classname string
	}{
		{"expand", VarModeExpand, "var(--preset--color--primary)", true, "has-primary-color"},
		{"keep", VarModeKeep, "var:preset|color|primary", true, "has-primary-color"},
		{"strip", VarModeStrip, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, WithVarMode(tt.mode))

			rules := r.Rules(tree)
			v, ok := rules.Get("color")
			if ok != tt.hasRule {
				t.Fatalf("Rules() has color = %v, want %v", ok, tt.hasRule)
			}
			if ok && v != tt.value {
				t.Errorf("Get(color) = %q, want %q", v, tt.value)
			}

			classes := r.Classnames(tree)
			if tt.classname == "" {
				if len(classes) != 0 {
					t.Errorf("Classnames() = %v, want none", classes)
				}
			} else if !slices.Equal(classes, []string{tt.classname}) {
				t.Errorf("Classnames() = %v, want [%s]", classes, tt.classname)
			}
		})
	}
}

func TestResolverSchemaPropertiesAllowed(t *testing.T) {
	schema := MustSchema([]Category{{Name: "test", Defs: []Definition{
		{Property: "scroll-margin", Path: []string{"scroll"}},
	}}})
	r := NewResolver(schema, zap.NewNop())

	got := r.Generate(Tree{"scroll": "4px"}, Options{Inline: true})
	if got != "scroll-margin: 4px;" {
		t.Errorf("Generate() = %q, schema properties should pass the sanitizer", got)
	}
}

func TestResolverNilLogger(t *testing.T) {
	r := NewResolver(nil, nil)
	if got := r.Generate(Tree{"spacing": map[string]any{"margin": "1em"}}, Options{Inline: true}); got != "margin: 1em;" {
		t.Errorf("Generate() = %q, want %q", got, "margin: 1em;")
	}
}
