package style

import (
	"slices"
	"strings"
	"testing"
)

func TestNewSchemaValidation(t *testing.T) {
	valid := Definition{Property: "font-size", Path: []string{"typography", "fontSize"}}

	tests := []struct {
		name    string
		cats    []Category
		wantErr string
	}{
		{
			name: "valid",
			cats: []Category{{Name: "typography", Defs: []Definition{valid}}},
		},
		{
			name:    "category without name",
			cats:    []Category{{Defs: []Definition{valid}}},
			wantErr: "without a name",
		},
		{
			name:    "empty property",
			cats:    []Category{{Name: "a", Defs: []Definition{{Path: []string{"x"}}}}},
			wantErr: "without a property",
		},
		{
			name:    "empty path",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color"}}}},
			wantErr: "empty path",
		},
		{
			name:    "empty path segment",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"color", ""}}}}},
			wantErr: "empty path segment",
		},
		{
			name:    "unknown expansion kind",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"x"}, Expand: ExpandKind(9)}}}},
			wantErr: "unknown expansion kind",
		},
		{
			name:    "custom without handler",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "border-radius", Path: []string{"x"}, Expand: ExpandKindCustom}}}},
			wantErr: "names no handler",
		},
		{
			name:    "custom with unregistered handler",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "border-radius", Path: []string{"x"}, Expand: ExpandKindCustom, Handler: "nope"}}}},
			wantErr: "unregistered handler",
		},
		{
			name:    "box with classname template",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "padding", Path: []string{"x"}, Expand: ExpandKindBox, ClassTemplate: "has-%s-padding"}}}},
			wantErr: "cannot carry a classname template",
		},
		{
			name:    "handler on non-custom entry",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"x"}, Handler: "radius"}}}},
			wantErr: "not custom",
		},
		{
			name:    "template without verb",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"x"}, ClassTemplate: "has-color"}}}},
			wantErr: "exactly one %s",
		},
		{
			name:    "template with two verbs",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"x"}, ClassTemplate: "has-%s-%s"}}}},
			wantErr: "exactly one %s",
		},
		{
			name:    "template with foreign verb",
			cats:    []Category{{Name: "a", Defs: []Definition{{Property: "color", Path: []string{"x"}, ClassTemplate: "has-%s-%d"}}}},
			wantErr: "extra verbs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.cats)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewSchema() error = %v, want nil", err)
				}
				if s.Len() != 1 {
					t.Errorf("Len() = %d, want 1", s.Len())
				}
				return
			}
			if err == nil {
				t.Fatalf("NewSchema() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewSchema() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestMustSchemaPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustSchema should have panicked")
		}
	}()
	MustSchema([]Category{{Name: "a", Defs: []Definition{{Property: "color"}}}})
}

func TestDefaultSchema(t *testing.T) {
	s := Default()
	if s == nil || s.Len() == 0 {
		t.Fatal("Default() should return a populated schema")
	}
	if s != Default() {
		t.Error("Default() should hand out the shared instance")
	}

	props := s.Properties()
	if props[0] != "padding" {
		t.Errorf("Properties()[0] = %q, want padding", props[0])
	}
	for _, want := range []string{"font-size", "color", "background-color", "border-radius", "box-shadow"} {
		if !slices.Contains(props, want) {
			t.Errorf("Properties() missing %q", want)
		}
	}
}

func TestSchemaPropertiesDeduplicates(t *testing.T) {
	s, err := NewSchema([]Category{{Name: "a", Defs: []Definition{
		{Property: "color", Path: []string{"one"}},
		{Property: "color", Path: []string{"two"}},
		{Property: "margin", Path: []string{"three"}},
	}}})
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	if got := s.Properties(); !slices.Equal(got, []string{"color", "margin"}) {
		t.Errorf("Properties() = %v, want [color margin]", got)
	}
}
