package theme

import (
	"slices"
	"testing"
)

func TestElementSelector(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"heading", "h1, h2, h3, h4, h5, h6", true},
		{"h3", "h3", true},
		{"paragraph", "p", true},
		{"button", "button, .button", true},
		{"code", "code, pre", true},
		{"list", "ul, ol", true},
		{"marquee", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ElementSelector(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ElementSelector(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestElementNames(t *testing.T) {
	names := ElementNames()
	if len(names) != len(elementSelectors) {
		t.Fatalf("ElementNames() has %d entries, selector table has %d", len(names), len(elementSelectors))
	}
	if names[0] != "heading" {
		t.Errorf("ElementNames()[0] = %q, generic heading must come first", names[0])
	}
	if slices.Index(names, "heading") > slices.Index(names, "h1") {
		t.Error("specific headings must follow the generic entry")
	}
	for _, name := range names {
		if _, ok := elementSelectors[name]; !ok {
			t.Errorf("element %q has no selector", name)
		}
	}

	// returned slice is a copy
	names[0] = "mutated"
	if ElementNames()[0] != "heading" {
		t.Error("ElementNames() must not expose the internal slice")
	}
}

func TestElementTags(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"heading", []string{"h1", "h2", "h3", "h4", "h5", "h6"}},
		{"paragraph", []string{"p"}},
		{"button", []string{"button"}},
		{"caption", []string{"figcaption"}},
		{"code", []string{"code", "pre"}},
		{"marquee", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElementTags(tt.name)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ElementTags(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
