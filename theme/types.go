package theme

import (
	"gopkg.in/yaml.v3"

	"stylegen/style"
)

// Type definitions for theme documents.
// A document bundles presentation settings (preset collections) and style
// attribute trees for the document root and individual elements. Both YAML
// and JSON inputs decode into the same shape.

// Document is the root of a theme document.
type Document struct {
	Version  int      `yaml:"version"`
	Title    string   `yaml:"title"`
	Slug     string   `yaml:"slug"`
	Settings Settings `yaml:"settings"`
	Styles   Styles   `yaml:"styles"`
}

// Preset is a single named value in a settings collection. Value stays
// untyped so numeric sizes survive decoding alongside CSS value strings.
type Preset struct {
	Slug  string `yaml:"slug"`
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

type (
	ColorSettings struct {
		Palette   []Preset `yaml:"palette"`
		Gradients []Preset `yaml:"gradients"`
	}

	TypographySettings struct {
		FontSizes    []Preset `yaml:"fontSizes"`
		FontFamilies []Preset `yaml:"fontFamilies"`
	}

	SpacingSettings struct {
		Sizes []Preset `yaml:"sizes"`
	}

	ShadowSettings struct {
		Presets []Preset `yaml:"presets"`
	}

	// Settings holds the preset collections of a document.
	Settings struct {
		Color      ColorSettings      `yaml:"color"`
		Typography TypographySettings `yaml:"typography"`
		Spacing    SpacingSettings    `yaml:"spacing"`
		Shadow     ShadowSettings     `yaml:"shadow"`
	}
)

// Styles holds the document root style tree plus per-element trees. In the
// document the root attributes sit directly under "styles" with element
// trees nested under "styles.elements".
type Styles struct {
	Root     style.Tree
	Elements map[string]style.Tree
}

// UnmarshalYAML splits the styles mapping into the root tree and the
// per-element trees. Element entries that are not mappings are dropped.
func (s *Styles) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}

	root := make(style.Tree, len(raw))
	for k, v := range raw {
		if k == "elements" {
			continue
		}
		root[k] = v
	}
	if len(root) > 0 {
		s.Root = root
	}

	if elements, ok := raw["elements"].(map[string]any); ok {
		s.Elements = make(map[string]style.Tree, len(elements))
		for name, v := range elements {
			if tree, ok := v.(map[string]any); ok {
				s.Elements[name] = style.Tree(tree)
			}
		}
	}
	return nil
}

// IsEmpty reports whether the document carries no style attributes at all,
// root or element-level. Empty subtrees count as absent.
func (s Styles) IsEmpty() bool {
	if !style.IsEmpty(s.Root) {
		return false
	}
	for _, tree := range s.Elements {
		if !style.IsEmpty(tree) {
			return false
		}
	}
	return true
}
