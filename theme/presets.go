package theme

import (
	"stylegen/css"
	"stylegen/style"
)

// Preset collections compile into CSS custom properties on the root
// selector, one declaration per preset, in settings order. Style values
// address them through the var:preset shorthand.

// Variables returns the custom property declarations for every usable
// preset. Presets without a slug or without scalar text are skipped, they
// cannot be addressed.
func (s Settings) Variables() []css.Declaration {
	var decls []css.Declaration
	group := func(kind string, presets []Preset) {
		for _, p := range presets {
			value, ok := style.ScalarText(p.Value)
			if !ok || p.Slug == "" || value == "" {
				continue
			}
			decls = append(decls, css.Declaration{
				Property: style.PresetVarName(kind, p.Slug),
				Value:    value,
			})
		}
	}

	group("color", s.Color.Palette)
	group("gradient", s.Color.Gradients)
	group("font-size", s.Typography.FontSizes)
	group("font-family", s.Typography.FontFamilies)
	group("spacing", s.Spacing.Sizes)
	group("shadow", s.Shadow.Presets)
	return decls
}
