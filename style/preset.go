package style

import (
	"strings"
)

// presetRefPrefix introduces the compact preset reference form used in
// attribute values: "var:preset|{type}|{slug}".
const presetRefPrefix = "var:preset|"

// PresetRef is a parsed preset reference. Parts holds the reference path,
// conventionally the preset type followed by the preset slug.
type PresetRef struct {
	Parts []string
}

// ParsePresetRef recognizes the "var:preset|type|slug" shorthand. Anything
// else, including references with empty segments, reports false and is
// treated as a literal value.
func ParsePresetRef(value any) (PresetRef, bool) {
	s, ok := value.(string)
	if !ok || !strings.HasPrefix(s, presetRefPrefix) {
		return PresetRef{}, false
	}
	parts := strings.Split(strings.TrimPrefix(s, presetRefPrefix), "|")
	if len(parts) < 2 {
		return PresetRef{}, false
	}
	for _, part := range parts {
		if part == "" {
			return PresetRef{}, false
		}
	}
	return PresetRef{Parts: parts}, true
}

// Var renders the reference as a CSS custom property use.
func (p PresetRef) Var() string {
	return "var(" + PresetVarName(p.Parts...) + ")"
}

// Slug returns the final reference segment, the token classnames are built
// from.
func (p PresetRef) Slug() string {
	if len(p.Parts) == 0 {
		return ""
	}
	return p.Parts[len(p.Parts)-1]
}

// PresetVarName builds the CSS custom property name a preset compiles to:
// "--preset--{type}--{slug}", every segment kebab cased.
func PresetVarName(parts ...string) string {
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := KebabCase(part); s != "" {
			segs = append(segs, s)
		}
	}
	return "--preset--" + strings.Join(segs, "--")
}

// rewriteValue applies preset reference handling to value before expansion.
// Mappings are copied, never mutated in place: trees stay caller owned.
func rewriteValue(value any, mode VarMode) any {
	if m, ok := asMapping(value); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = rewriteValue(v, mode)
		}
		return out
	}
	ref, ok := ParsePresetRef(value)
	if !ok {
		return value
	}
	switch mode {
	case VarModeKeep:
		return value
	case VarModeStrip:
		return ""
	default:
		return ref.Var()
	}
}
