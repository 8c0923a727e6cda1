package style

// defaultCategories is the bundled schema table. Order is structural:
// declarations merge and classnames concatenate in exactly this order, and
// later entries win on property collision.
var defaultCategories = []Category{
	{Name: "spacing", Defs: []Definition{
		{Property: "padding", Path: []string{"spacing", "padding"}, Expand: ExpandKindBox},
		{Property: "margin", Path: []string{"spacing", "margin"}, Expand: ExpandKindBox},
		{Property: "gap", Path: []string{"spacing", "blockGap"}},
	}},

	{Name: "typography", Defs: []Definition{
		{Property: "font-size", Path: []string{"typography", "fontSize"}, ClassTemplate: "has-%s-font-size"},
		{Property: "font-family", Path: []string{"typography", "fontFamily"}, ClassTemplate: "has-%s-font-family"},
		{Property: "font-style", Path: []string{"typography", "fontStyle"}},
		{Property: "font-weight", Path: []string{"typography", "fontWeight"}},
		{Property: "letter-spacing", Path: []string{"typography", "letterSpacing"}},
		{Property: "line-height", Path: []string{"typography", "lineHeight"}},
		{Property: "column-count", Path: []string{"typography", "textColumns"}},
		{Property: "text-decoration", Path: []string{"typography", "textDecoration"}},
		{Property: "text-transform", Path: []string{"typography", "textTransform"}},
	}},

	{Name: "color", Defs: []Definition{
		{Property: "color", Path: []string{"color", "text"}, ClassTemplate: "has-%s-color"},
		{Property: "background-color", Path: []string{"color", "background"}, ClassTemplate: "has-%s-background-color"},
		{Property: "background", Path: []string{"color", "gradient"}, ClassTemplate: "has-%s-gradient-background"},
	}},

	{Name: "border", Defs: []Definition{
		// radius needs the corner segment spliced into the property name:
		// border-top-left-radius, not border-radius-top-left
		{Property: "border-radius", Path: []string{"border", "radius"}, Expand: ExpandKindCustom, Handler: "radius"},
		{Property: "border-width", Path: []string{"border", "width"}},
		{Property: "border-style", Path: []string{"border", "style"}},
		{Property: "border-color", Path: []string{"border", "color"}},
		// per-side entries come last so they win over the shorthands above
		{Property: "border", Path: []string{"border"}, Expand: ExpandKindCustom, Handler: "border-side"},
	}},

	{Name: "outline", Defs: []Definition{
		{Property: "outline-width", Path: []string{"outline", "width"}},
		{Property: "outline-style", Path: []string{"outline", "style"}},
		{Property: "outline-color", Path: []string{"outline", "color"}},
		{Property: "outline-offset", Path: []string{"outline", "offset"}},
	}},

	{Name: "dimensions", Defs: []Definition{
		{Property: "min-height", Path: []string{"dimensions", "minHeight"}},
		{Property: "aspect-ratio", Path: []string{"dimensions", "aspectRatio"}},
	}},

	{Name: "shadow", Defs: []Definition{
		{Property: "box-shadow", Path: []string{"shadow"}},
	}},
}

// defaultSchema is validated once at package load.
var defaultSchema = MustSchema(defaultCategories)

// Default returns the bundled schema shared by every resolver that does not
// bring its own.
func Default() *Schema {
	return defaultSchema
}
