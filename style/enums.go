package style

// Specification of how a schema entry turns its value into declarations.
// ENUM(default, box, custom)
type ExpandKind int

// Specification of preset reference handling during resolution.
// ENUM(expand, keep, strip)
type VarMode int
