package style

import (
	"strconv"
)

// Tree is a nested attribute mapping supplied by the caller, usually decoded
// from a theme document. Leaves are scalars or flat mappings of sub-property
// to scalar. Resolution never mutates a tree.
type Tree map[string]any

// Lookup walks tree along path and reports whether the full path exists.
// A missing segment or a non-mapping met before the last segment yields
// (nil, false). A present but null leaf yields (nil, true) so callers can
// tell "not there" from "there, empty".
func Lookup(tree Tree, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var cur any = map[string]any(tree)
	for _, seg := range path {
		m, ok := asMapping(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// asMapping normalizes the mapping shapes a decoded document may carry.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// IsEmpty reports whether a looked up value should be treated as absent.
// Null, empty strings, numeric zero, false and empty collections all count:
// resolution skips them instead of emitting empty declarations.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case uint64:
		return t == 0
	case float32:
		return t == 0
	case float64:
		return t == 0
	case Tree:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// ScalarText renders a scalar leaf as CSS value text. Mappings and lists
// have no single text form and report false. Floats format without trailing
// zeros so 1.50 comes out as "1.5".
func ScalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}
