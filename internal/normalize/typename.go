package normalize

import (
	"regexp"
	"strings"
)

var containerPattern = regexp.MustCompile(`^([A-Za-z_$][\w$]*)\.<(.+)>$`)

// FlattenTypeName rewrites generic-container notation to bracket-suffix
// notation (`Array.<Item>` → `Item[]`) and linearizes residual compound
// punctuation to a plain name (`module.Foo` → `moduleFoo`), since
// name-only tokens are matched against registries later. Unmatched
// patterns pass through untouched.
func FlattenTypeName(name string) string {
	if m := containerPattern.FindStringSubmatch(name); m != nil {
		inner := m[2]
		// Keyed containers keep only the value type: Object.<string, T> → T[]
		if idx := strings.LastIndex(inner, ","); idx >= 0 {
			inner = strings.TrimSpace(inner[idx+1:])
		}
		return FlattenTypeName(inner) + "[]"
	}
	if strings.ContainsAny(name, "<>") {
		// Malformed generic syntax degrades to literal text.
		return name
	}
	return strings.ReplaceAll(name, ".", "")
}

// FlattenExpr flattens every fragment of a type expression.
func FlattenExpr(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = FlattenTypeName(n)
	}
	return out
}
