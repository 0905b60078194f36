package imports

import (
	"sort"
	"strings"
	"unicode"
)

const (
	fromPrefix      = "from "
	importPrefix    = "import "
	importSeparator = " import "
)

// parseStatement parses a raw import statement into a Statement with the
// given category. Empty or whitespace-only input yields ok=false; the
// caller silently drops it. Anything that matches neither surface form
// is passed through as a direct statement with the trimmed text as both
// package and canonical text.
func parseStatement(raw string, category Category) (Statement, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Statement{}, false
	}

	kind := KindDirect
	if strings.HasPrefix(trimmed, fromPrefix) {
		kind = KindFrom
	}

	pkg := extractPackage(trimmed)
	items := extractItems(trimmed)
	multiline := strings.ContainsAny(trimmed, "()")

	// From imports are rebuilt with sorted items so the canonical text
	// never depends on the caller's ordering.
	text := trimmed
	if kind == KindFrom && len(items) > 0 {
		text = fromPrefix + pkg + importSeparator + strings.Join(items, ", ")
	}

	return Statement{
		Text:      text,
		Category:  category,
		Kind:      kind,
		Package:   pkg,
		Items:     items,
		Multiline: multiline,
	}, true
}

// extractPackage returns the package a statement imports from. For from
// imports that is everything between "from " and the first " import ";
// for direct imports the first whitespace-delimited token after
// "import ". An empty result falls back to the full statement text.
func extractPackage(stmt string) string {
	if rest, ok := strings.CutPrefix(stmt, fromPrefix); ok {
		if pkg, _, found := strings.Cut(rest, importSeparator); found {
			pkg = strings.TrimSpace(pkg)
			if pkg == "" {
				return stmt
			}
			return pkg
		}
	} else if rest, ok := strings.CutPrefix(stmt, importPrefix); ok {
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return stmt
		}
		return fields[0]
	}
	return stmt
}

// extractItems returns the imported names of a from import, sorted with
// compareItems. Parentheses and commas are treated as separators, so
// multi-line surface forms flatten to the same item list. For direct
// imports the single item is the module path itself.
func extractItems(stmt string) []string {
	if rest, ok := strings.CutPrefix(stmt, fromPrefix); ok {
		_, itemsPart, found := strings.Cut(rest, importSeparator)
		if !found {
			return nil
		}
		cleaned := strings.Map(func(r rune) rune {
			switch r {
			case '(', ')', ',':
				return ' '
			default:
				return r
			}
		}, itemsPart)
		items := strings.Fields(cleaned)
		sortItems(items)
		return items
	}
	if rest, ok := strings.CutPrefix(stmt, importPrefix); ok {
		return []string{strings.TrimSpace(rest)}
	}
	return nil
}

// sortItems sorts import items in place using the canonical item order.
func sortItems(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return compareItems(items[i], items[j]) < 0
	})
}

// compareItems implements the item ordering used throughout the package:
// wildcard imports sort last, ALL_CAPS names (TYPE_CHECKING, LITERAL)
// come before mixed-case names, and names within the same class compare
// case-insensitively with a case-sensitive tiebreak. This matches the
// convention used by isort and ruff.
func compareItems(a, b string) int {
	switch {
	case a == "*" && b == "*":
		return 0
	case a == "*":
		return 1
	case b == "*":
		return -1
	}

	aCaps := isAllCaps(a)
	bCaps := isAllCaps(b)
	switch {
	case aCaps && !bCaps:
		return -1
	case !aCaps && bCaps:
		return 1
	}

	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// isAllCaps reports whether every letter in s is uppercase. Non-letter
// runes (underscores, digits) are ignored, so "TYPE_CHECKING" qualifies.
// The empty string does not.
func isAllCaps(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
