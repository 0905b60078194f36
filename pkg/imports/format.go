package imports

import (
	"sort"
	"strings"
)

// lineOverhead is the character budget reserved on a single line for the
// "from <package> import " scaffolding. With the 79-column PEP 8 default
// this leaves 60 characters for the item list.
const lineOverhead = 19

// Options controls single-line versus multi-line layout of merged from
// imports. The zero value is not usable; start from DefaultOptions or
// one of the presets.
type Options struct {
	// LineLength is the maximum line length before breaking into the
	// multi-line form. 79 matches PEP 8, 88 matches Black and ruff.
	LineLength int
	// IndentSize is the number of spaces used to indent items in the
	// multi-line form.
	IndentSize int
	// TrailingComma appends a comma to the last item of a multi-line
	// import (Black/isort style).
	TrailingComma bool
	// ForceSingleLine keeps every from import on one line regardless of
	// thresholds.
	ForceSingleLine bool
	// ForceMultiline breaks every merged from import into the
	// parenthesized form regardless of thresholds.
	ForceMultiline bool
	// MultilineThreshold is the item count at which the multi-line form
	// kicks in when auto-detecting.
	MultilineThreshold int
}

// DefaultOptions returns PEP 8 defaults: 79-column lines, 4-space
// indent, trailing commas, multi-line at 4 or more items.
func DefaultOptions() Options {
	return Options{
		LineLength:         79,
		IndentSize:         4,
		TrailingComma:      true,
		MultilineThreshold: 4,
	}
}

// PEP8Options is an alias for DefaultOptions.
func PEP8Options() Options { return DefaultOptions() }

// IsortOptions matches isort's defaults, which coincide with PEP 8.
func IsortOptions() Options { return DefaultOptions() }

// BlackOptions matches Black's defaults (88-column lines).
func BlackOptions() Options {
	o := DefaultOptions()
	o.LineLength = 88
	return o
}

// RuffOptions matches ruff's defaults, which coincide with Black.
func RuffOptions() Options { return BlackOptions() }

// OptionsForProfile maps a profile name to its preset. Recognized
// profiles are "pep8", "isort", "black", and "ruff".
func OptionsForProfile(profile string) (Options, bool) {
	switch strings.ToLower(profile) {
	case "", "pep8", "isort":
		return DefaultOptions(), true
	case "black", "ruff":
		return BlackOptions(), true
	default:
		return Options{}, false
	}
}

// formatBucket turns one bucket of statements into canonical output
// lines. Statements are grouped by package, packages are ordered
// lexicographically, and same-package from imports are merged with
// duplicate items collapsed.
func formatBucket(statements []Statement, opts Options) []string {
	if len(statements) == 0 {
		return nil
	}

	groups := make(map[string][]Statement)
	for _, st := range statements {
		groups[st.Package] = append(groups[st.Package], st)
	}

	packages := make([]string, 0, len(groups))
	for pkg := range groups {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	var result []string
	for _, pkg := range packages {
		result = append(result, formatGroup(pkg, groups[pkg], opts)...)
	}
	return result
}

// formatGroup emits the lines for all statements sharing one package.
// Direct statements pass through with duplicates collapsed; from
// statements are merged into one item set and laid out per opts.
func formatGroup(pkg string, group []Statement, opts Options) []string {
	if len(group) == 1 && (group[0].Kind == KindDirect || len(group[0].Items) == 0) {
		return []string{group[0].Text}
	}

	itemSet := make(map[string]struct{})
	if group[0].Kind == KindFrom {
		for _, st := range group {
			for _, item := range st.Items {
				itemSet[item] = struct{}{}
			}
		}
	}
	if len(itemSet) == 0 {
		// Direct statements (and degenerate itemless from statements)
		// pass through, one line per distinct canonical text.
		var result []string
		seen := make(map[string]struct{}, len(group))
		for _, st := range group {
			if _, ok := seen[st.Text]; ok {
				continue
			}
			seen[st.Text] = struct{}{}
			result = append(result, st.Text)
		}
		return result
	}

	items := make([]string, 0, len(itemSet))
	for item := range itemSet {
		items = append(items, item)
	}
	sortItems(items)

	return layoutFromImport(pkg, items, opts)
}

// layoutFromImport renders a merged from import either as a single line
// or as the parenthesized multi-line form, depending on opts.
func layoutFromImport(pkg string, items []string, opts Options) []string {
	single := []string{fromPrefix + pkg + importSeparator + strings.Join(items, ", ")}

	switch {
	case opts.ForceSingleLine:
		return single
	case !opts.ForceMultiline && len(items) < opts.MultilineThreshold && totalLen(items) < opts.LineLength-lineOverhead:
		return single
	}

	indent := strings.Repeat(" ", opts.IndentSize)
	result := make([]string, 0, len(items)+2)
	result = append(result, fromPrefix+pkg+" import (")
	for i, item := range items {
		line := indent + item
		if opts.TrailingComma || i < len(items)-1 {
			line += ","
		}
		result = append(result, line)
	}
	return append(result, ")")
}

// totalLen sums the character lengths of items, excluding separators.
func totalLen(items []string) int {
	n := 0
	for _, item := range items {
		n += len(item)
	}
	return n
}

// appendSection appends a formatted group of buckets to lines, inserting
// exactly one blank separator when lines already has content. The blank
// is an empty string entry per the output contract.
func appendSection(lines, section []string) []string {
	if len(section) == 0 {
		return lines
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return append(lines, section...)
}
