package imports

import (
	"sort"
	"strings"

	"github.com/matzehuels/pyimports/pkg/imports/registry"
)

// typingModule is the module that carries the TYPE_CHECKING marker.
const typingModule = "typing"

// typeCheckingMarker is the name injected into the regular typing import
// whenever any TYPE_CHECKING-scoped import exists.
const typeCheckingMarker = "TYPE_CHECKING"

// Helper collects import statements and produces the canonical,
// categorized import block. A Helper owns its registry, categorization
// cache, local prefix set, and section buckets; it is not safe for
// concurrent use.
type Helper struct {
	regular      sectionSet
	typeChecking sectionSet
	cat          *categorizer
	opts         Options
}

// New creates a Helper with default registry contents and PEP 8
// formatting options.
func New() *Helper {
	return &Helper{
		cat:  newCategorizer(),
		opts: DefaultOptions(),
	}
}

// NewWithPackageName creates a Helper that treats imports starting with
// name as local. The name is also registered as a local prefix.
func NewWithPackageName(name string) *Helper {
	h := New()
	h.cat.packageName = name
	h.cat.addPrefix(name)
	return h
}

// Registry returns the helper's package registry for customization.
// After mutating it, call ClearCache so already-seen packages are
// re-categorized.
func (h *Helper) Registry() *registry.Registry {
	return h.cat.registry
}

// ClearCache drops all cached categorization results. Call this after
// registry mutations that should affect packages seen earlier.
func (h *Helper) ClearCache() *Helper {
	h.cat.clearCache()
	return h
}

// SetOptions replaces the formatting options used by Formatted and the
// categorized accessors.
func (h *Helper) SetOptions(opts Options) *Helper {
	h.opts = opts
	return h
}

// Options returns the current formatting options.
func (h *Helper) Options() Options {
	return h.opts
}

// AddLocalPrefix registers a prefix marking packages as local. Matching
// is prefix-based, not exact.
func (h *Helper) AddLocalPrefix(prefix string) *Helper {
	h.cat.addPrefix(prefix)
	return h
}

// AddLocalPrefixes registers several local prefixes at once.
func (h *Helper) AddLocalPrefixes(prefixes ...string) *Helper {
	for _, prefix := range prefixes {
		h.cat.addPrefix(prefix)
	}
	return h
}

// Add adds an import described by a structured Spec. Empty Items means a
// direct import.
func (h *Helper) Add(spec Spec) {
	var stmt string
	if len(spec.Items) > 0 {
		stmt = fromPrefix + spec.Package + importSeparator + strings.Join(spec.Items, ", ")
	} else {
		stmt = importPrefix + spec.Package
	}
	if spec.TypeChecking {
		h.AddTypeCheckingString(stmt)
	} else {
		h.AddString(stmt)
	}
}

// AddString adds a raw import statement to the regular scope. Empty or
// whitespace-only input is silently ignored.
func (h *Helper) AddString(stmt string) {
	st, ok := h.parse(stmt)
	if !ok {
		return
	}
	h.regular.add(st)
}

// AddFromImport adds "from pkg import items..." to the regular scope.
func (h *Helper) AddFromImport(pkg string, items ...string) {
	h.Add(From(pkg, items...))
}

// AddDirectImport adds "import module" to the regular scope.
func (h *Helper) AddDirectImport(module string) {
	h.Add(Direct(module))
}

// AddTypeCheckingString adds a raw import statement to the TYPE_CHECKING
// scope and ensures the TYPE_CHECKING marker is present in the regular
// typing import.
func (h *Helper) AddTypeCheckingString(stmt string) {
	st, ok := h.parse(stmt)
	if !ok {
		return
	}
	h.typeChecking.add(st)
	h.ensureTypeCheckingMarker()
}

// AddTypeCheckingFromImport adds "from pkg import items..." to the
// TYPE_CHECKING scope.
func (h *Helper) AddTypeCheckingFromImport(pkg string, items ...string) {
	h.Add(TypeCheckingFrom(pkg, items...))
}

// AddTypeCheckingDirectImport adds "import module" to the TYPE_CHECKING
// scope.
func (h *Helper) AddTypeCheckingDirectImport(module string) {
	h.Add(TypeCheckingDirect(module))
}

func (h *Helper) parse(stmt string) (Statement, bool) {
	trimmed := strings.TrimSpace(stmt)
	if trimmed == "" {
		return Statement{}, false
	}
	return parseStatement(trimmed, h.cat.categorize(trimmed))
}

// ensureTypeCheckingMarker guarantees the regular stdlib from buckets
// contain a typing import carrying TYPE_CHECKING. An existing typing
// import is extended in place; otherwise a minimal one is synthesized.
// Repeated calls never duplicate the marker.
func (h *Helper) ensureTypeCheckingMarker() {
	for i := range h.regular.stdlibFrom {
		st := &h.regular.stdlibFrom[i]
		if st.Package != typingModule {
			continue
		}
		for _, item := range st.Items {
			if item == typeCheckingMarker {
				return
			}
		}
		st.Items = append(st.Items, typeCheckingMarker)
		sortItems(st.Items)
		st.Text = fromPrefix + typingModule + importSeparator + strings.Join(st.Items, ", ")
		return
	}
	h.AddString(fromPrefix + typingModule + importSeparator + typeCheckingMarker)
}

// Formatted returns the regular-scope import block as ordered lines:
// future, standard library, third-party, then local, with direct
// imports before from imports inside each category and exactly one
// empty-string separator between non-empty sections.
func (h *Helper) Formatted() []string {
	return h.formatScope(&h.regular)
}

// TypeCheckingFormatted returns the TYPE_CHECKING-scope block in the
// same order as Formatted. Callers wrap the lines in their own guard
// construct.
func (h *Helper) TypeCheckingFormatted() []string {
	return h.formatScope(&h.typeChecking)
}

func (h *Helper) formatScope(s *sectionSet) []string {
	var lines []string
	lines = appendSection(lines, formatBucket(s.future, h.opts))

	var stdlib []string
	stdlib = append(stdlib, formatBucket(s.stdlibDirect, h.opts)...)
	stdlib = append(stdlib, formatBucket(s.stdlibFrom, h.opts)...)
	lines = appendSection(lines, stdlib)

	var thirdParty []string
	thirdParty = append(thirdParty, formatBucket(s.thirdPartyDirect, h.opts)...)
	thirdParty = append(thirdParty, formatBucket(s.thirdPartyFrom, h.opts)...)
	lines = appendSection(lines, thirdParty)

	var local []string
	local = append(local, formatBucket(s.localDirect, h.opts)...)
	local = append(local, formatBucket(s.localFrom, h.opts)...)
	lines = appendSection(lines, local)

	return lines
}

// Categorized returns the regular-scope imports as formatted lines split
// by category, each category sorted alphabetically.
func (h *Helper) Categorized() Categorized {
	return h.categorizeScope(&h.regular)
}

// TypeCheckingCategorized returns the TYPE_CHECKING-scope imports split
// by category.
func (h *Helper) TypeCheckingCategorized() Categorized {
	return h.categorizeScope(&h.typeChecking)
}

// AllCategorized returns both scopes at once, for template engines that
// render the regular block and the guarded block separately.
func (h *Helper) AllCategorized() (regular, typeChecking Categorized) {
	return h.Categorized(), h.TypeCheckingCategorized()
}

func (h *Helper) categorizeScope(s *sectionSet) Categorized {
	c := Categorized{
		Future: formatBucket(s.future, h.opts),
	}
	c.Stdlib = append(c.Stdlib, formatBucket(s.stdlibDirect, h.opts)...)
	c.Stdlib = append(c.Stdlib, formatBucket(s.stdlibFrom, h.opts)...)
	c.ThirdParty = append(c.ThirdParty, formatBucket(s.thirdPartyDirect, h.opts)...)
	c.ThirdParty = append(c.ThirdParty, formatBucket(s.thirdPartyFrom, h.opts)...)
	c.Local = append(c.Local, formatBucket(s.localDirect, h.opts)...)
	c.Local = append(c.Local, formatBucket(s.localFrom, h.opts)...)

	sort.Strings(c.Future)
	sort.Strings(c.Stdlib)
	sort.Strings(c.ThirdParty)
	sort.Strings(c.Local)
	return c
}

// Count returns the number of regular-scope statements collected.
func (h *Helper) Count() int {
	return h.regular.count()
}

// TypeCheckingCount returns the number of TYPE_CHECKING-scope statements
// collected.
func (h *Helper) TypeCheckingCount() int {
	return h.typeChecking.count()
}

// IsEmpty reports whether no regular-scope statements were collected.
func (h *Helper) IsEmpty() bool {
	return h.regular.isEmpty()
}

// IsTypeCheckingEmpty reports whether no TYPE_CHECKING-scope statements
// were collected.
func (h *Helper) IsTypeCheckingEmpty() bool {
	return h.typeChecking.isEmpty()
}

// Reset empties both scopes while preserving registry contents, local
// prefixes, package name, and formatting options. Useful when reusing
// one helper across generated files.
func (h *Helper) Reset() *Helper {
	h.regular.clear()
	h.typeChecking.clear()
	return h
}

// CloneConfig creates a new Helper with the same registry contents,
// local prefixes, package name, cache contents, and formatting options,
// but empty sections. The clone shares no state with the receiver.
func (h *Helper) CloneConfig() *Helper {
	return &Helper{
		cat:  h.cat.clone(),
		opts: h.opts,
	}
}
