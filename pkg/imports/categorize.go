package imports

import (
	"strings"

	"github.com/matzehuels/pyimports/pkg/imports/registry"
)

// categorizer assigns a Category to import statements. It owns the
// package registry, the configured local prefixes, and a result cache
// keyed by package name.
//
// The cache is keyed by package only, even though the local check also
// looks at whether the specific statement is relative. Two statements
// importing the same package name, one relative and one absolute, can
// therefore receive the cached category of whichever was seen first.
// Callers that mutate the registry must call clearCache to drop results
// computed against the old contents.
type categorizer struct {
	registry    *registry.Registry
	prefixes    map[string]struct{}
	packageName string
	cache       map[string]Category
}

func newCategorizer() *categorizer {
	return &categorizer{
		registry: registry.New(),
		prefixes: make(map[string]struct{}),
		cache:    make(map[string]Category),
	}
}

// categorize resolves the category for a trimmed import statement.
// Priority: future, then cached result, then local (relative marker or
// prefix match), then registry stdlib, then registry third-party, with
// unknown packages defaulting to third-party.
func (c *categorizer) categorize(stmt string) Category {
	if strings.HasPrefix(stmt, "from __future__") {
		return CategoryFuture
	}

	pkg := extractPackage(stmt)
	if cached, ok := c.cache[pkg]; ok {
		return cached
	}

	var category Category
	switch {
	case c.isLocal(stmt, pkg):
		category = CategoryLocal
	case c.registry.IsStdlib(pkg):
		category = CategoryStandardLibrary
	default:
		// Registered third-party and unknown packages land in the same
		// bucket, so no separate membership check is needed to decide.
		category = CategoryThirdParty
	}

	c.cache[pkg] = category
	return category
}

// isLocal reports whether the statement is a relative import or the
// package matches a configured local prefix or the package name.
func (c *categorizer) isLocal(stmt, pkg string) bool {
	if strings.Contains(stmt, "from .") {
		return true
	}
	for prefix := range c.prefixes {
		if strings.HasPrefix(pkg, prefix) {
			return true
		}
	}
	if c.packageName != "" && strings.HasPrefix(pkg, c.packageName) {
		return true
	}
	return false
}

// addPrefix registers a local package prefix. Prefixes match by
// HasPrefix, not exact comparison. Results computed before the prefix
// was added stay in the cache until clearCache.
func (c *categorizer) addPrefix(prefix string) {
	c.prefixes[prefix] = struct{}{}
}

func (c *categorizer) clearCache() {
	c.cache = make(map[string]Category)
}

// clone copies the full categorizer state, including cached results.
func (c *categorizer) clone() *categorizer {
	cp := &categorizer{
		registry:    c.registry.Clone(),
		prefixes:    make(map[string]struct{}, len(c.prefixes)),
		packageName: c.packageName,
		cache:       make(map[string]Category, len(c.cache)),
	}
	for prefix := range c.prefixes {
		cp.prefixes[prefix] = struct{}{}
	}
	for pkg, cat := range c.cache {
		cp.cache[pkg] = cat
	}
	return cp
}
