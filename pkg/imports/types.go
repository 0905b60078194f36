package imports

// Category identifies which PEP 8 import group a statement belongs to.
// The declaration order is the emission order.
type Category int

const (
	// CategoryFuture is for "from __future__ import ..." statements.
	CategoryFuture Category = iota
	// CategoryStandardLibrary is for Python standard library imports.
	CategoryStandardLibrary
	// CategoryThirdParty is for external package imports. Unknown
	// packages default here.
	CategoryThirdParty
	// CategoryLocal is for relative imports and packages matching a
	// configured local prefix.
	CategoryLocal
)

// String returns the category name for logging and API responses.
func (c Category) String() string {
	switch c {
	case CategoryFuture:
		return "future"
	case CategoryStandardLibrary:
		return "stdlib"
	case CategoryThirdParty:
		return "third_party"
	case CategoryLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Kind distinguishes the two accepted statement surface forms.
type Kind int

const (
	// KindDirect is "import module".
	KindDirect Kind = iota
	// KindFrom is "from module import item[, item...]".
	KindFrom
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindFrom {
		return "from"
	}
	return "direct"
}

// Statement is a parsed import statement. Text is the reconstructed
// canonical form: for from imports the items are always re-joined in
// sorted order, never the caller's original ordering.
type Statement struct {
	Text      string
	Category  Category
	Kind      Kind
	Package   string
	Items     []string
	Multiline bool // raw input contained parentheses; informational only
}

// Spec describes an import to add in a structured way, as an alternative
// to raw statement strings. Empty or absent Items means a direct import;
// one or more Items means a from import.
type Spec struct {
	Package      string   `json:"package"`
	Items        []string `json:"items,omitempty"`
	TypeChecking bool     `json:"type_checking,omitempty"`
}

// Direct creates a direct import spec (import package).
func Direct(pkg string) Spec {
	return Spec{Package: pkg}
}

// From creates a from import spec (from package import items...).
func From(pkg string, items ...string) Spec {
	return Spec{Package: pkg, Items: items}
}

// TypeCheckingDirect creates a direct import spec destined for the
// TYPE_CHECKING block.
func TypeCheckingDirect(pkg string) Spec {
	return Spec{Package: pkg, TypeChecking: true}
}

// TypeCheckingFrom creates a from import spec destined for the
// TYPE_CHECKING block.
func TypeCheckingFrom(pkg string, items ...string) Spec {
	return Spec{Package: pkg, Items: items, TypeChecking: true}
}

// AsTypeChecking returns a copy of the spec marked for the TYPE_CHECKING
// block.
func (s Spec) AsTypeChecking() Spec {
	s.TypeChecking = true
	return s
}

// Categorized holds formatted import lines split by category. Each slice
// is sorted alphabetically.
type Categorized struct {
	Future     []string
	Stdlib     []string
	ThirdParty []string
	Local      []string
}
