// Package registry maintains the package-name sets used to categorize
// Python imports as standard library or third-party.
//
// A Registry starts out loaded with the Python 3.13 standard library
// modules and a reference list of common third-party packages. Both sets
// are mutable at runtime so callers can adapt categorization to their
// Python version or vendor packages:
//
//	r := registry.New()
//	r.AddStdlib("my_vendored_stdlib").
//		AddThirdParty("my_company_lib")
//
// Membership checks are exact-string and case-sensitive. Mutators return
// the receiver to support chaining; removing an absent entry or adding a
// duplicate is a no-op, never an error.
package registry
