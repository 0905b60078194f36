package registry

import "sort"

// Registry holds the mutable sets of known standard library and
// third-party package names. It is owned by a single helper instance;
// share between helpers only via Clone.
type Registry struct {
	stdlib     map[string]struct{}
	thirdParty map[string]struct{}
}

// New creates a Registry seeded with the Python 3.13 stdlib modules and
// the default third-party package list.
func New() *Registry {
	return &Registry{
		stdlib:     toSet(defaultStdlibModules),
		thirdParty: toSet(defaultThirdPartyPackages),
	}
}

// IsStdlib reports whether name is a registered standard library module.
func (r *Registry) IsStdlib(name string) bool {
	_, ok := r.stdlib[name]
	return ok
}

// IsThirdParty reports whether name is a registered third-party package.
func (r *Registry) IsThirdParty(name string) bool {
	_, ok := r.thirdParty[name]
	return ok
}

// AddStdlib registers name as a standard library module.
func (r *Registry) AddStdlib(name string) *Registry {
	r.stdlib[name] = struct{}{}
	return r
}

// AddThirdParty registers name as a third-party package.
func (r *Registry) AddThirdParty(name string) *Registry {
	r.thirdParty[name] = struct{}{}
	return r
}

// AddStdlibBulk registers several standard library modules at once.
func (r *Registry) AddStdlibBulk(names ...string) *Registry {
	for _, name := range names {
		r.stdlib[name] = struct{}{}
	}
	return r
}

// AddThirdPartyBulk registers several third-party packages at once.
func (r *Registry) AddThirdPartyBulk(names ...string) *Registry {
	for _, name := range names {
		r.thirdParty[name] = struct{}{}
	}
	return r
}

// RemoveStdlib unregisters a standard library module. Removing an absent
// entry is a no-op.
func (r *Registry) RemoveStdlib(name string) *Registry {
	delete(r.stdlib, name)
	return r
}

// RemoveThirdParty unregisters a third-party package. Removing an absent
// entry is a no-op.
func (r *Registry) RemoveThirdParty(name string) *Registry {
	delete(r.thirdParty, name)
	return r
}

// ClearStdlib empties the standard library set.
func (r *Registry) ClearStdlib() *Registry {
	r.stdlib = make(map[string]struct{})
	return r
}

// ClearThirdParty empties the third-party set.
func (r *Registry) ClearThirdParty() *Registry {
	r.thirdParty = make(map[string]struct{})
	return r
}

// ResetStdlibToDefaults restores the Python 3.13 stdlib module list.
func (r *Registry) ResetStdlibToDefaults() *Registry {
	r.stdlib = toSet(defaultStdlibModules)
	return r
}

// ResetThirdPartyToDefaults restores the default third-party package list.
func (r *Registry) ResetThirdPartyToDefaults() *Registry {
	r.thirdParty = toSet(defaultThirdPartyPackages)
	return r
}

// CountStdlib returns the number of registered stdlib modules.
func (r *Registry) CountStdlib() int {
	return len(r.stdlib)
}

// CountThirdParty returns the number of registered third-party packages.
func (r *Registry) CountThirdParty() int {
	return len(r.thirdParty)
}

// StdlibModules returns the registered stdlib modules in sorted order.
func (r *Registry) StdlibModules() []string {
	return sortedNames(r.stdlib)
}

// ThirdPartyPackages returns the registered third-party packages in
// sorted order.
func (r *Registry) ThirdPartyPackages() []string {
	return sortedNames(r.thirdParty)
}

// Clone returns a deep copy of the registry. The copy shares no state
// with the receiver, so either side can mutate freely.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		stdlib:     make(map[string]struct{}, len(r.stdlib)),
		thirdParty: make(map[string]struct{}, len(r.thirdParty)),
	}
	for name := range r.stdlib {
		c.stdlib[name] = struct{}{}
	}
	for name := range r.thirdParty {
		c.thirdParty[name] = struct{}{}
	}
	return c
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
