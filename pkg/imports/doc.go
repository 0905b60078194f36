// Package imports collects, categorizes, merges, and formats Python
// import statements according to PEP 8 and common formatter conventions
// (isort, Black, ruff).
//
// # Overview
//
// The package is built for code generators that accumulate imports while
// emitting Python source and need a canonical import block at the end.
// Statements are grouped into four categories:
//
//  1. Future imports (from __future__ import ...)
//  2. Standard library
//  3. Third-party packages
//  4. Local/relative imports
//
// Within a category, direct imports (import x) precede from imports
// (from x import y), packages are ordered lexicographically, and imports
// from the same package are merged with duplicate items collapsed.
//
// # Usage
//
//	h := imports.NewWithPackageName("myapp")
//	h.AddString("from typing import Any")
//	h.AddString("from pydantic import BaseModel")
//	h.AddString("from myapp.models import User")
//	h.AddFromImport("typing", "Optional")
//	h.AddDirectImport("json")
//
//	for _, line := range h.Formatted() {
//	    fmt.Println(line)
//	}
//
// Imports destined for a TYPE_CHECKING guard are tracked separately via
// the AddTypeChecking* methods; adding one automatically injects
// TYPE_CHECKING into the regular typing import.
//
// # Registry customization
//
// Categorization consults a [registry.Registry] owned by the helper.
// After mutating the registry, call [Helper.ClearCache] so packages seen
// before the mutation are re-categorized.
package imports
