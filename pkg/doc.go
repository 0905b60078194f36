// Package pkg provides the core libraries for pyimports.
//
// # Overview
//
// Pyimports organizes Python import statements: it categorizes them into
// future, standard library, third-party, and local groups, merges
// duplicates per package, and formats the result against a configurable
// line budget. The pkg directory is organized as:
//
//  1. [imports] - The organizer: parsing, categorization, merge, layout
//  2. [imports/registry] - Package classification tables
//  3. [config] - TOML project configuration
//  4. [errors] - Structured errors with machine-readable codes
//  5. [buildinfo] - Build-time version information
//
// # Quick Start
//
//	h := imports.New()
//	h.AddString("import requests")
//	h.AddString("from os import path")
//	for _, line := range h.Formatted() {
//	    fmt.Println(line)
//	}
//
// The [imports.Helper] owns all mutable state; create one per goroutine
// or guard shared use externally.
package pkg
