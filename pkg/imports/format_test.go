package imports

import (
	"reflect"
	"strings"
	"testing"
)

func fromStatement(pkg string, items ...string) Statement {
	sorted := append([]string(nil), items...)
	sortItems(sorted)
	return Statement{
		Text:     "from " + pkg + " import " + strings.Join(sorted, ", "),
		Category: CategoryStandardLibrary,
		Kind:     KindFrom,
		Package:  pkg,
		Items:    sorted,
	}
}

func directStatement(module string) Statement {
	return Statement{
		Text:     "import " + module,
		Category: CategoryStandardLibrary,
		Kind:     KindDirect,
		Package:  module,
		Items:    []string{module},
	}
}

func TestFormatBucketMergesSamePackage(t *testing.T) {
	statements := []Statement{
		fromStatement("typing", "Any"),
		fromStatement("typing", "Optional"),
	}

	got := formatBucket(statements, DefaultOptions())
	want := []string{"from typing import Any, Optional"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatBucket() = %v, want %v", got, want)
	}
}

func TestFormatBucketPackageOrder(t *testing.T) {
	statements := []Statement{
		fromStatement("typing", "Any"),
		fromStatement("collections.abc", "Mapping"),
		fromStatement("pathlib", "Path"),
	}

	got := formatBucket(statements, DefaultOptions())
	want := []string{
		"from collections.abc import Mapping",
		"from pathlib import Path",
		"from typing import Any",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatBucket() = %v, want %v", got, want)
	}
}

func TestFormatBucketCollapsesDuplicates(t *testing.T) {
	statements := []Statement{
		fromStatement("typing", "Any"),
		fromStatement("typing", "Any"),
		fromStatement("typing", "Any"),
	}

	got := formatBucket(statements, DefaultOptions())
	want := []string{"from typing import Any"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatBucket() = %v, want %v", got, want)
	}
}

func TestFormatBucketDuplicateDirect(t *testing.T) {
	statements := []Statement{
		directStatement("json"),
		directStatement("json"),
	}

	got := formatBucket(statements, DefaultOptions())
	want := []string{"import json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatBucket() = %v, want %v", got, want)
	}
}

func TestLayoutThresholds(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		wantMulti bool
	}{
		{name: "ThreeShortItems", items: []string{"a", "b", "c"}, wantMulti: false},
		{name: "FourItems", items: []string{"a", "b", "c", "d"}, wantMulti: true},
		{
			name:      "ThreeLongItems",
			items:     []string{strings.Repeat("a", 30), strings.Repeat("b", 20), strings.Repeat("c", 10)},
			wantMulti: true,
		},
		{
			// 59 total characters stays on one line.
			name:      "JustUnderBudget",
			items:     []string{strings.Repeat("a", 29), strings.Repeat("b", 30)},
			wantMulti: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutFromImport("pkg", tt.items, DefaultOptions())
			isMulti := len(got) > 1
			if isMulti != tt.wantMulti {
				t.Errorf("layoutFromImport(%v) multiline = %v, want %v\nlines: %v", tt.items, isMulti, tt.wantMulti, got)
			}
		})
	}
}

func TestLayoutMultilineShape(t *testing.T) {
	got := layoutFromImport("typing", []string{"Any", "Dict", "List", "Optional"}, DefaultOptions())
	want := []string{
		"from typing import (",
		"    Any,",
		"    Dict,",
		"    List,",
		"    Optional,",
		")",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("layoutFromImport() = %v, want %v", got, want)
	}
}

func TestLayoutNoTrailingComma(t *testing.T) {
	opts := DefaultOptions()
	opts.TrailingComma = false

	got := layoutFromImport("typing", []string{"Any", "Dict", "List", "Optional"}, opts)
	want := []string{
		"from typing import (",
		"    Any,",
		"    Dict,",
		"    List,",
		"    Optional",
		")",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("layoutFromImport() = %v, want %v", got, want)
	}
}

func TestLayoutForceFlags(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	opts := DefaultOptions()
	opts.ForceSingleLine = true
	if got := layoutFromImport("pkg", items, opts); len(got) != 1 {
		t.Errorf("ForceSingleLine produced %d lines, want 1", len(got))
	}

	opts = DefaultOptions()
	opts.ForceMultiline = true
	if got := layoutFromImport("pkg", []string{"a"}, opts); len(got) != 3 {
		t.Errorf("ForceMultiline produced %d lines, want 3", len(got))
	}
}

func TestLayoutIndentSize(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentSize = 2
	opts.ForceMultiline = true

	got := layoutFromImport("pkg", []string{"a"}, opts)
	want := []string{"from pkg import (", "  a,", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("layoutFromImport() = %v, want %v", got, want)
	}
}

func TestOptionsForProfile(t *testing.T) {
	tests := []struct {
		profile    string
		wantLength int
		wantOK     bool
	}{
		{profile: "pep8", wantLength: 79, wantOK: true},
		{profile: "isort", wantLength: 79, wantOK: true},
		{profile: "black", wantLength: 88, wantOK: true},
		{profile: "ruff", wantLength: 88, wantOK: true},
		{profile: "Black", wantLength: 88, wantOK: true},
		{profile: "", wantLength: 79, wantOK: true},
		{profile: "gofmt", wantOK: false},
	}

	for _, tt := range tests {
		t.Run("Profile/"+tt.profile, func(t *testing.T) {
			opts, ok := OptionsForProfile(tt.profile)
			if ok != tt.wantOK {
				t.Fatalf("OptionsForProfile(%q) ok = %v, want %v", tt.profile, ok, tt.wantOK)
			}
			if ok && opts.LineLength != tt.wantLength {
				t.Errorf("OptionsForProfile(%q).LineLength = %d, want %d", tt.profile, opts.LineLength, tt.wantLength)
			}
		})
	}
}
