package imports

import (
	"reflect"
	"testing"
)

func TestExtractPackage(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want string
	}{
		{name: "FromImport", stmt: "from typing import Any", want: "typing"},
		{name: "DirectImport", stmt: "import json", want: "json"},
		{name: "DottedPackage", stmt: "from collections.abc import Mapping", want: "collections.abc"},
		{name: "DirectWithAlias", stmt: "import numpy as np", want: "numpy"},
		{name: "RelativeImport", stmt: "from ..sibling import function", want: "..sibling"},
		{name: "NoKeyword", stmt: "something else entirely", want: "something else entirely"},
		{name: "FromWithoutImport", stmt: "from typing", want: "from typing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPackage(tt.stmt); got != tt.want {
				t.Errorf("extractPackage(%q) = %q, want %q", tt.stmt, got, tt.want)
			}
		})
	}
}

func TestExtractItems(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want []string
	}{
		{
			name: "Sorted",
			stmt: "from typing import Optional, Any",
			want: []string{"Any", "Optional"},
		},
		{
			name: "AllCapsFirst",
			stmt: "from typing import Any, TYPE_CHECKING",
			want: []string{"TYPE_CHECKING", "Any"},
		},
		{
			name: "ParenthesesStripped",
			stmt: "from typing import (Any, Optional)",
			want: []string{"Any", "Optional"},
		},
		{
			name: "DirectModuleIsItem",
			stmt: "import json",
			want: []string{"json"},
		},
		{
			name: "FromWithoutImportKeyword",
			stmt: "from typing",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractItems(tt.stmt); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractItems(%q) = %v, want %v", tt.stmt, got, tt.want)
			}
		})
	}
}

func TestCompareItemsOrdering(t *testing.T) {
	items := []string{"Optional", "TYPE_CHECKING", "Any", "LITERAL"}
	sortItems(items)

	want := []string{"LITERAL", "TYPE_CHECKING", "Any", "Optional"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("sortItems() = %v, want %v", items, want)
	}
}

func TestCompareItemsWildcardLast(t *testing.T) {
	items := []string{"*", "loads", "DUMPS"}
	sortItems(items)

	want := []string{"DUMPS", "loads", "*"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("sortItems() = %v, want %v", items, want)
	}
}

func TestCompareItemsCaseTiebreak(t *testing.T) {
	// AA and AB are all-caps; Aa and Ab are mixed case. Within each
	// class names compare case-insensitively with a case-sensitive
	// tiebreak.
	items := []string{"Ab", "AA", "Aa", "AB"}
	sortItems(items)

	want := []string{"AA", "AB", "Aa", "Ab"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("sortItems() = %v, want %v", items, want)
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"TYPE_CHECKING", true},
		{"LITERAL", true},
		{"Any", false},
		{"loads", false},
		{"_private", false},
		{"__ALL__", true},
		{"", false},
		{"__", true}, // no letters at all counts as all-caps when non-empty
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.s); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		category Category
		wantOK   bool
		want     Statement
	}{
		{
			name:     "FromRebuiltSorted",
			raw:      "from typing import Optional, Any",
			category: CategoryStandardLibrary,
			wantOK:   true,
			want: Statement{
				Text:     "from typing import Any, Optional",
				Category: CategoryStandardLibrary,
				Kind:     KindFrom,
				Package:  "typing",
				Items:    []string{"Any", "Optional"},
			},
		},
		{
			name:     "Direct",
			raw:      "import json",
			category: CategoryStandardLibrary,
			wantOK:   true,
			want: Statement{
				Text:     "import json",
				Category: CategoryStandardLibrary,
				Kind:     KindDirect,
				Package:  "json",
				Items:    []string{"json"},
			},
		},
		{
			name:     "MultilineFlag",
			raw:      "from typing import (Any)",
			category: CategoryStandardLibrary,
			wantOK:   true,
			want: Statement{
				Text:      "from typing import Any",
				Category:  CategoryStandardLibrary,
				Kind:      KindFrom,
				Package:   "typing",
				Items:     []string{"Any"},
				Multiline: true,
			},
		},
		{
			name:   "Empty",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "WhitespaceOnly",
			raw:    "   \t  ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseStatement(tt.raw, tt.category)
			if ok != tt.wantOK {
				t.Fatalf("parseStatement(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseStatement(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
