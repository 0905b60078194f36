package imports_test

import (
	"fmt"

	"github.com/matzehuels/pyimports/pkg/imports"
)

func ExampleHelper() {
	h := imports.NewWithPackageName("myapi")

	h.AddString("from __future__ import annotations")
	h.AddString("from typing import Optional, Any")
	h.AddDirectImport("json")
	h.AddFromImport("fastapi", "FastAPI", "Depends")
	h.AddString("from myapi.models import User")

	for _, line := range h.Formatted() {
		fmt.Println(line)
	}
	// Output:
	// from __future__ import annotations
	//
	// import json
	// from typing import Any, Optional
	//
	// from fastapi import Depends, FastAPI
	//
	// from myapi.models import User
}

func ExampleHelper_typeChecking() {
	h := imports.NewWithPackageName("myapp")

	h.AddString("from typing import Any")
	h.AddTypeCheckingFromImport("myapp.users", "User")

	fmt.Println("runtime:")
	for _, line := range h.Formatted() {
		fmt.Println(line)
	}
	fmt.Println("guarded:")
	for _, line := range h.TypeCheckingFormatted() {
		fmt.Println(line)
	}
	// Output:
	// runtime:
	// from typing import TYPE_CHECKING, Any
	// guarded:
	// from myapp.users import User
}

func ExampleHelper_registryCustomization() {
	h := imports.New()
	h.Registry().
		AddStdlib("my_vendored_module").
		AddThirdParty("companylib")

	h.AddDirectImport("my_vendored_module")
	h.AddFromImport("companylib", "Client")

	c := h.Categorized()
	fmt.Println("stdlib:", c.Stdlib)
	fmt.Println("third-party:", c.ThirdParty)
	// Output:
	// stdlib: [import my_vendored_module]
	// third-party: [from companylib import Client]
}
