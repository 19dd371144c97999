// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sniff_test

import (
	"fmt"
	"go/token"
	"testing"

	. "fillmore-labs.com/envscope/internal/sniff"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/synth"
)

// tableLoader serves pre-built symbol tables keyed by import path.
type tableLoader map[string]source.Table

func (l tableLoader) LoadImport(importPath string) (*source.File, error) {
	table, ok := l[importPath]
	if !ok {
		return nil, fmt.Errorf("no source for %q", importPath)
	}

	return &source.File{Path: importPath + ".go", Symbols: table}, nil
}

// merge prepares a file the way the transformer does: parse, build the
// table, compile the fragment, and merge the synthetic names.
func merge(tb testing.TB, fset *token.FileSet, src, fragment string, loader source.Loader) (*source.File, synth.Candidates) {
	tb.Helper()

	syntax, err := source.Parse(fset, "src.go", []byte(src))
	if err != nil {
		tb.Fatalf("Can't parse source: %v", err)
	}

	f := &source.File{Syntax: syntax, Symbols: source.NewTable(syntax, loader, nil)}

	synthetic, err := synth.Compile(fset, fragment, loader, nil)
	if err != nil {
		tb.Fatalf("Can't compile fragment: %v", err)
	}

	return f, synth.Merge(f, synthetic)
}

func TestFindUnused(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	loader := tableLoader{
		"globals": source.Table{
			"request":  {Name: "request", Kind: source.KindVar},
			"response": {Name: "response", Kind: source.KindVar},
		},
	}

	const src = `package m

var current = request
`

	f, candidates := merge(t, fset, src, "package scope\n\nimport . \"globals\"\n", loader)

	unusedNames, err := FindUnused(fset, f, candidates)
	if err != nil {
		t.Fatalf("FindUnused() failed: %v", err)
	}

	if _, ok := unusedNames["request"]; ok {
		t.Error("A referenced injected name was reported unused")
	}

	if _, ok := unusedNames["response"]; !ok {
		t.Error("An unreferenced injected name was not reported")
	}
}

func TestFindUnusedIgnoresRealImports(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	loader := tableLoader{
		"globals": source.Table{
			"request": {Name: "request", Kind: source.KindVar},
		},
	}

	// The file's own unused import is not a candidate; the sniffer must
	// leave it for the host analyzer's visible pass.
	const src = `package m

import "os"

var current = request
`

	f, candidates := merge(t, fset, src, "package scope\n\nimport . \"globals\"\n", loader)

	unusedNames, err := FindUnused(fset, f, candidates)
	if err != nil {
		t.Fatalf("FindUnused() failed: %v", err)
	}

	if _, ok := unusedNames["os"]; ok {
		t.Error("A real unused import leaked into the retraction set")
	}

	if len(unusedNames) != 0 {
		t.Errorf("Got %d unused names, want 0: %v", len(unusedNames), unusedNames)
	}
}
