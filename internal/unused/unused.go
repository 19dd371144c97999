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

// Package unused reports imported names a file never references.
//
// The diagnostic message formats below are a contract: the sniffer
// recovers symbol names from them textually. Changing a format without
// changing the sniffer's patterns is a fatal incompatibility.
package unused

import (
	"fmt"
	"go/ast"
	"go/token"
	"path"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/symtab"
)

// Diagnostic categories.
const (
	// CategoryImport marks a plain or aliased import that is never used.
	CategoryImport = "unused-import"

	// CategoryWildcard marks a single name introduced by a wildcard
	// import that is never used.
	CategoryWildcard = "unused-wildcard-import"
)

// Message formats. The sniffer parses these exactly.
const (
	// PlainFormat formats the local name of an unused plain import.
	PlainFormat = "import %s"

	// AliasFormat formats an unused aliased import: name, import path.
	AliasFormat = "%s imported from %s"

	// WildcardFormat formats an unused wildcard-introduced name: name,
	// import path.
	WildcardFormat = "unused %s from wildcard import of %s"
)

// Analyzer reports imported names never referenced by the file's own code.
var Analyzer = &analysis.Analyzer{
	Name:     "envscope_unused",
	Doc:      "reports imported names that are never referenced by the file's own code",
	Requires: []*analysis.Analyzer{symtab.Analyzer},
	Run:      run,
}

func run(p *analysis.Pass) (any, error) {
	table, err := symtab.FromPass(p)
	if err != nil {
		return nil, err
	}

	file := p.Files[0]
	used := references(file)

	// Iterate in name order so diagnostics are deterministic.
	for _, name := range table.Names() {
		entry := table[name]

		switch entry.Kind {
		case source.KindImport:
			if used[name] {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      entry.Pos(),
				End:      entry.End(),
				Category: CategoryImport,
				Message:  importMessage(entry),
			})

		case source.KindWildcard:
			if used[name] {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      entry.Pos(),
				End:      entry.End(),
				Category: CategoryWildcard,
				Message:  fmt.Sprintf(WildcardFormat, name, entry.From),
			})

		default: // only import-like names can be unused imports
		}
	}

	return nil, nil
}

func importMessage(entry source.Entry) string {
	if path.Base(entry.From) == entry.Name {
		return fmt.Sprintf(PlainFormat, entry.Name)
	}

	return fmt.Sprintf(AliasFormat, entry.Name, entry.From)
}

// references collects every identifier mentioned outside import
// declarations. Selector fields do not count as uses of a module-scope
// name; composite literal keys do, since a syntax-only pass cannot tell
// a map key from a struct field and a false "used" is the safe answer.
func references(file *ast.File) map[string]bool {
	used := make(map[string]bool)

	var walk func(n ast.Node) bool
	walk = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			used[n.Name] = true

		case *ast.SelectorExpr:
			ast.Inspect(n.X, walk)

			return false
		}

		return true
	}

	for _, decl := range file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			continue
		}

		ast.Inspect(decl, walk)
	}

	return used
}
