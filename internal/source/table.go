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

package source

import (
	"go/ast"
	"go/token"
	"log/slog"
	"path"
	"slices"
	"strconv"
)

// Kind classifies a symbol table entry by its declaration form.
type Kind uint8

const (
	// KindVar is a top-level variable or constant.
	KindVar Kind = iota

	// KindType is a top-level type declaration.
	KindType

	// KindFunc is a top-level function declaration.
	KindFunc

	// KindImport is a plain or aliased import.
	KindImport

	// KindWildcard is a name introduced by a wildcard (dot) import.
	KindWildcard
)

// Entry is one top-level name with its declaration site.
type Entry struct {
	// Name is the symbol's name in module scope.
	Name string

	// Kind is the declaration form.
	Kind Kind

	// Node is the declaration site: the spec, function declaration, or,
	// for wildcard names, the import that introduced them.
	Node ast.Node

	// From is the import path for KindImport and KindWildcard entries.
	From string
}

// Table maps top-level names to their declarations. Insertion order is
// irrelevant; iteration must not be relied on for output ordering.
type Table map[string]Entry

// Has reports whether name is declared.
func (t Table) Has(name string) bool {
	_, ok := t[name]

	return ok
}

// Delete removes name if present. Removing an absent name is a no-op.
func (t Table) Delete(name string) {
	delete(t, name)
}

// Names returns all declared names in sorted order, for deterministic
// reporting and tests.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Loader resolves an import path through the module search path and
// loads the file providing it. Loading may re-enter the host analyzer's
// transform hook.
type Loader interface {
	LoadImport(importPath string) (*File, error)
}

// NewTable builds the top-level symbol table of a parsed file.
//
// Wildcard imports are expanded through the loader; an import that
// cannot be resolved contributes no names, matching the runtime, which
// would fail the file before any name mattered.
func NewTable(syntax *ast.File, loader Loader, log *slog.Logger) Table {
	if log == nil {
		log = slog.Default()
	}

	t := make(Table)

	for _, decl := range syntax.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			t.addGenDecl(decl, loader, log)

		case *ast.FuncDecl:
			if decl.Recv != nil || decl.Name.Name == "_" {
				continue // methods are not module-scope names
			}

			t[decl.Name.Name] = Entry{Name: decl.Name.Name, Kind: KindFunc, Node: decl}
		}
	}

	return t
}

func (t Table) addGenDecl(decl *ast.GenDecl, loader Loader, log *slog.Logger) {
	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.ImportSpec:
			t.addImport(spec, loader, log)

		case *ast.ValueSpec:
			for _, id := range spec.Names {
				if id.Name == "_" {
					continue
				}

				t[id.Name] = Entry{Name: id.Name, Kind: KindVar, Node: spec}
			}

		case *ast.TypeSpec:
			if spec.Name.Name == "_" {
				continue
			}

			t[spec.Name.Name] = Entry{Name: spec.Name.Name, Kind: KindType, Node: spec}
		}
	}
}

func (t Table) addImport(spec *ast.ImportSpec, loader Loader, log *slog.Logger) {
	importPath, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return // unparsable path, nothing to declare
	}

	switch {
	case spec.Name == nil:
		name := path.Base(importPath)
		t[name] = Entry{Name: name, Kind: KindImport, Node: spec, From: importPath}

	case spec.Name.Name == "_":
		// side-effect import, declares nothing

	case spec.Name.Name == ".":
		t.addWildcard(spec, importPath, loader, log)

	default:
		t[spec.Name.Name] = Entry{Name: spec.Name.Name, Kind: KindImport, Node: spec, From: importPath}
	}
}

func (t Table) addWildcard(spec *ast.ImportSpec, importPath string, loader Loader, log *slog.Logger) {
	if loader == nil {
		return
	}

	dep, err := loader.LoadImport(importPath)
	if err != nil {
		log.Debug("wildcard import not resolved", "path", importPath, "err", err)

		return
	}

	for name := range dep.Symbols {
		t[name] = Entry{Name: name, Kind: KindWildcard, Node: spec, From: importPath}
	}
}

// end returns a valid end position for an entry's declaration site.
func (e Entry) End() token.Pos { return e.Node.End() }

// Pos returns the position of an entry's declaration site.
func (e Entry) Pos() token.Pos { return e.Node.Pos() }
