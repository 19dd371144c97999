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
	"go/parser"
	"go/token"
)

// Role is the part a file plays in gluon's evaluation order.
type Role uint8

const (
	// RolePlain marks files outside the implicit environment, analyzed as-is.
	RolePlain Role = iota

	// RoleDeclaration marks model files, whose top-level names become part
	// of the implicit environment of later models and of all controllers.
	RoleDeclaration

	// RoleEntry marks controller files, which receive the entire model
	// namespace plus the predefined framework objects.
	RoleEntry
)

// String implements [fmt.Stringer].
func (r Role) String() string {
	switch r {
	case RoleDeclaration:
		return "declaration"
	case RoleEntry:
		return "entry"
	default:
		return "plain"
	}
}

// File is a single analyzed source file. The analyzer owns the syntax
// tree; envscope only ever mutates the symbol table.
type File struct {
	// Path is the absolute path of the file.
	Path string

	// Role is the framework role derived from the file's location.
	Role Role

	// Syntax is the parsed tree. Never modified after parsing.
	Syntax *ast.File

	// Symbols is the mutable top-level symbol table.
	Symbols Table

	scoped bool
}

// Scoped reports whether the implicit environment has already been
// merged into (and retracted from) this file's symbol table.
func (f *File) Scoped() bool { return f.scoped }

// MarkScoped records that the file's symbol table now reflects the
// implicit environment. Further transformations are no-ops.
func (f *File) MarkScoped() { f.scoped = true }

// Parse parses a gluon source file. Comments are kept for nolint
// directives; object resolution is skipped since the symbol table is
// built separately.
func Parse(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
}
