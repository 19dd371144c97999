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

// Package undeclared reports identifiers that resolve neither to a
// local scope, nor to the file's top-level symbol table, nor to the
// universe. On files with an implicit environment, this is the checker
// whose false positives the synthetic-scope transform suppresses.
package undeclared

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/astutil"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/symtab"
)

// Category marks diagnostics about names with no visible declaration.
const Category = "undefined-name"

// Analyzer reports names that are not defined in the file's scope.
var Analyzer = &analysis.Analyzer{
	Name:     "envscope_undeclared",
	Doc:      "reports names that are not defined in any visible scope",
	Requires: []*analysis.Analyzer{symtab.Analyzer},
	Run:      run,
}

func run(p *analysis.Pass) (any, error) {
	table, err := symtab.FromPass(p)
	if err != nil {
		return nil, err
	}

	file := p.Files[0]

	c := &checker{
		pass:   p,
		file:   astutil.NewCurrentFile(p.Fset, file),
		global: table,
	}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok == token.IMPORT {
				continue
			}

			c.genDecl(decl)

		case *ast.FuncDecl:
			c.funcDecl(decl)
		}
	}

	return nil, nil
}

type checker struct {
	pass   *analysis.Pass
	file   astutil.CurrentFile
	global source.Table
	scopes []map[string]bool
}

func (c *checker) push() {
	c.scopes = append(c.scopes, make(map[string]bool))
}

func (c *checker) pop() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *checker) declare(name string) {
	if name == "_" || len(c.scopes) == 0 {
		return
	}

	c.scopes[len(c.scopes)-1][name] = true
}

func (c *checker) resolved(name string) bool {
	if name == "_" {
		return true
	}

	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i][name] {
			return true
		}
	}

	return c.global.Has(name) || universe[name]
}

func (c *checker) report(id *ast.Ident) {
	if c.file.NoLintComment(id.Pos()) {
		return
	}

	c.pass.Report(analysis.Diagnostic{
		Pos:      id.Pos(),
		End:      id.End(),
		Category: Category,
		Message:  fmt.Sprintf("undefined name %q", id.Name),
	})
}

func (c *checker) genDecl(decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.ValueSpec:
			c.expr(spec.Type)

			for _, value := range spec.Values {
				c.expr(value)
			}

		case *ast.TypeSpec:
			c.expr(spec.Type)
		}
	}
}

func (c *checker) funcDecl(decl *ast.FuncDecl) {
	c.push()
	defer c.pop()

	if decl.Recv != nil {
		c.declareFields(decl.Recv)
	}

	c.funcType(decl.Type)

	if decl.Body != nil {
		c.stmts(decl.Body.List)
	}
}

// funcType checks parameter and result types and declares their names
// in the current scope.
func (c *checker) funcType(t *ast.FuncType) {
	if t.TypeParams != nil {
		c.declareFields(t.TypeParams)
	}

	c.declareFields(t.Params)

	if t.Results != nil {
		c.declareFields(t.Results)
	}
}

func (c *checker) declareFields(fields *ast.FieldList) {
	for _, field := range fields.List {
		c.expr(field.Type)

		for _, name := range field.Names {
			c.declare(name.Name)
		}
	}
}

func (c *checker) stmts(list []ast.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

//nolint:gocyclo // one case per statement kind
func (c *checker) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		c.assign(s)

	case *ast.DeclStmt:
		c.declStmt(s)

	case *ast.ExprStmt:
		c.expr(s.X)

	case *ast.SendStmt:
		c.expr(s.Chan)
		c.expr(s.Value)

	case *ast.IncDecStmt:
		c.expr(s.X)

	case *ast.GoStmt:
		c.expr(s.Call)

	case *ast.DeferStmt:
		c.expr(s.Call)

	case *ast.ReturnStmt:
		for _, result := range s.Results {
			c.expr(result)
		}

	case *ast.IfStmt:
		c.push()
		c.stmt(s.Init)
		c.expr(s.Cond)
		c.stmts(s.Body.List)
		c.stmt(s.Else)
		c.pop()

	case *ast.ForStmt:
		c.push()
		c.stmt(s.Init)
		c.expr(s.Cond)
		c.stmt(s.Post)
		c.stmts(s.Body.List)
		c.pop()

	case *ast.RangeStmt:
		c.rangeStmt(s)

	case *ast.SwitchStmt:
		c.push()
		c.stmt(s.Init)
		c.expr(s.Tag)
		c.stmts(s.Body.List)
		c.pop()

	case *ast.TypeSwitchStmt:
		c.typeSwitch(s)

	case *ast.SelectStmt:
		c.stmts(s.Body.List)

	case *ast.CaseClause:
		c.push()

		for _, e := range s.List {
			c.expr(e)
		}

		c.stmts(s.Body)
		c.pop()

	case *ast.CommClause:
		c.push()
		c.stmt(s.Comm)
		c.stmts(s.Body)
		c.pop()

	case *ast.BlockStmt:
		c.push()
		c.stmts(s.List)
		c.pop()

	case *ast.LabeledStmt:
		c.stmt(s.Stmt)

	case nil, *ast.BranchStmt, *ast.EmptyStmt:
		// labels are not module-scope names
	}
}

func (c *checker) assign(s *ast.AssignStmt) {
	for _, rhs := range s.Rhs {
		c.expr(rhs)
	}

	if s.Tok != token.DEFINE {
		for _, lhs := range s.Lhs {
			c.expr(lhs)
		}

		return
	}

	for _, lhs := range s.Lhs {
		if id, ok := lhs.(*ast.Ident); ok {
			c.declare(id.Name)
		}
	}
}

func (c *checker) declStmt(s *ast.DeclStmt) {
	decl, ok := s.Decl.(*ast.GenDecl)
	if !ok {
		return
	}

	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.ValueSpec:
			c.expr(spec.Type)

			for _, value := range spec.Values {
				c.expr(value)
			}

			for _, name := range spec.Names {
				c.declare(name.Name)
			}

		case *ast.TypeSpec:
			c.declare(spec.Name.Name)
			c.expr(spec.Type)
		}
	}
}

func (c *checker) rangeStmt(s *ast.RangeStmt) {
	c.push()
	defer c.pop()

	c.expr(s.X)

	if s.Tok == token.DEFINE {
		for _, e := range []ast.Expr{s.Key, s.Value} {
			if id, ok := e.(*ast.Ident); ok {
				c.declare(id.Name)
			}
		}
	} else {
		c.expr(s.Key)
		c.expr(s.Value)
	}

	c.stmts(s.Body.List)
}

func (c *checker) typeSwitch(s *ast.TypeSwitchStmt) {
	c.push()
	defer c.pop()

	c.stmt(s.Init)

	var bound string

	switch assign := s.Assign.(type) {
	case *ast.AssignStmt:
		for _, rhs := range assign.Rhs {
			c.expr(rhs)
		}

		if id, ok := assign.Lhs[0].(*ast.Ident); ok {
			bound = id.Name
		}

	case *ast.ExprStmt:
		c.expr(assign.X)
	}

	for _, clause := range s.Body.List {
		clause, ok := clause.(*ast.CaseClause)
		if !ok {
			continue
		}

		c.push()
		c.declare(bound)

		for _, e := range clause.List {
			c.expr(e)
		}

		c.stmts(clause.Body)
		c.pop()
	}
}

//nolint:gocyclo // one case per expression kind
func (c *checker) expr(e ast.Expr) {
	switch e := e.(type) {
	case nil, *ast.BasicLit:

	case *ast.Ident:
		if !c.resolved(e.Name) {
			c.report(e)
		}

	case *ast.SelectorExpr:
		c.expr(e.X) // the field name is resolved through the value

	case *ast.CallExpr:
		c.expr(e.Fun)

		for _, arg := range e.Args {
			c.expr(arg)
		}

	case *ast.BinaryExpr:
		c.expr(e.X)
		c.expr(e.Y)

	case *ast.UnaryExpr:
		c.expr(e.X)

	case *ast.ParenExpr:
		c.expr(e.X)

	case *ast.StarExpr:
		c.expr(e.X)

	case *ast.IndexExpr:
		c.expr(e.X)
		c.expr(e.Index)

	case *ast.IndexListExpr:
		c.expr(e.X)

		for _, index := range e.Indices {
			c.expr(index)
		}

	case *ast.SliceExpr:
		c.expr(e.X)
		c.expr(e.Low)
		c.expr(e.High)
		c.expr(e.Max)

	case *ast.TypeAssertExpr:
		c.expr(e.X)
		c.expr(e.Type)

	case *ast.KeyValueExpr:
		// An identifier key may be a struct field; a syntax-only pass
		// cannot tell, so identifier keys go unchecked.
		if _, ok := e.Key.(*ast.Ident); !ok {
			c.expr(e.Key)
		}

		c.expr(e.Value)

	case *ast.CompositeLit:
		c.expr(e.Type)

		for _, elt := range e.Elts {
			c.expr(elt)
		}

	case *ast.FuncLit:
		c.push()
		c.funcType(e.Type)
		c.stmts(e.Body.List)
		c.pop()

	case *ast.Ellipsis:
		c.expr(e.Elt)

	case *ast.ArrayType:
		c.expr(e.Len)
		c.expr(e.Elt)

	case *ast.MapType:
		c.expr(e.Key)
		c.expr(e.Value)

	case *ast.ChanType:
		c.expr(e.Value)

	case *ast.StructType:
		for _, field := range e.Fields.List {
			c.expr(field.Type)
		}

	case *ast.InterfaceType:
		for _, method := range e.Methods.List {
			c.expr(method.Type)
		}

	case *ast.FuncType:
		c.push()
		c.funcType(e)
		c.pop()
	}
}
