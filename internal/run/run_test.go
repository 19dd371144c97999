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

package run_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fillmore-labs.com/envscope/internal/engine"
	. "fillmore-labs.com/envscope/internal/run"
	"fillmore-labs.com/envscope/internal/searchpath"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/testsource"
)

// newEngine builds an engine with the synthetic-scope transform
// registered, over a fresh gluon installation at root.
func newEngine(tb testing.TB, root string) *engine.Engine {
	tb.Helper()

	testsource.Framework(tb, root)

	e := engine.New(searchpath.New())
	e.RegisterTransform(New(e, nil).Transform)

	return e
}

func TestModelEnvironment(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/db.go": `package models

var db = DAL("sqlite://storage.sqlite")
`,
	})

	e := newEngine(t, root)

	f, err := e.Load(filepath.Join(appDir, "models", "db.go"))
	require.NoError(t, err)

	require.True(t, f.Scoped())

	// Referenced injected names survive, unreferenced ones are retracted.
	require.True(t, f.Symbols.Has("db"))
	require.True(t, f.Symbols.Has("DAL"))
	require.False(t, f.Symbols.Has("response"))
	require.False(t, f.Symbols.Has("SQLFORM"))
}

func TestControllerSeesModels(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/db.go": `package models

var db = DAL("sqlite://storage.sqlite")
`,
		"controllers/default.go": `package controllers

func index() any {
	response.View = "default/index.html"

	return SQLFORM(db)
}
`,
	})

	e := newEngine(t, root)

	f, err := e.Load(filepath.Join(appDir, "controllers", "default.go"))
	require.NoError(t, err)

	for _, name := range []string{"index", "response", "SQLFORM", "db"} {
		require.True(t, f.Symbols.Has(name), "missing %q", name)
	}

	// request is injected but unreferenced, so it is retracted.
	require.False(t, f.Symbols.Has("request"))
}

func TestDeclarationOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/a_first.go": `package models

var alpha = later
`,
		"models/b_second.go": `package models

var later = alpha
`,
	})

	e := newEngine(t, root)

	// An earlier model never sees names from a later one.
	first, err := e.Load(filepath.Join(appDir, "models", "a_first.go"))
	require.NoError(t, err)
	require.False(t, first.Symbols.Has("later"))

	second, err := e.Load(filepath.Join(appDir, "models", "b_second.go"))
	require.NoError(t, err)
	require.True(t, second.Symbols.Has("alpha"))
}

func TestRealImportsUntouched(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/db.go": `package models

import "os"

var db = DAL("sqlite://storage.sqlite")
`,
	})

	e := newEngine(t, root)

	f, err := e.Load(filepath.Join(appDir, "models", "db.go"))
	require.NoError(t, err)

	// The genuinely unused real import stays in the table; retraction
	// only ever removes injected names.
	require.True(t, f.Symbols.Has("os"))
}

func TestDependencyLoadedFilesStayUntransformed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/a_data.go": `package models

var records = DAL("sqlite://storage.sqlite")
`,
		"models/b_view.go": `package models

var view = DIV(records)
`,
	})

	testsource.Framework(t, root)

	e := engine.New(searchpath.New())
	transformer := New(e, nil)
	e.RegisterTransform(transformer.Transform)

	// Loading the later model pulls the earlier one in as a dependency;
	// the dependency must not receive its own synthetic scope yet.
	later, err := e.Load(filepath.Join(appDir, "models", "b_view.go"))
	require.NoError(t, err)
	require.True(t, later.Scoped())

	earlier, err := e.Load(filepath.Join(appDir, "models", "a_data.go"))
	require.NoError(t, err)
	require.False(t, earlier.Scoped())
	require.False(t, earlier.Symbols.Has("DAL"))

	// A later top-level transform completes the deferred work.
	earlier, err = transformer.Transform(earlier)
	require.NoError(t, err)
	require.True(t, earlier.Scoped())
	require.True(t, earlier.Symbols.Has("DAL"))
	require.False(t, earlier.Symbols.Has("response"))
}

func TestTransformIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/db.go": `package models

var db = DAL("sqlite://storage.sqlite")
`,
	})

	testsource.Framework(t, root)

	e := engine.New(searchpath.New())
	transformer := New(e, nil)
	e.RegisterTransform(transformer.Transform)

	f, err := e.Load(filepath.Join(appDir, "models", "db.go"))
	require.NoError(t, err)

	names := f.Symbols.Names()

	again, err := transformer.Transform(f)
	require.NoError(t, err)
	require.Equal(t, names, again.Symbols.Names())
}

func TestPlainFilesPassThrough(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"modules/util.go": `package util

func Helper() any { return DIV() }
`,
	})

	e := newEngine(t, root)

	f, err := e.Load(filepath.Join(appDir, "modules", "util.go"))
	require.NoError(t, err)

	// Modules run outside the implicit environment.
	require.Equal(t, source.RolePlain, f.Role)
	require.False(t, f.Scoped())
	require.False(t, f.Symbols.Has("DIV"))
}
