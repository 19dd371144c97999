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

package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/config"
	. "fillmore-labs.com/envscope/internal/engine"
	"fillmore-labs.com/envscope/internal/searchpath"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/testsource"
	"fillmore-labs.com/envscope/internal/undeclared"
)

func writeFile(tb testing.TB, path, content string) string {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("Can't create %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("Can't write %s: %v", path, err)
	}

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := testsource.App(t, root, "shop", map[string]string{
		"models/db.go": "package models\n\nvar db = 1\n",
	})

	e := New(searchpath.New())

	f, err := e.Load(filepath.Join(appDir, "models", "db.go"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if f.Role != source.RoleDeclaration {
		t.Errorf("Role = %v, want %v", f.Role, source.RoleDeclaration)
	}

	if !f.Symbols.Has("db") {
		t.Error("Symbol table is missing db")
	}
}

func TestLoadCached(t *testing.T) {
	t.Parallel()

	path := writeFile(t, filepath.Join(t.TempDir(), "plain.go"), "package p\n\nvar x = 1\n")

	e := New(searchpath.New())

	calls := 0
	e.RegisterTransform(func(f *source.File) (*source.File, error) {
		calls++

		return f, nil
	})

	first, err := e.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	second, err := e.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if first != second {
		t.Error("Second load returned a different file")
	}

	if calls != 1 {
		t.Errorf("Transform ran %d times, want 1", calls)
	}
}

func TestLoadImport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "util.go"), "package p\n\nfunc Helper() {}\n")

	e := New(searchpath.New(dir))

	f, err := e.LoadImport("util")
	if err != nil {
		t.Fatalf("LoadImport() failed: %v", err)
	}

	if !f.Symbols.Has("Helper") {
		t.Error("Symbol table is missing Helper")
	}
}

func TestLoadWildcardCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package a\n\nimport . \"b\"\n\nvar A = 1\n")
	writeFile(t, filepath.Join(dir, "b.go"), "package b\n\nimport . \"a\"\n\nvar B = 1\n")

	e := New(searchpath.New(dir))

	// Mutually wildcard-importing files must terminate: the back edge is
	// dropped, everything else is still collected.
	f, err := e.LoadImport("a")
	if err != nil {
		t.Fatalf("LoadImport() failed: %v", err)
	}

	for _, name := range []string{"A", "B"} {
		if !f.Symbols.Has(name) {
			t.Errorf("Symbol table is missing %q", name)
		}
	}
}

func TestCheckSkipsOptedOutFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		behavior config.Behavior
		want     int
	}{
		{
			name:     "reported",
			src:      "package p\n\nfunc f() { missing() }\n",
			behavior: config.DefaultBehavior(),
			want:     1,
		},
		{
			name:     "generated_skipped",
			src:      "// Code generated by gluon-gen. DO NOT EDIT.\n\npackage p\n\nfunc f() { missing() }\n",
			behavior: config.DefaultBehavior(),
			want:     0,
		},
		{
			name:     "generated_included_on_request",
			src:      "// Code generated by gluon-gen. DO NOT EDIT.\n\npackage p\n\nfunc f() { missing() }\n",
			behavior: config.NewBitMask(config.SyntheticScope, config.IncludeGenerated),
			want:     1,
		},
		{
			name:     "nolint_doc_comment_skips_the_file",
			src:      "//nolint:envscope\npackage p\n\nfunc f() { missing() }\n",
			behavior: config.DefaultBehavior(),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, filepath.Join(t.TempDir(), "plain.go"), tt.src)

			e := New(searchpath.New())

			f, err := e.Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}

			diagnostics, err := e.Check(f, []*analysis.Analyzer{undeclared.Analyzer}, tt.behavior)
			if err != nil {
				t.Fatalf("Check() failed: %v", err)
			}

			if len(diagnostics) != tt.want {
				t.Errorf("Got %d diagnostics, want %d: %+v", len(diagnostics), tt.want, diagnostics)
			}
		})
	}
}
