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

// Package engine is the host analyzer: a syntax-level driver that
// loads gluon source files, builds their symbol tables, applies
// registered transforms, and runs checker passes over the result.
//
// It acts as a custom driver in the sense of
// [golang.org/x/tools/go/analysis]: passes are constructed over single
// parsed files, without type information, and checkers receive the
// file's symbol table through [symtab.Analyzer]'s result slot.
package engine

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"fillmore-labs.com/envscope/internal/classify"
	"fillmore-labs.com/envscope/internal/searchpath"
	"fillmore-labs.com/envscope/internal/source"
)

// ErrImportCycle is returned when wildcard resolution re-enters a file
// that is still being loaded.
var ErrImportCycle = errors.New("import cycle")

// defaultCacheSize bounds the loaded-file cache.
const defaultCacheSize = 256

// Transform rewrites a loaded file before the checker suite sees it.
// It is invoked once per loaded file, including files pulled in only as
// dependencies of others.
type Transform func(*source.File) (*source.File, error)

// Engine loads and analyzes gluon source files.
type Engine struct {
	fset       *token.FileSet
	paths      *searchpath.Paths
	cache      *lru.Cache[string, *source.File]
	loading    map[string]bool
	transforms []Transform
	log        *slog.Logger
}

// Option configures a [New] engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine resolving imports through paths.
func New(paths *searchpath.Paths, opts ...Option) *Engine {
	cache, _ := lru.New[string, *source.File](defaultCacheSize) // only errors on size <= 0

	e := &Engine{
		fset:    token.NewFileSet(),
		paths:   paths,
		cache:   cache,
		loading: make(map[string]bool),
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Fset returns the file set positions are resolved against.
func (e *Engine) Fset() *token.FileSet { return e.fset }

// SearchPaths returns the engine's module resolution path.
func (e *Engine) SearchPaths() *searchpath.Paths { return e.paths }

// RegisterTransform installs a transform invoked once per loaded file.
func (e *Engine) RegisterTransform(t Transform) {
	e.transforms = append(e.transforms, t)
}

// Load parses the file at path, builds its symbol table, and applies
// the registered transforms. Loaded files are cached, so transforms see
// each file exactly once.
func (e *Engine) Load(path string) (*source.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	if f, ok := e.cache.Get(abs); ok {
		return f, nil
	}

	if e.loading[abs] {
		return nil, fmt.Errorf("engine: %s: %w", abs, ErrImportCycle)
	}

	e.loading[abs] = true
	defer delete(e.loading, abs)

	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	syntax, err := source.Parse(e.fset, abs, src)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	f := &source.File{
		Path:    abs,
		Role:    roleOf(abs),
		Syntax:  syntax,
		Symbols: source.NewTable(syntax, e, e.log),
	}

	for _, transform := range e.transforms {
		f, err = transform(f)
		if err != nil {
			return nil, err
		}
	}

	e.cache.Add(abs, f)
	e.log.Debug("loaded", "path", abs, "role", f.Role)

	return f, nil
}

// LoadImport implements [source.Loader]: it resolves an import path
// through the search path and loads the providing file.
func (e *Engine) LoadImport(importPath string) (*source.File, error) {
	path, err := e.paths.Resolve(importPath)
	if err != nil {
		return nil, err
	}

	return e.Load(path)
}

func roleOf(path string) source.Role {
	loc, ok := classify.Classify(path)
	if !ok {
		return source.RolePlain
	}

	return loc.Role()
}
