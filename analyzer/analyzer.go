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

package analyzer

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/config"
	"fillmore-labs.com/envscope/internal/engine"
	"fillmore-labs.com/envscope/internal/run"
	"fillmore-labs.com/envscope/internal/searchpath"
	"fillmore-labs.com/envscope/internal/undeclared"
	"fillmore-labs.com/envscope/internal/unused"
)

// Public API constants for the envscope linter.
const (
	name = "envscope"
	doc  = `envscope teaches static analysis about gluon's implicit execution environment`
	url  = "https://pkg.go.dev/fillmore-labs.com/envscope"
)

// Linter analyzes gluon application files with the synthetic-scope
// transform applied.
type Linter struct {
	engine      *engine.Engine
	transformer *run.Transformer
	checkers    []*analysis.Analyzer
	behavior    config.Behavior
}

// Diagnostic is a resolved finding, positioned in file coordinates.
type Diagnostic struct {
	// Path is the file the finding is in.
	Path string

	// Line and Column locate the finding, 1-based.
	Line, Column int

	// Category names the check that produced the finding.
	Category string

	// Message is the human-readable description.
	Message string
}

// New creates a [Linter]. It allows for programmatic configuration
// using [Option]; for command-line use see cmd/envscope.
func New(opts ...Option) *Linter {
	s := defaultSettings()
	Options(opts).apply(s)

	e := engine.New(searchpath.New(), engine.WithLogger(s.log))

	l := &Linter{engine: e, behavior: s.behavior}

	if s.behavior.Enabled(config.SyntheticScope) {
		l.transformer = run.New(e, s.log)
		e.RegisterTransform(l.transformer.Transform)
	}

	if s.checkers.Enabled(config.UndeclaredChecker) {
		l.checkers = append(l.checkers, undeclared.Analyzer)
	}

	if s.checkers.Enabled(config.UnusedChecker) {
		l.checkers = append(l.checkers, unused.Analyzer)
	}

	return l
}

// Lint loads each file and runs the checker suite over it.
//
// Files are transformed before checking. A file that entered the cache
// as a dependency of an earlier file gets its top-level transformation
// here, when it is requested in its own right.
func (l *Linter) Lint(paths ...string) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	for _, path := range paths {
		f, err := l.engine.Load(path)
		if err != nil {
			return nil, err
		}

		if l.transformer != nil {
			f, err = l.transformer.Transform(f)
			if err != nil {
				return nil, err
			}
		}

		found, err := l.engine.Check(f, l.checkers, l.behavior)
		if err != nil {
			return nil, err
		}

		for _, d := range found {
			pos := l.engine.Fset().Position(d.Pos)
			diagnostics = append(diagnostics, Diagnostic{
				Path:     pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
				Category: d.Category,
				Message:  d.Message,
			})
		}
	}

	return diagnostics, nil
}
