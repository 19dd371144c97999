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

// Package run orchestrates the synthetic-scope pipeline: classify the
// file, synthesize and merge its implicit environment, sniff out which
// injected names go unused, and retract them before the host analyzer's
// own checks see the symbol table.
package run

import (
	"log/slog"
	"path/filepath"
	"strings"

	"fillmore-labs.com/envscope/internal/classify"
	"fillmore-labs.com/envscope/internal/engine"
	"fillmore-labs.com/envscope/internal/siblings"
	"fillmore-labs.com/envscope/internal/sniff"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/synth"
)

// Transformer rewrites symbol tables of model and controller files so
// the host analyzer neither reports injected names as undefined nor
// unreferenced injected names as unused.
type Transformer struct {
	engine *engine.Engine
	orders *siblings.Cache
	log    *slog.Logger

	// depth > 0 means a transformation is in flight and any file loaded
	// meanwhile was pulled in as a dependency, not requested top-level.
	depth int
}

// New creates a transformer bound to the engine whose loads it will be
// registered on.
func New(e *engine.Engine, log *slog.Logger) *Transformer {
	if log == nil {
		log = slog.Default()
	}

	return &Transformer{engine: e, orders: siblings.NewCache(), log: log}
}

// Transform implements [engine.Transform].
//
// Files outside a recognized application layout pass through unmodified.
// Files loaded while another transformation is in flight pass through
// unmodified as well: compiling a synthetic fragment loads sibling
// models, and re-synthesizing those would recurse without bound.
func (t *Transformer) Transform(f *source.File) (*source.File, error) {
	if t.depth > 0 {
		return f, nil
	}

	loc, ok := classify.Classify(f.Path)
	if !ok {
		return f, nil
	}

	t.engine.SearchPaths().Extend(loc)

	if f.Role == source.RolePlain || f.Scoped() {
		return f, nil
	}

	t.depth++
	defer func() { t.depth-- }()

	order, err := t.orders.Order(loc.ModelsDir())
	if err != nil {
		return nil, err
	}

	self := strings.TrimSuffix(filepath.Base(f.Path), ".go")
	fragment := synth.Fragment(f.Role, order, self)

	synthetic, err := synth.Compile(t.engine.Fset(), fragment, t.engine, t.log)
	if err != nil {
		return nil, err
	}

	candidates := synth.Merge(f, synthetic)

	unusedNames, err := sniff.FindUnused(t.engine.Fset(), f, candidates)
	if err != nil {
		return nil, err
	}

	retract(f.Symbols, candidates, unusedNames)
	f.MarkScoped()

	t.log.Debug("transformed",
		"path", f.Path,
		"role", f.Role,
		"injected", len(candidates),
		"retracted", len(unusedNames),
	)

	return f, nil
}

// retract removes every name that is both a candidate and unused.
// Membership is checked before deletion, so retracting twice is a no-op.
func retract(table source.Table, candidates synth.Candidates, unusedNames map[string]struct{}) {
	for name := range unusedNames {
		if _, ok := candidates[name]; !ok {
			continue
		}

		if !table.Has(name) {
			continue // already retracted
		}

		table.Delete(name)
	}
}
