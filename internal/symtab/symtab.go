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

// Package symtab exposes the analyzed file's symbol table to checkers
// through the [analysis.Pass] result mechanism.
//
// The table is computed by the envscope driver while loading the file,
// before checkers run, so the marker analyzer itself cannot be executed.
package symtab

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/source"
)

// ErrDriverOnly is returned when the marker analyzer is run outside the
// envscope driver.
var ErrDriverOnly = errors.New("symbol table must be supplied by the envscope driver")

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a pass constructed without the driver's
// ResultOf entry.
var ErrResultMissing = errors.New("analyzer result missing")

// Analyzer is a marker pass whose result is the top-level symbol table
// of the analyzed file, as [source.Table].
var Analyzer = &analysis.Analyzer{
	Name:       "envscope_symtab",
	Doc:        "provides the top-level symbol table of a gluon source file",
	ResultType: reflect.TypeFor[source.Table](),
	Run: func(*analysis.Pass) (any, error) {
		return nil, ErrDriverOnly
	},
}

// FromPass retrieves the symbol table the driver stored for this pass.
func FromPass(p *analysis.Pass) (source.Table, error) {
	t, ok := p.ResultOf[Analyzer].(source.Table)
	if !ok {
		return nil, fmt.Errorf("%s: %s %w", p.Analyzer.Name, Analyzer.Name, ErrResultMissing)
	}

	return t, nil
}
