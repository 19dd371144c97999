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

package engine

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/astutil"
	"fillmore-labs.com/envscope/internal/config"
	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/symtab"
)

// Check runs the checkers over a loaded file and collects their
// diagnostics. Generated files and files with a //nolint doc comment
// are skipped according to behavior.
func (e *Engine) Check(f *source.File, checkers []*analysis.Analyzer, behavior config.Behavior) ([]analysis.Diagnostic, error) {
	currentFile := astutil.NewCurrentFile(e.fset, f.Syntax)
	if !currentFile.Valid() {
		return nil, fmt.Errorf("engine: %s: no file info", f.Path)
	}

	if currentFile.Generated() && !behavior.Enabled(config.IncludeGenerated) {
		return nil, nil
	}

	if astutil.SkipFile(f.Syntax) {
		return nil, nil
	}

	var diagnostics []analysis.Diagnostic

	for _, checker := range checkers {
		pass := &analysis.Pass{
			Analyzer: checker,
			Fset:     e.fset,
			Files:    []*ast.File{f.Syntax},
			ResultOf: map[*analysis.Analyzer]any{symtab.Analyzer: f.Symbols},
			Report: func(d analysis.Diagnostic) {
				diagnostics = append(diagnostics, d)
			},
		}

		if _, err := checker.Run(pass); err != nil {
			return nil, fmt.Errorf("engine: %s: %w", checker.Name, err)
		}
	}

	return diagnostics, nil
}
