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

// Package sniff observes which injected names the unused-import checker
// would flag, without surfacing its diagnostics to the user.
//
// It drives the checker in an isolated, non-reporting [analysis.Pass]
// and recovers symbol names from the diagnostic messages. The message
// shapes are a contract with [unused]; an unused-import message
// matching neither shape means the two packages are out of sync, which
// must fail loudly rather than silently mis-extract a name.
package sniff

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"regexp"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/symtab"
	"fillmore-labs.com/envscope/internal/synth"
	"fillmore-labs.com/envscope/internal/unused"
)

// ErrMessageFormat is returned when an unused-import diagnostic does
// not match either expected message shape.
var ErrMessageFormat = errors.New("unparsable unused-import message")

var (
	aliasPattern    = regexp.MustCompile(`^(.+?) imported from `)
	plainPattern    = regexp.MustCompile(`^import (.+)$`)
	wildcardPattern = regexp.MustCompile(`^unused (.+?) from wildcard import of `)
)

// FindUnused runs the unused-import checker over the merged file and
// returns the candidate names it flagged.
//
// Diagnostics about names outside candidates are discarded: a genuinely
// unused real import is not a candidate, so it is neither retracted
// here nor hidden from the host analyzer's own pass. The pass is
// ephemeral; FindUnused has no side effects beyond it.
func FindUnused(fset *token.FileSet, merged *source.File, candidates synth.Candidates) (map[string]struct{}, error) {
	unusedNames := make(map[string]struct{})

	var contractErr error

	pass := &analysis.Pass{
		Analyzer: unused.Analyzer,
		Fset:     fset,
		Files:    []*ast.File{merged.Syntax},
		ResultOf: map[*analysis.Analyzer]any{symtab.Analyzer: merged.Symbols},
		Report: func(d analysis.Diagnostic) {
			name, ok, err := extract(d)
			if err != nil {
				contractErr = errors.Join(contractErr, err)

				return
			}

			if !ok {
				return
			}

			if _, wanted := candidates[name]; wanted {
				unusedNames[name] = struct{}{}
			}
		},
	}

	if _, err := unused.Analyzer.Run(pass); err != nil {
		return nil, fmt.Errorf("sniff: %w", err)
	}

	if contractErr != nil {
		return nil, contractErr
	}

	return unusedNames, nil
}

// extract recovers the symbol name a diagnostic is about.
func extract(d analysis.Diagnostic) (name string, ok bool, err error) {
	switch d.Category {
	case unused.CategoryWildcard:
		if m := wildcardPattern.FindStringSubmatch(d.Message); m != nil {
			return m[1], true, nil
		}

		// Free-form wildcard arguments are accepted verbatim as a name.
		return d.Message, true, nil

	case unused.CategoryImport:
		if m := aliasPattern.FindStringSubmatch(d.Message); m != nil {
			return m[1], true, nil
		}

		if m := plainPattern.FindStringSubmatch(d.Message); m != nil {
			return m[1], true, nil
		}

		return "", false, fmt.Errorf("sniff: %q: %w", d.Message, ErrMessageFormat)

	default:
		// Not a diagnostic kind the sniffer is interested in.
		return "", false, nil
	}
}
