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

// Package synth builds the synthetic scope standing in for gluon's
// implicit execution environment: a generated, never-persisted source
// fragment whose top-level names are merged into a real file's symbol
// table before analysis.
package synth

import (
	"fmt"
	"go/token"
	"log/slog"
	"strings"

	"fillmore-labs.com/envscope/internal/source"
)

// predefined declares the environment every model and controller
// receives. This mirrors the environment gluon's compileapp builds at
// run time; the text is invariant, not data-driven.
const predefined = `package scope

import (
	. "gluon/globals"
	. "gluon/html"
	. "gluon/validators"
	. "gluon/http"
	. "gluon/dal"
	. "gluon/sqlhtml"
	. "gluon/compileapp"
	. "gluon/languages"
	. "gluon/tools"
)
`

// Fragment renders the synthetic source describing the implicit
// environment of a file with the given role.
//
// Declaration files see only siblings preceding self in evaluation
// order; entry files see every declaration file. The output is
// deterministic: identical inputs yield byte-identical text.
func Fragment(role source.Role, order []string, self string) string {
	var b strings.Builder
	b.WriteString(predefined)

	switch role {
	case source.RoleDeclaration:
		for _, name := range order {
			if name == self {
				break
			}

			fmt.Fprintf(&b, "\nimport . %q\n", name)
		}

	case source.RoleEntry:
		for _, name := range order {
			fmt.Fprintf(&b, "\nimport . %q\n", name)
		}

	case source.RolePlain: // no implicit environment
	}

	return b.String()
}

// Compile parses a fragment and builds its symbol table, which becomes
// the source of truth for which names were injected.
//
// Resolving the fragment's wildcard imports loads siblings through the
// host analyzer, re-entering its transform hook; the orchestrator's
// guard must already be held so those loads pass through untouched.
func Compile(fset *token.FileSet, fragment string, loader source.Loader, log *slog.Logger) (*source.File, error) {
	syntax, err := source.Parse(fset, "scope.go", []byte(fragment))
	if err != nil {
		return nil, fmt.Errorf("synth: compiling fragment: %w", err)
	}

	return &source.File{
		Role:    source.RolePlain,
		Syntax:  syntax,
		Symbols: source.NewTable(syntax, loader, log),
	}, nil
}

// Candidates is the set of names introduced into a real file solely by
// scope synthesis, the only names eligible for later retraction.
type Candidates map[string]struct{}

// Merge copies the synthetic file's top-level names into the real
// file's symbol table and returns the names actually inserted.
//
// A name the real file declares itself is left alone and is not a
// candidate: real declarations win, so user code can never be retracted.
func Merge(real, synthetic *source.File) Candidates {
	candidates := make(Candidates, len(synthetic.Symbols))

	for name, entry := range synthetic.Symbols {
		if real.Symbols.Has(name) {
			continue
		}

		real.Symbols[name] = entry
		candidates[name] = struct{}{}
	}

	return candidates
}
