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

// Package searchpath maintains the module resolution path of the host
// analyzer, extended once per process with the directories gluon's
// import mechanism searches.
package searchpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fillmore-labs.com/envscope/internal/classify"
)

// ErrNotFound is returned when no search path entry provides an import path.
var ErrNotFound = errors.New("import path not found")

// Paths is an ordered module resolution path.
type Paths struct {
	entries  []string
	extended bool
}

// New returns a resolution path with the given initial entries.
func New(entries ...string) *Paths {
	return &Paths{entries: entries}
}

// Extend appends the framework and application directories derived from
// loc: framework internals, bundled third-party libraries, the
// application's custom modules and its declaration directory, and the
// installation root. Applied once per process; later calls are no-ops.
func (p *Paths) Extend(loc classify.Location) {
	if p.extended {
		return
	}

	p.entries = append(p.entries,
		filepath.Join(loc.Root, "gluon"),
		filepath.Join(loc.Root, "site-packages"),
		loc.ModulesDir(),
		loc.ModelsDir(),
		loc.Root,
	)
	p.extended = true
}

// Extended reports whether the one-time extension has been applied.
func (p *Paths) Extended() bool { return p.extended }

// Resolve maps an import path to the first file providing it on the
// search path.
func (p *Paths) Resolve(importPath string) (string, error) {
	rel := filepath.FromSlash(importPath) + ".go"

	for _, dir := range p.entries {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("searchpath: %q: %w", importPath, ErrNotFound)
}
