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

// Package analyzer is the public surface of envscope.
//
// # Overview
//
// Envscope analyzes gluon application files, which execute in an
// environment the framework populates at run time: predefined objects
// (request, response, session, cache, T and the core API surface) plus
// every top-level name declared by the application's model files,
// evaluated in lexicographic order.
//
// A plain analyzer sees none of that. Model and controller files light
// up with "undefined name" diagnostics for names the framework injects.
// Declaring those names synthetically quiets the noise but trades one
// flood for another: every file that leaves them unused collects
// "unused import" diagnostics instead.
//
// Envscope suppresses both classes of false positives. Before checking
// a model or controller, it merges a synthetic scope describing the
// implicit environment into the file's symbol table, runs the
// unused-import checker in an isolated pass to discover which injected
// names the file never references, and retracts exactly those. Real
// declarations and genuinely unused real imports are untouched.
//
// # Example
//
//	l := analyzer.New(analyzer.WithGenerated(true))
//
//	diagnostics, err := l.Lint("applications/myapp/controllers/default.go")
package analyzer
