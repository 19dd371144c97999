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

// Package source models a gluon source file as the analyzer sees it:
// a parsed syntax tree together with a mutable top-level symbol table
// and the role the framework assigns to the file.
//
// Gluon executes application files with interpreter semantics, so a
// wildcard (dot) import introduces every top-level name of the imported
// file, not just the exported ones. Symbol tables are built accordingly.
package source
