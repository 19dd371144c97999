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

// Package classify derives a file's framework role from its location
// inside a gluon installation.
package classify

import (
	"path/filepath"
	"regexp"

	"fillmore-labs.com/envscope/internal/source"
)

// appPattern matches <root>/applications/<app>/<folder>/... with either
// path separator, so Windows paths classify identically.
var appPattern = regexp.MustCompile(`^(.+?)[/\\]applications[/\\]([^/\\]+)[/\\]([^/\\]+)[/\\]`)

// Location describes where a file sits inside a gluon application tree.
type Location struct {
	// Root is the gluon installation root.
	Root string

	// App is the application name.
	App string

	// Folder is the application subfolder containing the file.
	Folder string
}

// Classify matches path against the gluon application layout. The
// second result is false when the file is outside any recognized
// application, in which case the file passes through unmodified.
func Classify(path string) (Location, bool) {
	m := appPattern.FindStringSubmatch(path)
	if m == nil {
		return Location{}, false
	}

	return Location{Root: m[1], App: m[2], Folder: m[3]}, true
}

// Role maps the application subfolder to the file's role: models are
// declarations, controllers are entries, everything else is plain.
func (l Location) Role() source.Role {
	switch l.Folder {
	case "models":
		return source.RoleDeclaration
	case "controllers":
		return source.RoleEntry
	default:
		return source.RolePlain
	}
}

// ModelsDir returns the application's declaration directory.
func (l Location) ModelsDir() string {
	return filepath.Join(l.Root, "applications", l.App, "models")
}

// ModulesDir returns the application's custom-module directory.
func (l Location) ModulesDir() string {
	return filepath.Join(l.Root, "applications", l.App, "modules")
}
