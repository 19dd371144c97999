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

// Package testsource builds gluon installation fixtures for tests: a
// stub framework runtime and application trees with model, controller,
// and module files.
package testsource

import (
	"os"
	"path/filepath"
	"testing"
)

// Framework writes a minimal gluon runtime under root, enough for the
// synthetic fragment's wildcard imports to resolve.
func Framework(tb testing.TB, root string) {
	tb.Helper()

	write(tb, root, frameworkFiles)
}

// App writes application files under root/applications/<app> and
// returns the application directory. Keys are app-relative paths like
// "models/db.go". The models directory always exists, so controller-only
// fixtures stay valid.
func App(tb testing.TB, root, app string, files map[string]string) string {
	tb.Helper()

	appDir := filepath.Join(root, "applications", app)

	if err := os.MkdirAll(filepath.Join(appDir, "models"), 0o755); err != nil {
		tb.Fatalf("Can't create models directory: %v", err)
	}

	write(tb, appDir, files)

	return appDir
}

func write(tb testing.TB, base string, files map[string]string) {
	tb.Helper()

	for rel, content := range files {
		path := filepath.Join(base, filepath.FromSlash(rel))

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("Can't create %s: %v", filepath.Dir(path), err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			tb.Fatalf("Can't write %s: %v", path, err)
		}
	}
}
