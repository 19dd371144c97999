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

package classify_test

import (
	"path/filepath"
	"testing"

	. "fillmore-labs.com/envscope/internal/classify"
	"fillmore-labs.com/envscope/internal/source"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want Location
		ok   bool
	}{
		{
			name: "model",
			path: "/srv/web/applications/welcome/models/db.go",
			want: Location{Root: "/srv/web", App: "welcome", Folder: "models"},
			ok:   true,
		},
		{
			name: "controller",
			path: "/srv/web/applications/shop/controllers/default.go",
			want: Location{Root: "/srv/web", App: "shop", Folder: "controllers"},
			ok:   true,
		},
		{
			name: "nested_module",
			path: "/srv/web/applications/shop/modules/util/strings.go",
			want: Location{Root: "/srv/web", App: "shop", Folder: "modules"},
			ok:   true,
		},
		{
			name: "windows_separators",
			path: `C:\srv\applications\shop\models\db.go`,
			want: Location{Root: `C:\srv`, App: "shop", Folder: "models"},
			ok:   true,
		},
		{
			name: "outside_installation",
			path: "/home/alice/scratch/main.go",
			ok:   false,
		},
		{
			name: "applications_is_the_leaf",
			path: "/srv/web/applications/db.go",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Classify(tt.path)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %t, want %t", tt.path, ok, tt.ok)
			}

			if ok && got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		folder string
		want   source.Role
	}{
		{"models", source.RoleDeclaration},
		{"controllers", source.RoleEntry},
		{"modules", source.RolePlain},
		{"views", source.RolePlain},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			t.Parallel()

			loc := Location{Root: "/srv/web", App: "shop", Folder: tt.folder}
			if got := loc.Role(); got != tt.want {
				t.Errorf("Role() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectories(t *testing.T) {
	t.Parallel()

	loc := Location{Root: "/srv/web", App: "shop", Folder: "controllers"}

	if got, want := loc.ModelsDir(), filepath.Join("/srv/web", "applications", "shop", "models"); got != want {
		t.Errorf("ModelsDir() = %q, want %q", got, want)
	}

	if got, want := loc.ModulesDir(), filepath.Join("/srv/web", "applications", "shop", "modules"); got != want {
		t.Errorf("ModulesDir() = %q, want %q", got, want)
	}
}
