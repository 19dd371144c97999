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

// Package siblings computes the evaluation order of an application's
// declaration files: case-sensitive lexicographic order of their base
// names, the order gluon executes model files in.
package siblings

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Cache holds one sibling order per declaration directory. The order is
// computed once per analysis unit; the directory changing mid-run is
// out of scope.
type Cache struct {
	orders map[string][]string
}

// NewCache returns an empty order cache.
func NewCache() *Cache {
	return &Cache{orders: make(map[string][]string)}
}

// Order lists the top-level declaration files of modelsDir, base names
// with the extension stripped, in evaluation order. The listing is
// cached; a missing directory surfaces as a filesystem error.
func (c *Cache) Order(modelsDir string) ([]string, error) {
	if order, ok := c.orders[modelsDir]; ok {
		return order, nil
	}

	entries, err := os.ReadDir(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("siblings: listing declarations: %w", err)
	}

	var order []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue // only top-level models are evaluated
		}

		name, ok := strings.CutSuffix(entry.Name(), ".go")
		if !ok {
			continue
		}

		order = append(order, name)
	}

	slices.Sort(order)
	c.orders[modelsDir] = order

	return order, nil
}
