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

package run

import (
	"testing"

	"fillmore-labs.com/envscope/internal/source"
	"fillmore-labs.com/envscope/internal/synth"
)

func TestRetract(t *testing.T) {
	t.Parallel()

	table := source.Table{
		"db":       {Name: "db", Kind: source.KindVar},
		"response": {Name: "response", Kind: source.KindWildcard, From: "gluon/globals"},
	}

	candidates := synth.Candidates{"response": {}}
	unusedNames := map[string]struct{}{
		"response": {}, // candidate, retracted
		"db":       {}, // not a candidate, kept
		"ghost":    {}, // not even present
	}

	retract(table, candidates, unusedNames)

	if table.Has("response") {
		t.Error("Candidate name was not retracted")
	}

	if !table.Has("db") {
		t.Error("Non-candidate name was retracted")
	}

	// Retracting the same set again must be a no-op.
	retract(table, candidates, unusedNames)

	if !table.Has("db") {
		t.Error("Second retraction removed a kept name")
	}
}
