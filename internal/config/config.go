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

package config

// CheckerFlags represents specific checkers.
type CheckerFlags uint8

const (
	// UndeclaredChecker enables reporting of names not defined in the
	// file's scope.
	UndeclaredChecker CheckerFlags = 1 << iota

	// UnusedChecker enables reporting of imported names that are never
	// referenced.
	UnusedChecker
)

// Config represents behavioral options for the engine.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SyntheticScope enables the implicit-environment transform for model
	// and controller files. Disabling it exposes the raw diagnostics.
	SyntheticScope
)

// Checkers is the bitmask of enabled checkers.
type Checkers = BitMask[CheckerFlags]

// DefaultCheckers enables the full checker suite.
func DefaultCheckers() Checkers {
	return NewBitMask(UndeclaredChecker | UnusedChecker)
}

// Behavior is the bitmask of behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior enables the synthetic-scope transform and skips
// generated files.
func DefaultBehavior() Behavior {
	return NewBitMask(SyntheticScope)
}
