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

package analyzer

// Settings represents the configuration options of a [Linter] as
// decoded from a configuration file.
type Settings struct {
	// Undeclared enables undefined-name checks.
	Undeclared *bool `json:"undeclared,omitzero" mapstructure:"undeclared"`
	// Unused enables unused-import checks.
	Unused *bool `json:"unused,omitzero" mapstructure:"unused"`
	// SyntheticScope enables the implicit-environment transform.
	SyntheticScope *bool `json:"synthetic-scope,omitzero" mapstructure:"synthetic-scope"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero" mapstructure:"generated"`
}

// Options converts [Settings] into a list of [Option] for the envscope
// linter. It processes settings and applies them only when explicitly
// set (non-nil).
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Undeclared, WithUndeclared)
	opts = appendOption(opts, s.Unused, WithUnused)
	opts = appendOption(opts, s.SyntheticScope, WithSyntheticScope)
	opts = appendOption(opts, s.Generated, WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
