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

import (
	"log/slog"

	"fillmore-labs.com/envscope/internal/config"
)

// settings collect the configuration a [New] linter is built from.
type settings struct {
	checkers config.Checkers
	behavior config.Behavior
	log      *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		checkers: config.DefaultCheckers(),
		behavior: config.DefaultBehavior(),
		log:      slog.Default(),
	}
}

// Option configures specific behavior of a [New] envscope linter.
type Option interface {
	apply(s *settings)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(s *settings) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(s)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithUndeclared is an [Option] to configure whether undefined-name checks are enabled.
func WithUndeclared(undeclared bool) Option { return undeclaredOption{undeclared: undeclared} }

type undeclaredOption struct{ undeclared bool }

func (o undeclaredOption) apply(s *settings) {
	s.checkers.Set(config.UndeclaredChecker, o.undeclared)
}

func (o undeclaredOption) LogAttr() slog.Attr {
	return slog.Bool("undeclared", o.undeclared)
}

// WithUnused is an [Option] to configure whether unused-import checks are enabled.
func WithUnused(unused bool) Option { return unusedOption{unused: unused} }

type unusedOption struct{ unused bool }

func (o unusedOption) apply(s *settings) {
	s.checkers.Set(config.UnusedChecker, o.unused)
}

func (o unusedOption) LogAttr() slog.Attr {
	return slog.Bool("unused", o.unused)
}

// WithSyntheticScope is an [Option] to configure whether model and
// controller files receive their implicit environment before checking.
// Disabling it exposes the raw diagnostics.
func WithSyntheticScope(scope bool) Option { return scopeOption{scope: scope} }

type scopeOption struct{ scope bool }

func (o scopeOption) apply(s *settings) {
	s.behavior.Set(config.SyntheticScope, o.scope)
}

func (o scopeOption) LogAttr() slog.Attr {
	return slog.Bool("synthetic-scope", o.scope)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(s *settings) {
	s.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithLogger is an [Option] to set the logger for engine and transform debugging.
func WithLogger(log *slog.Logger) Option { return loggerOption{log: log} }

type loggerOption struct{ log *slog.Logger }

func (o loggerOption) apply(s *settings) {
	if o.log != nil {
		s.log = o.log
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("custom-logger", o.log != nil)
}
