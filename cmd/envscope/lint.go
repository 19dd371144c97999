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

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fillmore-labs.com/envscope/analyzer"
)

// lintCommand holds the flags for the lint command.
type lintCommand struct {
	configFile string
	noColor    bool
	verbose    bool
}

func newLintCommand() *cobra.Command {
	c := &lintCommand{}

	cmd := &cobra.Command{
		Use:   "lint [files or directories...]",
		Short: "Analyze gluon application files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}

	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "config file (default .envscope.yaml in the working directory)")
	cmd.Flags().BoolVar(&c.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func (c *lintCommand) run(cmd *cobra.Command, args []string) error {
	settings, err := c.loadSettings()
	if err != nil {
		return err
	}

	opts := analyzer.Options(settings.Options())
	opts = append(opts, analyzer.WithLogger(c.newLogger()))

	files, err := expand(args)
	if err != nil {
		return err
	}

	diagnostics, err := analyzer.New(opts).Lint(files...)
	if err != nil {
		return err
	}

	c.print(cmd.OutOrStdout(), diagnostics)

	if n := len(diagnostics); n > 0 {
		return fmt.Errorf("%d findings", n)
	}

	return nil
}

func (c *lintCommand) loadSettings() (analyzer.Settings, error) {
	v := viper.New()

	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
	} else {
		v.SetConfigName(".envscope")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.configFile == "" && errors.As(err, &notFound) {
			return analyzer.Settings{}, nil // optional config
		}

		return analyzer.Settings{}, err
	}

	var s analyzer.Settings
	if err := v.Unmarshal(&s); err != nil {
		return analyzer.Settings{}, fmt.Errorf("decoding config: %w", err)
	}

	return s, nil
}

func (c *lintCommand) newLogger() *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (c *lintCommand) print(w io.Writer, diagnostics []analyzer.Diagnostic) {
	position := color.New(color.Bold)
	category := color.New(color.FgYellow)

	if c.noColor {
		position.DisableColor()
		category.DisableColor()
	}

	for _, d := range diagnostics {
		fmt.Fprintf(w, "%s %s %s\n",
			position.Sprintf("%s:%d:%d:", d.Path, d.Line, d.Column),
			category.Sprintf("[%s]", d.Category),
			d.Message,
		)
	}
}

// expand resolves arguments to a sorted list of source files,
// descending into directories.
func expand(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !entry.IsDir() && strings.HasSuffix(path, ".go") {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}
