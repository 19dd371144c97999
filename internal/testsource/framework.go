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

package testsource

// frameworkFiles is a stub of the gluon runtime, one file per package
// the synthetic fragment wildcard-imports.
var frameworkFiles = map[string]string{
	"gluon/globals.go": `package globals

type Request struct{ Vars map[string]string }

type Response struct{ View string }

type Session struct{ Data map[string]any }

type Cache struct{}

type Translator struct{}

var (
	request  = &Request{}
	response = &Response{}
	session  = &Session{}
	cache    = &Cache{}
	T        = &Translator{}
)
`,

	"gluon/html.go": `package html

func A(args ...any) any { return nil }

func DIV(args ...any) any { return nil }

func FORM(args ...any) any { return nil }

func SPAN(args ...any) any { return nil }

func URL(args ...any) string { return "" }

func XML(args ...any) any { return nil }
`,

	"gluon/validators.go": `package validators

func IS_NOT_EMPTY() any { return nil }

func IS_IN_DB(args ...any) any { return nil }

func IS_EMAIL() any { return nil }
`,

	"gluon/http.go": `package http

type HTTP struct{ Status int }

func redirect(location string) {}
`,

	"gluon/dal.go": `package dal

func DAL(uri string) any { return nil }

func Field(name string, args ...any) any { return nil }
`,

	"gluon/sqlhtml.go": `package sqlhtml

func SQLFORM(args ...any) any { return nil }

func SQLTABLE(args ...any) any { return nil }
`,

	"gluon/compileapp.go": `package compileapp

func LOAD(args ...any) any { return nil }
`,

	"gluon/languages.go": `package languages

func translate(message string, args ...any) string { return message }
`,

	"gluon/tools.go": `package tools

func Auth(args ...any) any { return nil }

func Crud(args ...any) any { return nil }

func Mail(args ...any) any { return nil }

func Service(args ...any) any { return nil }

func PluginManager(args ...any) any { return nil }
`,
}
