// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package engine provides compile steps for tplcache caches.
package engine

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/staranto/tplcache/internal/tplcache"
)

// Text parses each file as a text/template named after its store key.
func Text(funcs texttemplate.FuncMap) tplcache.Engine[*texttemplate.Template] {
	return func(name, content string) (*texttemplate.Template, error) {
		tmpl, err := texttemplate.New(name).Funcs(funcs).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template: %w", err)
		}
		return tmpl, nil
	}
}

// HTML parses each file as an html/template named after its store key.
func HTML(funcs htmltemplate.FuncMap) tplcache.Engine[*htmltemplate.Template] {
	return func(name, content string) (*htmltemplate.Template, error) {
		tmpl, err := htmltemplate.New(name).Funcs(funcs).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template: %w", err)
		}
		return tmpl, nil
	}
}

// Lines splits each file into its lines. A trailing newline does not produce
// an empty last line.
func Lines() tplcache.Engine[[]string] {
	return func(_ string, content string) ([]string, error) {
		if content == "" {
			return []string{}, nil
		}
		return strings.Split(strings.TrimSuffix(content, "\n"), "\n"), nil
	}
}
