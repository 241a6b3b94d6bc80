// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"strings"
	texttemplate "text/template"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/tplcache/internal/engine"
	"github.com/staranto/tplcache/internal/meta"
	"github.com/staranto/tplcache/internal/tplcache"
)

// executor is satisfied by both text and html templates.
type executor interface {
	Execute(w io.Writer, data any) error
}

// renderFuncs are available to every rendered template.
func renderFuncs() map[string]any {
	return map[string]any{
		"bytes":   humanBytes,
		"comma":   humanize.Comma,
		"ordinal": humanize.Ordinal,
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"trim":    strings.TrimSpace,
	}
}

// humanBytes formats a size decoded from a YAML or JSON data file.
func humanBytes(v any) (string, error) {
	switch n := v.(type) {
	case int:
		if n >= 0 {
			return humanize.Bytes(uint64(n)), nil
		}
	case int64:
		if n >= 0 {
			return humanize.Bytes(uint64(n)), nil
		}
	case uint64:
		return humanize.Bytes(n), nil
	case float64:
		if n >= 0 {
			return humanize.Bytes(uint64(n)), nil
		}
	}
	return "", fmt.Errorf("bytes: not a non-negative number: %v", v)
}

// RenderCommandAction compiles the templates of a directory and executes one
// of them with the --data document.
func RenderCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir, name, err := splitDirAndName(cmd)
	if err != nil {
		return err
	}

	dir, err = templateDir(cmd, dir)
	if err != nil {
		return err
	}

	opts, err := cacheOptions(cmd)
	if err != nil {
		return err
	}

	data, err := readData(cmd.String("data"))
	if err != nil {
		return err
	}

	if cmd.Bool("html") {
		eng := engine.HTML(htmltemplate.FuncMap(renderFuncs()))
		return render(tplcache.New(eng), dir, name, data, writer(cmd), opts...)
	}
	eng := engine.Text(texttemplate.FuncMap(renderFuncs()))
	return render(tplcache.New(eng), dir, name, data, writer(cmd), opts...)
}

func render[T executor](cache *tplcache.Cache[T], dir, name string, data any, w io.Writer, opts ...tplcache.Option) error {
	if _, err := cache.Load(dir, opts...); err != nil {
		return err
	}

	tmpl, err := cache.Require(name)
	if err != nil {
		return err
	}

	log.Debugf("rendering %s with %T", name, data)
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// readData decodes a YAML or JSON document. An empty path yields nil data.
func readData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return data, nil
}

// RenderCommandBuilder constructs the cli.Command for "render".
func RenderCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CacheCommandBuilder{
		Name:      "render",
		Usage:     "execute a template with data",
		UsageText: `tplcache render [dir] <name> [--data file] [options]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "YAML or JSON file passed to the template",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
			&cli.BoolFlag{
				Name:        "html",
				Usage:       "compile with html/template escaping",
				HideDefault: true,
			},
		},
		Action: RenderCommandAction,
		Meta:   meta,
	}).Build()
}
