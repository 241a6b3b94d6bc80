// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/meta"
	"github.com/staranto/tplcache/internal/tplcache"
)

// DumpCommandAction prints the cache as a JSON object of name to content,
// optionally narrowed with a gjson path. Dots in template names must be
// escaped in the path, e.g. a\.tpl.
func DumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	cache, err := loadCache(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	raw, err := cache.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if q := cmd.String("query"); q != "" {
		result := gjson.GetBytes(raw, q)
		if !result.Exists() {
			return fmt.Errorf("%w: query %s", tplcache.ErrNotFound, q)
		}
		raw = []byte(result.Raw)
	}

	_, err = fmt.Fprintln(writer(cmd), string(raw))
	return err
}

// DumpCommandBuilder constructs the cli.Command for "dump".
func DumpCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CacheCommandBuilder{
		Name:      "dump",
		Usage:     "print the cache as JSON",
		UsageText: `tplcache dump [dir] [--query path] [options]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "gjson path to select from the dump",
			},
		},
		Action: DumpCommandAction,
		Meta:   meta,
	}).Build()
}
