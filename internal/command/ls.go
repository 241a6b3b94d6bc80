// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/engine"
	"github.com/staranto/tplcache/internal/meta"
)

var lsKeys = []string{"name", "size", "bytes", "lines"}

// LsCommandAction lists the templates of a directory, one row per template.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	cache, err := loadCache(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	snapshot := cache.Snapshot()
	rows := make([]map[string]any, 0, len(snapshot))
	for _, name := range cache.Names() {
		rows = append(rows, templateRow(name, snapshot[name]))
	}

	return emitRows(cmd, rows, lsKeys)
}

// templateRow describes one cached template.
func templateRow(name, content string) map[string]any {
	// Lines never fails.
	lines, _ := engine.Lines()(name, content)

	return map[string]any{
		"name":  name,
		"bytes": len(content),
		"size":  humanize.Bytes(uint64(len(content))),
		"lines": len(lines),
	}
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CacheCommandBuilder{
		Name:      "ls",
		Usage:     "list templates",
		UsageText: `tplcache ls [dir] [options]`,
		Action:    LsCommandAction,
		Meta:      meta,
	}).Build()
}
