// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/meta"
)

// NsCommandAction lists the namespaces declared in the config file.
func NsCommandAction(ctx context.Context, cmd *cli.Command) error {
	cfg := GetMeta(cmd).Config
	namespaces := cfg.Namespaces()

	rows := make([]map[string]any, 0, len(namespaces))
	for _, name := range cfg.NamespaceNames() {
		rows = append(rows, map[string]any{
			"name": name,
			"path": cfg.ResolvePath(namespaces[name]),
		})
	}

	return emitRows(cmd, rows, []string{"name", "path"})
}

// NsCommandBuilder constructs the cli.Command for "ns".
func NsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ns",
		Usage:     "list configured namespaces",
		UsageText: `tplcache ns [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("ns", meta.Config.Source),
		Action: NsCommandAction,
	}
}
