// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/meta"
)

// GetCommandAction prints the cached, transformed content of one template.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir, name, err := splitDirAndName(cmd)
	if err != nil {
		return err
	}

	cache, err := loadCache(cmd, dir)
	if err != nil {
		return err
	}

	content, err := cache.Require(name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(writer(cmd), content)
	return err
}

// GetCommandBuilder constructs the cli.Command for "get".
func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CacheCommandBuilder{
		Name:      "get",
		Usage:     "print a template",
		UsageText: `tplcache get [dir] <name> [options]`,
		Action:    GetCommandAction,
		Meta:      meta,
	}).Build()
}
