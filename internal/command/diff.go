// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/differ"
	"github.com/staranto/tplcache/internal/meta"
	"github.com/staranto/tplcache/internal/tplcache"
)

// ErrDiffers is returned by diff when the two template sets are not equal.
var ErrDiffers = errors.New("template sets differ")

// DiffCommandAction loads two directories with the same options and prints
// the differences between them.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <dir> <other>", tplcache.ErrInvalidArgument)
	}

	opts, err := cacheOptions(cmd)
	if err != nil {
		return err
	}

	left, err := tplcache.NewText().Load(args[0], opts...)
	if err != nil {
		return err
	}
	right, err := tplcache.NewText().Load(args[1], opts...)
	if err != nil {
		return err
	}

	result, err := differ.Compare(left.Snapshot(), right.Snapshot(), cmd.Bool("color"))
	if err != nil {
		return err
	}
	if !result.Differs() {
		return nil
	}

	if _, err := fmt.Fprint(writer(cmd), result.Text); err != nil {
		return err
	}
	return fmt.Errorf("%w: %d added, %d removed, %d modified", ErrDiffers,
		len(result.Added), len(result.Removed), len(result.Modified))
}

// DiffCommandBuilder constructs the cli.Command for "diff".
func DiffCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CacheCommandBuilder{
		Name:      "diff",
		Usage:     "compare two template directories",
		UsageText: `tplcache diff <dir> <other> [options]`,
		Action:    DiffCommandAction,
		Meta:      meta,
	}).Build()
}
