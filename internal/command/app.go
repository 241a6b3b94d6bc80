// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/config"
	"github.com/staranto/tplcache/internal/meta"
	"github.com/staranto/tplcache/internal/tplcache"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the tplcache
	// subcommand and also represents the namespace key used for flag defaults.
	// arg[1] could be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is not an error, every value has a default.
	cfg, err := config.Load(ns)
	if err != nil {
		log.WithError(err).Debug("config not loaded")
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Registry:    tplcache.NewTextRegistry(),
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "tplcache",
		Usage: "Template Cache",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tplcache version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		CompletionCommandBuilder(app, meta),
		DiffCommandBuilder(app, meta),
		DumpCommandBuilder(app, meta),
		GetCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		NsCommandBuilder(app, meta),
		RenderCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
