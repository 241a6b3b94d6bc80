// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/config"
	"github.com/staranto/tplcache/internal/meta"
	"github.com/staranto/tplcache/internal/output"
	"github.com/staranto/tplcache/internal/tplcache"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CacheCommandBuilder constructs a cli.Command for the subcommands that read a
// template directory (ls, get, render, dump, diff) using a consistent pattern.
// The builder wires metadata, appends the cache and output flags, and sets up
// validators.
type CacheCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (ccb *CacheCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, ccb.Flags...)
	flags = append(flags, NewCacheFlags()...)
	flags = append(flags, NewGlobalFlags(ccb.Name, ccb.Meta.Config.Source)...)

	return &cli.Command{
		Name:      ccb.Name,
		Usage:     ccb.Usage,
		UsageText: ccb.UsageText,
		Metadata: map[string]any{
			"meta": ccb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if args := GetMeta(c).Args; len(args) > 1 {
				log.Debugf("Executing action for %v", args[1:])
			}
			return ccb.Action(ctx, c)
		},
	}
}

// namespacedConfig returns the config scoped to the --namespace flag.
func namespacedConfig(cmd *cli.Command) config.Type {
	cfg := GetMeta(cmd).Config
	cfg.Namespace = cmd.String("namespace")
	return cfg
}

// cacheOptions resolves the cache options: config values for the namespace
// first, then any flag given on the command line.
func cacheOptions(cmd *cli.Command) ([]tplcache.Option, error) {
	opts, err := namespacedConfig(cmd).CacheOptions()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("ext") {
		opts = append(opts, tplcache.WithExtension(cmd.String("ext")))
	}
	if cmd.IsSet("recursive") {
		opts = append(opts, tplcache.WithRecursive(cmd.Bool("recursive")))
	}
	if cmd.IsSet("autocrlf") {
		opts = append(opts, tplcache.WithAutoCRLF(cmd.Bool("autocrlf")))
	}
	if cmd.IsSet("slim") {
		opts = append(opts, tplcache.WithSlim(cmd.Bool("slim")))
	}

	return opts, nil
}

// templateDir returns dir when given, otherwise the path configured for the
// namespace, otherwise the starting directory.
func templateDir(cmd *cli.Command, dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	cfg := namespacedConfig(cmd)
	p, err := cfg.GetString("path", "")
	if err != nil {
		return "", fmt.Errorf("config key path: %w", err)
	}
	if p != "" {
		return cfg.ResolvePath(p), nil
	}

	if sd := GetMeta(cmd).StartingDir; sd != "" {
		return sd, nil
	}
	return os.Getwd()
}

// loadCache loads dir into the registry cache of the current namespace.
func loadCache(cmd *cli.Command, dir string) (*tplcache.Cache[string], error) {
	m := GetMeta(cmd)
	if m.Registry == nil {
		return nil, fmt.Errorf("no template registry configured")
	}

	dir, err := templateDir(cmd, dir)
	if err != nil {
		return nil, err
	}

	opts, err := cacheOptions(cmd)
	if err != nil {
		return nil, err
	}

	ns := cmd.String("namespace")
	log.Debugf("loading namespace %q from %s", ns, dir)
	return m.Registry.Namespace(ns).Load(dir, opts...)
}

// outputFormat builds the output.Format from flags and the config colors.
func outputFormat(cmd *cli.Command) output.Format {
	cfg := GetMeta(cmd).Config
	colors := output.DefaultColors
	colors.Title, _ = cfg.GetString("colors.title", colors.Title)
	colors.Even, _ = cfg.GetString("colors.even", colors.Even)
	colors.Odd, _ = cfg.GetString("colors.odd", colors.Odd)
	padding, _ := cfg.GetInt("padding", 1)

	return output.Format{
		Output:  cmd.String("output"),
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Colors:  colors,
		Padding: padding,
	}
}

// emitRows marshals rows and passes them to the common output routine.
func emitRows(cmd *cli.Command, rows []map[string]any, keys []string) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	return output.Spit(raw, keys, outputFormat(cmd), writer(cmd))
}

// writer returns the root command's writer, stdout when unset.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// splitDirAndName reads the optional leading directory and the required
// template name from the positional args.
func splitDirAndName(cmd *cli.Command) (dir, name string, err error) {
	args := cmd.Args().Slice()
	switch len(args) {
	case 1:
		return "", args[0], nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("%w: expected [dir] <name>", tplcache.ErrInvalidArgument)
	}
}
