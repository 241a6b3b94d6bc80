// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// NewCacheFlags returns the flags that shape how a template directory is
// read. They are resolved against the config namespace at action time, see
// cacheOptions.
func NewCacheFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:  "autocrlf",
			Usage: "normalize CRLF line endings to LF",
			Value: true,
		},
		&cli.StringFlag{
			Name:    "ext",
			Aliases: []string{"e"},
			Usage:   "template file extension",
			Value:   ".tpl",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "namespace",
			Aliases: []string{"n"},
			Usage:   "config namespace to read options and path from",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TPLCACHE_NAMESPACE"),
			),
		},
		&cli.BoolFlag{
			Name:        "recursive",
			Aliases:     []string{"r"},
			Usage:       "descend into subdirectories",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "slim",
			Usage:       "strip newlines and the indentation following them",
			HideDefault: true,
		},
	}
}

// NewGlobalFlags returns the output flags. params[0] is the command name and
// params[1] the config file, both used to look up defaults.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	ns, source := params[0], ""
	if len(params) > 1 {
		source = params[1]
	}

	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(source)),
				yaml.YAML("color", altsrc.StringSourcer(source)),
			),
			Value: isTerminal(os.Stdout),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(source)),
				yaml.YAML("output", altsrc.StringSourcer(source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(source)),
				yaml.YAML("titles", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
	}

	return
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
