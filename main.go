// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/tplcache/internal/command"
	"github.com/staranto/tplcache/internal/config"
	mylog "github.com/staranto/tplcache/internal/log"
	"github.com/staranto/tplcache/internal/tplcache"
	"github.com/staranto/tplcache/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		cfg, _ := config.Load(args[1])
		args = mangleArguments(args, cfg)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, tplcache.ErrNotFound) {
			return 3
		}
		return 2
	}

	return 0
}

// mangleArguments expands an @set argument into the flags configured under
// <command>.<set>. Without an @set the "defaults" set is used, if present.
func mangleArguments(args []string, cfg config.Type) []string {
	// Short-circuit for --help/-h.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return args
		}
	}

	idx := 2
	set := "defaults"
	working := append([]string{}, args...)

	// See if there is a @set specified. If so, that becomes the insertion point
	// and the @set entry is removed from args.
	for i, a := range working[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			working = append(working[:idx], working[idx+1:]...)
			break
		}
	}

	cfg.Namespace = ""
	setArgs, _ := cfg.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		working = append(working[:idx], append(parts, working[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, working)
	return working
}
