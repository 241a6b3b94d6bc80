// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/output"
	"github.com/staranto/tplcache/internal/tplcache"
)

// GlobalFlagsValidator checks the flags shared by every cache command.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.IsSet("ext") {
		opts := tplcache.DefaultOptions()
		opts.Extension = c.String("ext")
		if err := opts.Validate(); err != nil {
			return fmt.Errorf("--ext: %w", err)
		}
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}
