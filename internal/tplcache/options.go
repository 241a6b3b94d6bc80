// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"fmt"
	"strings"
)

// DefaultExtension is the file suffix used when none is configured.
const DefaultExtension = ".tpl"

// Options controls what Load reads and how contents are transformed.
type Options struct {
	// Extension filters loaded files and is appended to lookup names that
	// lack it. A missing leading dot is implied.
	Extension string `json:"extension" yaml:"extension"`

	// Recursive descends into subdirectories of the base path.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// AutoCRLF converts CRLF line endings to LF before any other pass.
	AutoCRLF bool `json:"autocrlf" yaml:"autocrlf"`

	// Slim collapses newlines and their indentation; see Slim.
	Slim bool `json:"slim" yaml:"slim"`
}

// DefaultOptions returns the options used for any setting a caller does not
// override.
func DefaultOptions() Options {
	return Options{
		Extension: DefaultExtension,
		Recursive: false,
		AutoCRLF:  true,
		Slim:      false,
	}
}

// Validate rejects options that cannot describe a file suffix.
func (o Options) Validate() error {
	ext := strings.TrimPrefix(o.Extension, ".")
	if ext == "" {
		return fmt.Errorf("%w: empty extension", ErrInvalidArgument)
	}
	if strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("%w: extension %q contains a path separator", ErrInvalidArgument, o.Extension)
	}
	return nil
}

// Option overrides one setting on top of the defaults.
type Option func(*Options)

// WithExtension sets the file suffix.
// Default: ".tpl"
func WithExtension(ext string) Option {
	return func(o *Options) {
		o.Extension = ext
	}
}

// WithRecursive enables or disables subdirectory traversal.
// Default: false
func WithRecursive(recursive bool) Option {
	return func(o *Options) {
		o.Recursive = recursive
	}
}

// WithAutoCRLF enables or disables CRLF normalization.
// Default: true
func WithAutoCRLF(autocrlf bool) Option {
	return func(o *Options) {
		o.AutoCRLF = autocrlf
	}
}

// WithSlim enables or disables whitespace slimming.
// Default: false
func WithSlim(slim bool) Option {
	return func(o *Options) {
		o.Slim = slim
	}
}

// WithOptions replaces every setting with those in opts. It is how Refresh
// replays a previous load.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts ...Option) (Options, error) {
	resolved := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	if err := resolved.Validate(); err != nil {
		return Options{}, err
	}
	resolved.Extension = normalizeExtension(resolved.Extension)
	return resolved, nil
}
