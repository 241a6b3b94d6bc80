// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import "errors"

var (
	// ErrInvalidArgument is returned for an empty lookup name or invalid options.
	ErrInvalidArgument = errors.New("tplcache: invalid argument")
	// ErrNotLoaded is returned when a cache is queried or refreshed before Load.
	ErrNotLoaded = errors.New("tplcache: files not loaded yet")
	// ErrNotFound is returned when the resolved key is not in the store.
	ErrNotFound = errors.New("tplcache: file not found")
	// ErrNoEngine is returned when the value type cannot hold raw text and no
	// engine was supplied.
	ErrNoEngine = errors.New("tplcache: no engine for value type")
)
