// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"fmt"
	"io/fs"
	"strings"
)

// Engine compiles the transformed content of one file into the value held by
// the store. name is the store key of the file.
type Engine[T any] func(name, content string) (T, error)

// Raw is the identity Engine for text caches.
func Raw(_ string, content string) (string, error) {
	return content, nil
}

// passthrough returns an Engine that stores content unchanged, provided a
// string is assignable to T.
func passthrough[T any]() (Engine[T], bool) {
	if _, ok := any("").(T); !ok {
		return nil, false
	}
	return func(_ string, content string) (T, error) {
		return any(content).(T), nil
	}, true
}

// ReadStore reads every file beneath the root of fsys whose name ends in the
// configured extension, transforms its content per opts and compiles it with
// engine. The returned map is keyed by slash separated relative path.
//
// Errors from fsys are returned as is. Nothing is returned unless every file
// was read and compiled.
func ReadStore[T any](fsys fs.FS, opts Options, engine Engine[T]) (map[string]T, error) {
	if engine == nil {
		var ok bool
		if engine, ok = passthrough[T](); !ok {
			return nil, ErrNoEngine
		}
	}

	store := make(map[string]T)
	for name, err := range Files(fsys, opts.Recursive) {
		if err != nil {
			return nil, err
		}
		if !IsExtension(name, opts.Extension) {
			continue
		}

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}

		key := normalizeKey(name)
		content := transform(strings.ToValidUTF8(string(raw), "\uFFFD"), opts)

		value, err := engine(key, content)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", key, err)
		}
		store[key] = value
	}
	return store, nil
}
