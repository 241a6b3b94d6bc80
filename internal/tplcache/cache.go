// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/apex/log"
)

// Cache is an in-memory store of files loaded from one directory. T is the
// stored value type: string for raw text, or whatever the cache's Engine
// produces.
//
// Values returned by Require and Snapshot are shared with the cache and must
// be treated as read-only. All methods are safe for concurrent use; a Load
// replaces the store in a single step so readers never see a partial load.
type Cache[T any] struct {
	engine Engine[T]

	mu       sync.RWMutex
	loaded   bool
	basePath string
	fsys     fs.FS
	options  Options
	store    map[string]T
}

// New returns an empty, unloaded cache whose files are compiled with engine.
// A nil engine stores the text itself, which requires that T can hold a
// string.
func New[T any](engine Engine[T]) *Cache[T] {
	return &Cache[T]{
		engine: engine,
		store:  map[string]T{},
	}
}

// NewText returns an empty, unloaded cache of raw file contents.
func NewText() *Cache[string] {
	return New[string](Raw)
}

// Load reads basePath per opts, applied over DefaultOptions, and replaces the
// store. The cache is returned for chaining. On error the cache keeps its
// previous state.
func (c *Cache[T]) Load(basePath string, opts ...Option) (*Cache[T], error) {
	if basePath == "" {
		return c, fmt.Errorf("%w: empty base path", ErrInvalidArgument)
	}
	return c.load(os.DirFS(basePath), basePath, opts...)
}

// LoadFS is Load for an arbitrary file system such as an embed.FS. The root
// of fsys is the base path.
func (c *Cache[T]) LoadFS(fsys fs.FS, opts ...Option) (*Cache[T], error) {
	if fsys == nil {
		return c, fmt.Errorf("%w: nil file system", ErrInvalidArgument)
	}
	return c.load(fsys, "", opts...)
}

func (c *Cache[T]) load(fsys fs.FS, basePath string, opts ...Option) (*Cache[T], error) {
	options, err := resolveOptions(opts...)
	if err != nil {
		return c, err
	}

	store, err := ReadStore(fsys, options, c.engine)
	if err != nil {
		log.WithError(err).Debugf("failed to load templates from %q", basePath)
		return c, err
	}

	c.mu.Lock()
	c.loaded = true
	c.basePath = basePath
	c.fsys = fsys
	c.options = options
	c.store = store
	c.mu.Unlock()

	log.WithFields(log.Fields{
		"path":      basePath,
		"count":     len(store),
		"extension": options.Extension,
		"recursive": options.Recursive,
		"slim":      options.Slim,
	}).Debug("templates loaded")

	return c, nil
}

// Require returns the value stored for name. The configured extension is
// appended when name does not already end with it.
func (c *Cache[T]) Require(name string) (T, error) {
	var zero T
	if name == "" {
		return zero, fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return zero, ErrNotLoaded
	}

	key := normalizeKey(name)
	if !IsExtension(key, c.options.Extension) {
		key = JoinExtension(key, c.options.Extension)
	}

	value, ok := c.store[key]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// Refresh repeats the most recent load with the same base path and options,
// picking up changes on disk.
func (c *Cache[T]) Refresh() (*Cache[T], error) {
	c.mu.RLock()
	loaded, fsys, basePath, options := c.loaded, c.fsys, c.basePath, c.options
	c.mu.RUnlock()

	if !loaded {
		return c, ErrNotLoaded
	}

	log.Debugf("refreshing templates from %q", basePath)
	return c.load(fsys, basePath, WithOptions(options))
}

// Clear returns the cache to its initial unloaded, empty state.
func (c *Cache[T]) Clear() *Cache[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = false
	c.basePath = ""
	c.fsys = nil
	c.options = Options{}
	c.store = map[string]T{}
	return c
}

// Snapshot returns a shallow copy of the store.
func (c *Cache[T]) Snapshot() map[string]T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]T, len(c.store))
	maps.Copy(snapshot, c.store)
	return snapshot
}

// MarshalJSON encodes the store as a JSON object keyed by file name.
func (c *Cache[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// Names returns the store keys in sorted order.
func (c *Cache[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.store))
}

// Len returns the number of stored files.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Loaded reports whether a load has completed since construction or the last
// Clear.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// BasePath returns the directory of the most recent load. It is empty for
// caches loaded with LoadFS.
func (c *Cache[T]) BasePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.basePath
}

// Options returns the resolved options of the most recent load.
func (c *Cache[T]) Options() Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options
}
