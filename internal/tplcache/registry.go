// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"maps"
	"slices"
	"sync"
)

// DefaultNamespace is the namespace returned by Registry.Default.
const DefaultNamespace = ""

// Registry maps namespace names to independent caches that share one engine.
// Caches are created on first access and kept for the life of the registry.
type Registry[T any] struct {
	engine Engine[T]

	mu     sync.Mutex
	caches map[string]*Cache[T]
}

// NewRegistry returns an empty registry whose caches compile with engine.
func NewRegistry[T any](engine Engine[T]) *Registry[T] {
	return &Registry[T]{
		engine: engine,
		caches: map[string]*Cache[T]{},
	}
}

// NewTextRegistry returns an empty registry of raw text caches.
func NewTextRegistry() *Registry[string] {
	return NewRegistry[string](Raw)
}

// Namespace returns the cache registered under name, creating it if needed.
// Repeated calls with the same name return the same cache.
func (r *Registry[T]) Namespace(name string) *Cache[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.caches[name]
	if !ok {
		c = New(r.engine)
		r.caches[name] = c
	}
	return c
}

// Default returns the cache of the unnamed namespace.
func (r *Registry[T]) Default() *Cache[T] {
	return r.Namespace(DefaultNamespace)
}

// Names returns the names of the namespaces created so far, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.caches))
}
