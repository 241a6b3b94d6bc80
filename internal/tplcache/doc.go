// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tplcache holds a directory of template files in memory, keyed by
// their slash separated path relative to the loaded directory. Loading applies
// optional line ending normalization, whitespace slimming and a per file
// compile step, after which entries are looked up synchronously by name.
//
// A Registry maps namespace names to independent caches so that several
// template sets may coexist in one process.
package tplcache
