// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"io/fs"
	"iter"
	"path"
)

// Files lazily yields the paths of the regular entries beneath the root of
// fsys, relative to it. Directories, including symbolic links to them, are
// descended into when recursive is true and skipped otherwise. Yield order
// follows directory listing order; callers must not depend on it.
//
// A listing or link resolution error is yielded once with an empty path and
// ends the sequence.
func Files(fsys fs.FS, recursive bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkDir(fsys, ".", recursive, yield)
	}
}

// walkDir returns false when iteration must stop.
func walkDir(fsys fs.FS, dir string, recursive bool, yield func(string, error) bool) bool {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		yield("", err)
		return false
	}

	for _, entry := range entries {
		name := path.Join(dir, entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// Links are classified by their target.
			info, err := fs.Stat(fsys, name)
			if err != nil {
				yield("", err)
				return false
			}
			isDir = info.IsDir()
		}
		if isDir {
			if !recursive {
				continue
			}
			if !walkDir(fsys, name, recursive, yield) {
				return false
			}
			continue
		}
		if !yield(name, nil) {
			return false
		}
	}
	return true
}
