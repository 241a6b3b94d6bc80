// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import "strings"

// normalizeExtension makes sure ext begins with a dot.
func normalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// IsExtension reports whether filename ends with ext. A missing leading dot on
// ext is implied, so "tpl" and ".tpl" are equivalent. An empty filename never
// matches.
func IsExtension(filename, ext string) bool {
	if filename == "" {
		return false
	}
	return strings.HasSuffix(filename, normalizeExtension(ext))
}

// JoinExtension appends ext, dot included, to filename.
func JoinExtension(filename, ext string) string {
	return filename + normalizeExtension(ext)
}

// normalizeKey converts any backslash separators to forward slashes.
func normalizeKey(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}
