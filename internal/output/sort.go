// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"cmp"
	"sort"
	"strings"
)

type sortKey struct {
	name          string
	descending    bool
	caseSensitive bool
}

// parseSortSpec reads a comma-separated list of keys. A leading '-' sorts
// that key descending and a leading '!' compares it case sensitively; both
// may be combined in either order.
func parseSortSpec(spec string) []sortKey {
	var keys []sortKey
	for _, part := range strings.Split(spec, ",") {
		key := sortKey{}
		part = strings.TrimSpace(part)
		for len(part) > 0 && (part[0] == '-' || part[0] == '!') {
			if part[0] == '-' {
				key.descending = true
			} else {
				key.caseSensitive = true
			}
			part = part[1:]
		}
		if part == "" {
			continue
		}
		key.name = part
		keys = append(keys, key)
	}
	return keys
}

// SortDataset sorts rows in place per spec. Rows that compare equal keep their
// relative order. Missing values sort first.
func SortDataset(rows []map[string]interface{}, spec string) {
	keys := parseSortSpec(spec)
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, key := range keys {
			c := compareValues(rows[i][key.name], rows[j][key.name], key.caseSensitive)
			if c == 0 {
				continue
			}
			if key.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareValues(a, b interface{}, caseSensitive bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat64(a); ok {
		if fb, ok := toFloat64(b); ok {
			return cmp.Compare(fa, fb)
		}
	}

	sa, sb := InterfaceToString(a), InterfaceToString(b)
	if !caseSensitive {
		sa, sb = strings.ToLower(sa), strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
