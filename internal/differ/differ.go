// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ compares two template sets keyed by template name.
package differ

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/apex/log"
	diff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Result is the outcome of a Compare. Text is empty when the sets are equal.
type Result struct {
	Added    []string
	Removed  []string
	Modified []string
	Text     string
}

// Differs reports whether any template was added, removed or modified.
func (r Result) Differs() bool {
	return len(r.Added)+len(r.Removed)+len(r.Modified) > 0
}

// Compare diffs right against left. When color is true the rendered text
// carries ANSI colors.
func Compare(left, right map[string]string, color bool) (Result, error) {
	var result Result
	if left == nil {
		left = map[string]string{}
	}
	if right == nil {
		right = map[string]string{}
	}

	for name, content := range left {
		other, ok := right[name]
		switch {
		case !ok:
			result.Removed = append(result.Removed, name)
		case other != content:
			result.Modified = append(result.Modified, name)
		}
	}
	for name := range right {
		if _, ok := left[name]; !ok {
			result.Added = append(result.Added, name)
		}
	}
	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Strings(result.Modified)

	leftJSON, err := json.Marshal(left)
	if err != nil {
		return result, fmt.Errorf("failed to marshal left side: %w", err)
	}
	rightJSON, err := json.Marshal(right)
	if err != nil {
		return result, fmt.Errorf("failed to marshal right side: %w", err)
	}

	d, err := diff.New().Compare(leftJSON, rightJSON)
	if err != nil {
		return result, fmt.Errorf("failed to compare: %w", err)
	}
	log.Debugf("added=%d removed=%d modified=%d", len(result.Added), len(result.Removed), len(result.Modified))

	if !d.Modified() {
		return result, nil
	}

	var leftObject map[string]interface{}
	if err := json.Unmarshal(leftJSON, &leftObject); err != nil {
		return result, fmt.Errorf("failed to decode left side: %w", err)
	}

	f := formatter.NewAsciiFormatter(leftObject, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	result.Text, err = f.Format(d)
	if err != nil {
		return result, fmt.Errorf("failed to format diff: %w", err)
	}

	return result, nil
}
