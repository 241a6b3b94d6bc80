// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	left := map[string]string{
		"a.tpl":      "foo",
		"b.tpl":      "bar",
		"mail/x.tpl": "hello",
	}
	right := map[string]string{
		"a.tpl":      "foo",
		"b.tpl":      "baz",
		"mail/y.tpl": "hello",
	}

	result, err := Compare(left, right, false)
	require.NoError(t, err)

	assert.True(t, result.Differs())
	assert.Equal(t, []string{"mail/y.tpl"}, result.Added)
	assert.Equal(t, []string{"mail/x.tpl"}, result.Removed)
	assert.Equal(t, []string{"b.tpl"}, result.Modified)
	assert.Contains(t, result.Text, "mail/y.tpl")
	assert.Contains(t, result.Text, "mail/x.tpl")
	assert.NotContains(t, result.Text, "\x1b[")
}

func TestCompare_Equal(t *testing.T) {
	set := map[string]string{"a.tpl": "foo"}

	result, err := Compare(set, map[string]string{"a.tpl": "foo"}, true)
	require.NoError(t, err)

	assert.False(t, result.Differs())
	assert.Empty(t, result.Text)
}

func TestCompare_Empty(t *testing.T) {
	result, err := Compare(nil, map[string]string{"a.tpl": "foo"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.tpl"}, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
	assert.NotEmpty(t, result.Text)
}
