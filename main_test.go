// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/tplcache/internal/config"
)

func TestMangleArguments(t *testing.T) {
	cfg := config.Type{Data: map[string]interface{}{
		"ls": map[string]interface{}{
			"defaults": []interface{}{"--sort -bytes"},
			"mail":     []interface{}{"--namespace mail", "--titles"},
		},
	}}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "defaults set",
			args: []string{"tplcache", "ls", "dir"},
			want: []string{"tplcache", "ls", "--sort", "-bytes", "dir"},
		},
		{
			name: "named set",
			args: []string{"tplcache", "ls", "-o", "json", "@mail", "dir"},
			want: []string{"tplcache", "ls", "-o", "json", "--namespace", "mail", "--titles", "dir"},
		},
		{
			name: "unknown set",
			args: []string{"tplcache", "ls", "@nope", "dir"},
			want: []string{"tplcache", "ls", "dir"},
		},
		{
			name: "no sets for command",
			args: []string{"tplcache", "get", "dir", "a"},
			want: []string{"tplcache", "get", "dir", "a"},
		},
		{
			name: "help untouched",
			args: []string{"tplcache", "ls", "--help"},
			want: []string{"tplcache", "ls", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mangleArguments(tt.args, cfg))
		})
	}
}
