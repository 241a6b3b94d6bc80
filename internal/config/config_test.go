// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/tplcache/internal/tplcache"
)

// setupTestConfig sets TPLCACHE_CFG to point to a test config file.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("TPLCACHE_CFG", absPath)
}

// resolve applies opts to the cache defaults the same way Load does.
func resolve(opts []tplcache.Option) tplcache.Options {
	o := tplcache.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, ".html", cfg.Data["extension"])
				assert.Equal(t, "json", cfg.Data["output"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]interface{})
				assert.True(t, ok, "colors should be a map")
				assert.Equal(t, "#ff0000", colors["title"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "test-project", cfg.Data["name"])
				assert.Equal(t, 2, cfg.Data["padding"])
				assert.Equal(t, true, cfg.Data["slim"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
				tags, ok := cfg.Data["tags"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, tags, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.NotNil(t, cfg.Data)
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load("")
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("TPLCACHE_CFG", "/nonexistent/path/tplcache.yaml")

	cfg, err := Load("mail")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
	assert.Equal(t, "mail", cfg.Namespace)
	assert.NotNil(t, cfg.Data)
}

func TestLoad_TPLCACHE_CFG_IsDirectory(t *testing.T) {
	t.Setenv("TPLCACHE_CFG", "testdata")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_StandardLocations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("slim: true\n"), 0o644))

	t.Setenv("TPLCACHE_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)

	slim, err := cfg.GetBool("slim")
	require.NoError(t, err)
	assert.True(t, slim)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(p, []byte("a: [unterminated"), 0o644))
	t.Setenv("TPLCACHE_CFG", p)

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGetters(t *testing.T) {
	setupTestConfig(t, "namespaces.yaml")

	cfg, err := Load("mail")
	require.NoError(t, err)

	t.Run("namespaced value wins", func(t *testing.T) {
		ext, err := cfg.GetString("extension")
		require.NoError(t, err)
		assert.Equal(t, ".html", ext)
	})

	t.Run("falls back to top level", func(t *testing.T) {
		out, err := cfg.GetString("output")
		require.NoError(t, err)
		assert.Equal(t, "text", out)
	})

	t.Run("nested key", func(t *testing.T) {
		title, err := cfg.GetString("colors.title")
		require.NoError(t, err)
		assert.Equal(t, "#f6be00", title)
	})

	t.Run("missing key with default", func(t *testing.T) {
		v, err := cfg.GetString("missing", "default-value")
		require.NoError(t, err)
		assert.Equal(t, "default-value", v)

		n, err := cfg.GetInt("missing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		b, err := cfg.GetBool("missing", true)
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("missing key without default", func(t *testing.T) {
		_, err := cfg.GetString("missing")
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := cfg.GetInt("extension")
		assert.Error(t, err)
		_, err = cfg.GetString("slim")
		assert.Error(t, err)
		_, err = cfg.GetBool("path")
		assert.Error(t, err)
	})
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "mixed-types.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	n, err := cfg.GetInt("padding")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = cfg.GetInt("timeout")
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestCacheOptions(t *testing.T) {
	setupTestConfig(t, "namespaces.yaml")

	tests := []struct {
		namespace string
		want      tplcache.Options
	}{
		{
			namespace: "",
			want:      tplcache.Options{Extension: ".tpl", AutoCRLF: true},
		},
		{
			namespace: "mail",
			want:      tplcache.Options{Extension: ".html", AutoCRLF: true, Slim: true},
		},
		{
			namespace: "sql",
			want:      tplcache.Options{Extension: ".tpl", Recursive: true, AutoCRLF: false},
		},
		{
			namespace: "unknown",
			want:      tplcache.Options{Extension: ".tpl", AutoCRLF: true},
		},
	}

	for _, tt := range tests {
		t.Run("namespace "+tt.namespace, func(t *testing.T) {
			cfg, err := Load(tt.namespace)
			require.NoError(t, err)

			opts, err := cfg.CacheOptions()
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolve(opts))
		})
	}
}

func TestCacheOptions_BadTypes(t *testing.T) {
	setupTestConfig(t, "bad-types.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	_, err = cfg.CacheOptions()
	assert.ErrorContains(t, err, "slim")

	cfg, err = Load("broken")
	require.NoError(t, err)
	_, err = cfg.CacheOptions()
	assert.ErrorContains(t, err, "extension")
}

func TestCacheOptions_EmptyConfig(t *testing.T) {
	opts, err := Type{}.CacheOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestNamespaces(t *testing.T) {
	setupTestConfig(t, "namespaces.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"mail": "./templates/mail",
		"sql":  "./templates/sql",
	}, cfg.Namespaces())
	assert.Equal(t, []string{"mail", "sql"}, cfg.NamespaceNames())
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "sets.yaml")

	cfg, err := Load("ls")
	require.NoError(t, err)

	got, err := cfg.GetStringSlice("defaults")
	require.NoError(t, err)
	assert.Equal(t, []string{"--sort -bytes"}, got)

	got, err = cfg.GetStringSlice("mail")
	require.NoError(t, err)
	assert.Equal(t, []string{"--namespace mail", "--titles"}, got)

	got, err = cfg.GetStringSlice("mixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"--slim", "1"}, got)

	_, err = cfg.GetStringSlice("broken")
	assert.Error(t, err)

	_, err = cfg.GetStringSlice("missing")
	assert.Error(t, err)

	got, err = cfg.GetStringSlice("missing", []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}

func TestResolvePath(t *testing.T) {
	cfg := Type{Source: filepath.Join("etc", "tplcache", FileName)}

	assert.Equal(t, filepath.Join("etc", "tplcache", "templates", "mail"), cfg.ResolvePath("./templates/mail"))
	assert.Equal(t, "", cfg.ResolvePath(""))

	abs, err := filepath.Abs(os.TempDir())
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.ResolvePath(abs))

	assert.Equal(t, "templates", Type{}.ResolvePath("templates"))
}
