// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/staranto/tplcache/internal/tplcache"
)

// FileName is the name of the config file searched for in the standard
// locations.
const FileName = "tplcache.yaml"

// Type is a loaded config file. Lookups first try the key beneath Namespace
// and then the top level key.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Load reads the config file and scopes lookups to namespace. The returned
// Type always carries namespace, even when an error is returned, so callers
// may treat a missing file as an empty config.
func Load(namespace string) (Type, error) {
	cfg := Type{Namespace: namespace, Data: map[string]interface{}{}}

	path, err := getConfigPath()
	if err != nil {
		return cfg, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Source = path
	if data != nil {
		cfg.Data = data
	}

	return cfg, nil
}

// get traverses the map using a dotted key path
func (cfg Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// Has reports whether kspec resolves to a value.
func (cfg Type) Has(kspec string) bool {
	_, err := cfg.get(kspec)
	return err == nil
}

func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

func (cfg Type) GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

func (cfg Type) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetStringSlice returns a list value. Non-string items are rendered with
// %v.
func (cfg Type) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil, errors.New("value is not a list")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out, nil
}

// ResolvePath returns p relative to the directory holding the config file.
// Absolute paths, and any path when no file was loaded, are returned as is.
func (cfg Type) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || cfg.Source == "" {
		return p
	}
	return filepath.Join(filepath.Dir(cfg.Source), p)
}

// CacheOptions returns the tplcache options set in the config for the
// current namespace. Unset keys are left to the cache defaults.
func (cfg Type) CacheOptions() ([]tplcache.Option, error) {
	var opts []tplcache.Option

	if cfg.Has("extension") {
		ext, err := cfg.GetString("extension")
		if err != nil {
			return nil, fmt.Errorf("config key extension: %w", err)
		}
		opts = append(opts, tplcache.WithExtension(ext))
	}

	bools := []struct {
		key  string
		with func(bool) tplcache.Option
	}{
		{"recursive", tplcache.WithRecursive},
		{"autocrlf", tplcache.WithAutoCRLF},
		{"slim", tplcache.WithSlim},
	}
	for _, b := range bools {
		if !cfg.Has(b.key) {
			continue
		}
		v, err := cfg.GetBool(b.key)
		if err != nil {
			return nil, fmt.Errorf("config key %s: %w", b.key, err)
		}
		opts = append(opts, b.with(v))
	}

	return opts, nil
}

// Namespaces returns the top level sections that declare a template path,
// keyed by section name.
func (cfg Type) Namespaces() map[string]string {
	namespaces := map[string]string{}
	for name, section := range cfg.Data {
		m, ok := section.(map[string]interface{})
		if !ok {
			continue
		}
		if p, ok := m["path"].(string); ok {
			namespaces[name] = p
		}
	}
	return namespaces
}

// NamespaceNames returns the keys of Namespaces in sorted order.
func (cfg Type) NamespaceNames() []string {
	namespaces := cfg.Namespaces()
	names := make([]string, 0, len(namespaces))
	for name := range namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getConfigPath() (string, error) {
	if p, ok := os.LookupEnv("TPLCACHE_CFG"); ok && p != "" {
		fileInfo, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("TPLCACHE_CFG points to a directory: %s", p)
		}
		log.Debugf("using config file: %s", p)
		return p, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
