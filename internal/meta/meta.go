// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/tplcache/internal/config"
	"github.com/staranto/tplcache/internal/tplcache"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args        []string
	Config      config.Type
	Registry    *tplcache.Registry[string]
	StartingDir string
}
