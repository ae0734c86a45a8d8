// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/klse/internal/adapters/config"
	_ "go.trai.ch/klse/internal/adapters/flagcache"
	_ "go.trai.ch/klse/internal/adapters/logger"
	_ "go.trai.ch/klse/internal/adapters/scaffold"
	_ "go.trai.ch/klse/internal/adapters/shell"
	_ "go.trai.ch/klse/internal/adapters/toolchain"
	_ "go.trai.ch/klse/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/klse/internal/app"
)
