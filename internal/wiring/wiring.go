// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/refcache/internal/adapters/cachestore"
	_ "go.trai.ch/refcache/internal/adapters/config"
	_ "go.trai.ch/refcache/internal/adapters/fs"
	_ "go.trai.ch/refcache/internal/adapters/logger"
	_ "go.trai.ch/refcache/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/refcache/internal/app"
)
