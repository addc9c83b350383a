// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/attune/internal/adapters/config"
	_ "go.trai.ch/attune/internal/adapters/events"
	_ "go.trai.ch/attune/internal/adapters/logger"
	_ "go.trai.ch/attune/internal/adapters/restore"
	_ "go.trai.ch/attune/internal/adapters/telemetry"
	_ "go.trai.ch/attune/internal/adapters/toolchain"
	_ "go.trai.ch/attune/internal/adapters/watcher"
	_ "go.trai.ch/attune/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/attune/internal/app"
	_ "go.trai.ch/attune/internal/engine/reconciler"
)
