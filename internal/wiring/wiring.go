// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/forge/internal/adapters/config"
	_ "go.trai.ch/forge/internal/adapters/fs"
	_ "go.trai.ch/forge/internal/adapters/generator"
	_ "go.trai.ch/forge/internal/adapters/index"
	_ "go.trai.ch/forge/internal/adapters/layout"
	_ "go.trai.ch/forge/internal/adapters/lockstore"
	_ "go.trai.ch/forge/internal/adapters/logger"
	_ "go.trai.ch/forge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/forge/internal/app"
	_ "go.trai.ch/forge/internal/engine/planner"
)
