// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depbuild/internal/adapters/config"
	_ "go.trai.ch/depbuild/internal/adapters/linear"
	_ "go.trai.ch/depbuild/internal/adapters/logger"
	_ "go.trai.ch/depbuild/internal/adapters/shell"
	_ "go.trai.ch/depbuild/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/depbuild/internal/adapters/toml"
	// Register app and engine nodes.
	_ "go.trai.ch/depbuild/internal/app"
	_ "go.trai.ch/depbuild/internal/engine/builder"
)
