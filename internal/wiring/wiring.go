// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/overlay/internal/adapters/cas"
	_ "go.trai.ch/overlay/internal/adapters/compiler"
	_ "go.trai.ch/overlay/internal/adapters/config"
	_ "go.trai.ch/overlay/internal/adapters/fs"
	_ "go.trai.ch/overlay/internal/adapters/logger"
	_ "go.trai.ch/overlay/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/overlay/internal/app"
)
