package app

import "go.trai.ch/overlay/internal/core/ports"

// Components holds the wired application and the adapters the CLI uses directly.
type Components struct {
	App    *App
	Logger ports.Logger
}
