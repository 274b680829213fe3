package ports

import "go.trai.ch/overlay/internal/core/domain"

// ConfigLoader defines the interface for loading the site configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and returns the settings.
	Load(cwd string) (*domain.Settings, error)
}
