package ports

import "go.trai.ch/depbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the project in the given directory.
	// A missing config file is not an error; defaults and environment overrides still apply.
	Load(cwd string) (domain.Config, error)
}
