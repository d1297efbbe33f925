package ports

import "go.trai.ch/wxpack/internal/core/domain"

// SettingsLoader loads the optional project settings file.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads settings from path, returning domain.DefaultSettings when the file
	// does not exist.
	Load(path string) (domain.Settings, error)
}
