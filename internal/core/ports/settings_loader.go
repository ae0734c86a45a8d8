package ports

import "go.trai.ch/klse/internal/core/domain"

// SettingsLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads klse.yaml from the given task path.
	// A missing file yields domain.DefaultSettings().
	Load(root string) (domain.Settings, error)
}
