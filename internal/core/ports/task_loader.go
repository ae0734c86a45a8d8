// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/klse/internal/core/domain"

// TaskLoader defines the interface for loading the task definition file.
//
//go:generate mockgen -source=task_loader.go -destination=mocks/mock_task_loader.go -package=mocks
type TaskLoader interface {
	// Load reads klse.json from the given task path.
	Load(root string) (*domain.TaskFile, error)
}
