package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/ports"
)

const (
	// TaskLoaderNodeID is the unique identifier for the task loader Graft node.
	TaskLoaderNodeID graft.ID = "adapter.task_loader"
	// SettingsLoaderNodeID is the unique identifier for the settings loader Graft node.
	SettingsLoaderNodeID graft.ID = "adapter.settings_loader"
)

func init() {
	graft.Register(graft.Node[ports.TaskLoader]{
		ID:        TaskLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskLoader, error) {
			return NewTaskLoader(afero.NewOsFs()), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(afero.NewOsFs()), nil
		},
	})
}
