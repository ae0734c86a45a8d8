package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/flagcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/scaffold"  //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/klse/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.TaskLoaderNodeID,
			config.SettingsLoaderNodeID,
			shell.ShellNodeID,
			shell.ProcessNodeID,
			toolchain.NodeID,
			flagcache.NodeID,
			scaffold.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			tasks, err := graft.Dep[ports.TaskLoader](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			shellRunner, err := graft.Dep[ports.ShellRunner](ctx)
			if err != nil {
				return nil, err
			}

			process, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.CompilerResolver](ctx)
			if err != nil {
				return nil, err
			}

			flags, err := graft.Dep[ports.FlagStore](ctx)
			if err != nil {
				return nil, err
			}

			scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
			if err != nil {
				return nil, err
			}

			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tasks, settings, shellRunner, process, resolver, flags, scaffolder, watchers, log, afero.NewOsFs()), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
