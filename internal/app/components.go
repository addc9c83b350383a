package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attune/internal/adapters/config"
	"go.trai.ch/attune/internal/adapters/logger"
	"go.trai.ch/attune/internal/adapters/watcher"
	"go.trai.ch/attune/internal/adapters/workspace"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/attune/internal/engine/reconciler"
)

// Components bundles everything the CLI needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reconciler.NodeID,
			workspace.NodeID,
			watcher.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			engine, err := graft.Dep[*reconciler.Engine](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[*workspace.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			fw, err := graft.Dep[ports.FileWatcher](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(engine, ws, fw, settings, log),
				Logger: log,
			}, nil
		},
	})
}
