package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attune/internal/adapters/config"
	"go.trai.ch/attune/internal/adapters/events"
	"go.trai.ch/attune/internal/adapters/logger"
	"go.trai.ch/attune/internal/adapters/restore"
	"go.trai.ch/attune/internal/adapters/telemetry"
	"go.trai.ch/attune/internal/adapters/toolchain"
	"go.trai.ch/attune/internal/adapters/watcher"
	"go.trai.ch/attune/internal/adapters/workspace"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

// NodeID is the unique identifier for the engine Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			toolchain.NodeID,
			workspace.NodeID,
			watcher.NodeID,
			restore.NodeID,
			events.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := graft.Dep[ports.GraphProvider](ctx)
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
			restorer, err := graft.Dep[ports.Restorer](ctx)
			if err != nil {
				return nil, err
			}
			sink, err := graft.Dep[ports.EventSink](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, provider, ws, fw, restorer, sink, log, tel.Tracer()), nil
		},
	})
}
