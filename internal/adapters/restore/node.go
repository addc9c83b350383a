package restore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attune/internal/adapters/config"
	"go.trai.ch/attune/internal/adapters/logger"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

// NodeID is the unique identifier for the restorer Graft node.
const NodeID graft.ID = "adapter.restore"

func init() {
	graft.Register(graft.Node[ports.Restorer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Restorer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRestorer(settings.RestoreCommand, log), nil
		},
	})
}
