package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attune/internal/adapters/config"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.FileWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.FileWatcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(settings.DebounceWindow)
		},
	})
}
