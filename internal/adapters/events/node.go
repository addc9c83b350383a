package events

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attune/internal/adapters/logger"
	"go.trai.ch/attune/internal/core/ports"
)

// NodeID is the unique identifier for the event sink Graft node.
const NodeID graft.ID = "adapter.events"

func init() {
	graft.Register(graft.Node[ports.EventSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EventSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSink(log), nil
		},
	})
}
