package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/adapters/cache"
	adapterlogger "go.trai.ch/cbuild/internal/adapters/logger"
	"go.trai.ch/cbuild/internal/adapters/shell"
	"go.trai.ch/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, cache.NodeID, adapterlogger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, store, logger), nil
		},
	})
}
