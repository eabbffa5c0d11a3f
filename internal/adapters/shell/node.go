package shell

import (
	"context"

	"github.com/grindlemire/graft"
	adapterlogger "go.trai.ch/cbuild/internal/adapters/logger"
	"go.trai.ch/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterlogger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(logger), nil
		},
	})
}
