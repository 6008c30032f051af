package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nudge/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nudge/internal/adapters/notifyfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nudge/internal/adapters/sysclock"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nudge/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			notifyfile.NodeID,
			sysclock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			store, err := graft.Dep[ports.NotificationStore](ctx)
			if err != nil {
				return nil, err
			}

			clock, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, clock, log), nil
		},
	})
}
