package notifyfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nudge/internal/core/ports"
)

// NodeID is the unique identifier for the notification store Graft node.
const NodeID graft.ID = "adapter.notifyfile"

// DefaultStatePath is where the pending set is persisted between runs.
const DefaultStatePath = ".nudge/state.json"

func init() {
	graft.Register(graft.Node[ports.NotificationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NotificationStore, error) {
			return NewStore(DefaultStatePath)
		},
	})
}
