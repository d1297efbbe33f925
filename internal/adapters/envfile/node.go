package envfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wxpack/internal/core/ports"
)

// NodeID is the unique identifier for the profile loader Graft node.
const NodeID graft.ID = "adapter.profile_loader"

func init() {
	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileLoader, error) {
			return NewLoader(), nil
		},
	})
}
