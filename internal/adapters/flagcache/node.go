package flagcache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/ports"
)

// NodeID is the unique identifier for the flag store Graft node.
const NodeID graft.ID = "adapter.flag_store"

func init() {
	graft.Register(graft.Node[ports.FlagStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FlagStore, error) {
			return NewStore(afero.NewOsFs()), nil
		},
	})
}
