package toolchain

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/klse/internal/core/ports"
)

// NodeID is the unique identifier for the compiler resolver Graft node.
const NodeID graft.ID = "adapter.compiler_resolver"

func init() {
	graft.Register(graft.Node[ports.CompilerResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompilerResolver, error) {
			return NewResolver(os.Environ()), nil
		},
	})
}
