package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/klse/internal/adapters/detector"
	"go.trai.ch/klse/internal/core/ports"
)

const (
	// ShellNodeID is the unique identifier for the task shell Graft node.
	ShellNodeID graft.ID = "adapter.shell_runner"
	// ProcessNodeID is the unique identifier for the process runner Graft node.
	ProcessNodeID graft.ID = "adapter.process_runner"
)

func init() {
	graft.Register(graft.Node[ports.ShellRunner]{
		ID:        ShellNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShellRunner, error) {
			return NewRunner(os.Environ(), detector.DetectEnvironment), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        ProcessNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(os.Environ(), nil), nil
		},
	})
}
