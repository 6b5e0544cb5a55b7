package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/core/ports"
)

// NodeID is the unique identifier for the repository descriptor writer Graft node.
const NodeID graft.ID = "adapter.repo_writer"

func init() {
	graft.Register(graft.Node[ports.RepoWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepoWriter, error) {
			return NewWriter(), nil
		},
	})
}
