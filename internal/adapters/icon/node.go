package icon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/adapters/logger"
	"go.trai.ch/extrepo/internal/core/ports"
)

// NodeID is the unique identifier for the icon extractor Graft node.
const NodeID graft.ID = "adapter.icon"

func init() {
	graft.Register(graft.Node[ports.IconExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.IconExtractor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(log), nil
		},
	})
}
