package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extrepo/internal/adapters/icon"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extrepo/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extrepo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extrepo/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[*Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			icon.NodeID,
			fs.CopierNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Indexer, error) {
			icons, err := graft.Dep[ports.IconExtractor](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.ArtifactCopier](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(icons, copier, telemetry, log), nil
		},
	})
}
