package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/core/ports"
)

const (
	// FinderNodeID is the unique identifier for the package finder Graft node.
	FinderNodeID graft.ID = "adapter.fs.finder"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// CopierNodeID is the unique identifier for the artifact copier Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
)

func init() {
	graft.Register(graft.Node[ports.PackageFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageFinder, error) {
			return NewFinder(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.ArtifactCopier, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(hasher), nil
		},
	})
}
