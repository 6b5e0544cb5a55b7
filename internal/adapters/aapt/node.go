package aapt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/core/ports"
)

// LocatorNodeID is the unique identifier for the tool locator Graft node.
const LocatorNodeID graft.ID = "adapter.aapt_locator"

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolLocator, error) {
			return NewLocator(), nil
		},
	})
}
