package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extrepo/internal/adapters/aapt"               //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/indexstore"         //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/repo"               //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/extrepo/internal/engine/indexer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			aapt.LocatorNodeID,
			shell.NodeID,
			fs.FinderNodeID,
			indexstore.NodeID,
			repo.NodeID,
			indexer.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ToolLocator](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.PackageFinder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.IndexStore](ctx)
	if err != nil {
		return nil, err
	}

	repoWriter, err := graft.Dep[ports.RepoWriter](ctx)
	if err != nil {
		return nil, err
	}

	idx, err := graft.Dep[*indexer.Indexer](ctx)
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

	return New(loader, locator, runner, finder, store, repoWriter, idx, telemetry, log), nil
}
