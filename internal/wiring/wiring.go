// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/extrepo/internal/adapters/aapt"
	_ "go.trai.ch/extrepo/internal/adapters/config"
	_ "go.trai.ch/extrepo/internal/adapters/fs"
	_ "go.trai.ch/extrepo/internal/adapters/icon"
	_ "go.trai.ch/extrepo/internal/adapters/indexstore"
	_ "go.trai.ch/extrepo/internal/adapters/logger"
	_ "go.trai.ch/extrepo/internal/adapters/repo"
	_ "go.trai.ch/extrepo/internal/adapters/shell"
	_ "go.trai.ch/extrepo/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/extrepo/internal/app"
	_ "go.trai.ch/extrepo/internal/engine/indexer"
)
