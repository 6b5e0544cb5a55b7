// Package app implements the application layer for extrepo.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/extrepo/internal/adapters/aapt"
	"go.trai.ch/extrepo/internal/adapters/fallback"
	"go.trai.ch/extrepo/internal/adapters/indexstore"
	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/extrepo/internal/engine/indexer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locator      ports.ToolLocator
	runner       ports.CommandRunner
	finder       ports.PackageFinder
	store        ports.IndexStore
	repoWriter   ports.RepoWriter
	indexer      *indexer.Indexer
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.ToolLocator,
	runner ports.CommandRunner,
	finder ports.PackageFinder,
	store ports.IndexStore,
	repoWriter ports.RepoWriter,
	idx *indexer.Indexer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		locator:      locator,
		runner:       runner,
		finder:       finder,
		store:        store,
		repoWriter:   repoWriter,
		indexer:      idx,
		telemetry:    telemetry,
		logger:       log,
	}
}

// GenerateOptions holds the command line overrides for a generation run.
// Zero values keep the configured value.
type GenerateOptions struct {
	ConfigPath   string
	APKDir       string
	OutputDir    string
	RepoURL      string
	NoMerge      bool
	Tool         string
	Jobs         int
	RepoTemplate string
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	ConfigPath string
	Tool       string
	APK        string
}

// Generate builds the repository index, the package copies, the icons and repo.json.
//
//nolint:cyclop // orchestration function
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (err error) {
	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close telemetry")
		}
	}()

	// 1. Resolve configuration
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger.Info("APK Directory: " + cfg.APKDir)
	a.logger.Info("Output Directory: " + cfg.OutputDir)
	a.logger.Info("Repository URL: " + cfg.RepoURL)

	// 2. Pick the metadata extractor
	extractor, err := a.selectExtractor(cfg.Tool, cfg)
	if err != nil {
		return err
	}

	// 3. Find packages
	packages, err := a.finder.FindPackages(cfg.APKDir)
	if err != nil {
		return errors.Join(domain.ErrGenerationFailed, err)
	}
	if len(packages) == 0 {
		a.logger.Warn("No APK files found in " + cfg.APKDir)
	}

	// 4. Load the prior index
	var existing []domain.IndexEntry
	if cfg.Merge {
		existing, err = a.store.Load(cfg.OutputDir)
		switch {
		case errors.Is(err, domain.ErrIndexUnreadable):
			a.logger.Warn("Could not parse existing index.json")
			existing = nil
		case err != nil:
			return errors.Join(domain.ErrGenerationFailed, err)
		}
	}

	// 5. Process packages
	fresh, err := a.indexer.Run(ctx, indexer.Job{
		Extractor: extractor,
		Naming:    cfg.Naming,
		Packages:  packages,
		OutputDir: cfg.OutputDir,
		Jobs:      cfg.Jobs,
	})
	if err != nil {
		return err
	}

	// 6. Merge and save the index
	index := domain.MergeIndex(existing, fresh)
	if err := a.store.Save(cfg.OutputDir, index); err != nil {
		return err
	}
	a.logger.Info("Generated: " + filepath.Join(cfg.OutputDir, indexstore.IndexFile))
	a.logger.Info("Generated: " + filepath.Join(cfg.OutputDir, indexstore.MinIndexFile))

	// 7. Write the descriptor
	repoPath, err := a.repoWriter.Write(cfg.OutputDir, domain.RepoOptions{
		TemplatePath: cfg.Repo.Template,
		RepoURL:      cfg.RepoURL,
		Default:      cfg.Repo.Default,
	})
	if err != nil {
		return errors.Join(domain.ErrGenerationFailed, err)
	}
	a.logger.Info("Generated: " + repoPath)

	a.logger.Info(fmt.Sprintf("Repository generation complete: %d processed, %d indexed", len(fresh), len(index)))
	return nil
}

// Inspect extracts the metadata of a single package without writing anything.
func (a *App) Inspect(ctx context.Context, opts InspectOptions) (domain.Metadata, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return domain.Metadata{}, err
	}

	tool := cfg.Tool
	if opts.Tool != "" {
		tool = opts.Tool
	}

	extractor, err := a.selectExtractor(tool, cfg)
	if err != nil {
		return domain.Metadata{}, err
	}
	return extractor.Extract(ctx, opts.APK)
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// selectExtractor uses aapt when a tool can be located and falls back to the static record otherwise.
// An explicitly configured tool that cannot be used is an error.
func (a *App) selectExtractor(tool string, cfg *domain.Config) (ports.MetadataExtractor, error) {
	path, err := a.locator.Locate(tool)
	if err == nil {
		return aapt.NewExtractor(a.runner, path, cfg.Naming), nil
	}
	if tool == "" && errors.Is(err, domain.ErrToolNotFound) {
		a.logger.Warn("aapt not found, using fallback extraction")
		return fallback.NewExtractor(cfg.Fallback), nil
	}
	return nil, err
}

func applyOverrides(cfg *domain.Config, opts GenerateOptions) {
	if opts.APKDir != "" {
		cfg.APKDir = opts.APKDir
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.RepoURL != "" {
		cfg.RepoURL = opts.RepoURL
	}
	if opts.NoMerge {
		cfg.Merge = false
	}
	if opts.Tool != "" {
		cfg.Tool = opts.Tool
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}
	if opts.RepoTemplate != "" {
		cfg.Repo.Template = opts.RepoTemplate
	}
}
