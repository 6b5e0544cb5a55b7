// Package indexer turns package files into repository index entries.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// APKDir is the output subdirectory receiving the renamed packages.
	APKDir = "apk"
	// IconDir is the output subdirectory receiving the extracted icons.
	IconDir = "icon"
)

// Job describes one indexing pass.
type Job struct {
	// Extractor reads the metadata of each package.
	Extractor ports.MetadataExtractor
	// Naming derives file names and labels.
	Naming domain.Naming
	// Packages are the input files, in the order entries are returned.
	Packages []string
	// OutputDir is the repository root.
	OutputDir string
	// Jobs bounds how many packages are processed at once.
	Jobs int
}

// Indexer processes packages into index entries.
type Indexer struct {
	icons     ports.IconExtractor
	copier    ports.ArtifactCopier
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Indexer.
func New(
	icons ports.IconExtractor,
	copier ports.ArtifactCopier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Indexer {
	return &Indexer{
		icons:     icons,
		copier:    copier,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run processes every package of the job. Entries are returned in package order.
// Packages resolving to the same output file are written one at a time.
// The first failure cancels the remaining packages and is returned.
func (ix *Indexer) Run(ctx context.Context, job Job) ([]domain.Extension, error) {
	if err := os.MkdirAll(filepath.Join(job.OutputDir, APKDir), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create package directory"), "path", job.OutputDir)
	}

	jobs := job.Jobs
	if jobs < 1 {
		jobs = 1
	}

	entries := make([]domain.Extension, len(job.Packages))
	locks := newPathLocks()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, apk := range job.Packages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ext, err := ix.process(ctx, job, locks, apk)
			if err != nil {
				return errors.Join(domain.ErrGenerationFailed, zerr.With(err, "apk", apk))
			}
			entries[i] = ext
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (ix *Indexer) process(ctx context.Context, job Job, locks *pathLocks, apk string) (domain.Extension, error) {
	base := filepath.Base(apk)
	ctx, vertex := ix.telemetry.Record(ctx, base)

	ext, err := ix.processPackage(ctx, vertex, job, locks, apk)
	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
	}
	vertex.Complete(err)
	return ext, err
}

func (ix *Indexer) processPackage(
	ctx context.Context,
	vertex ports.Vertex,
	job Job,
	locks *pathLocks,
	apk string,
) (domain.Extension, error) {
	ix.logger.Info("Processing: " + filepath.Base(apk))

	meta, err := job.Extractor.Extract(ctx, apk)
	if err != nil {
		return domain.Extension{}, err
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("extracted %s with %s", meta.Package, job.Extractor.Name()))

	apkName := job.Naming.APKName(meta.Package, meta.Version)
	dest := filepath.Join(job.OutputDir, APKDir, apkName)
	unlock := locks.lock(dest)
	unchanged, err := ix.copier.Copy(apk, dest)
	unlock()
	if err != nil {
		return domain.Extension{}, errors.Join(domain.ErrPackageCopyFailed, err)
	}
	if unchanged {
		vertex.Cached()
	}
	ix.logger.Info("  Copied to: " + dest)

	iconPath := filepath.Join(job.OutputDir, IconDir, meta.Package+".png")
	unlock = locks.lock(iconPath)
	hasIcon, err := ix.icons.ExtractIcon(apk, iconPath)
	unlock()
	if err != nil {
		return domain.Extension{}, err
	}
	if !hasIcon {
		vertex.Log(domain.LogLevelWarn, "no launcher icon found")
	}

	ext := domain.NewExtension(meta, job.Naming, hasIcon)
	ix.logger.Info(fmt.Sprintf("  Added: %s v%s (code: %d)", meta.Name, meta.Version, meta.VersionCode))
	return ext, nil
}
