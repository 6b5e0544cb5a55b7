package aapt

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataExtractor = (*Extractor)(nil)

// Extractor implements ports.MetadataExtractor by running `<tool> dump badging`.
type Extractor struct {
	runner ports.CommandRunner
	tool   string
	parser *BadgingParser
}

// NewExtractor creates an Extractor using the tool at toolPath.
func NewExtractor(runner ports.CommandRunner, toolPath string, naming domain.Naming) *Extractor {
	return &Extractor{
		runner: runner,
		tool:   toolPath,
		parser: NewBadgingParser(naming),
	}
}

// Name identifies the strategy and the tool in use.
func (e *Extractor) Name() string {
	return filepath.Base(e.tool)
}

// Extract dumps the badging of apkPath and parses it.
func (e *Extractor) Extract(ctx context.Context, apkPath string) (domain.Metadata, error) {
	out, err := e.runner.Output(ctx, e.tool, []string{"dump", "badging", apkPath})
	if err != nil {
		return domain.Metadata{}, errors.Join(
			domain.ErrToolFailed,
			zerr.With(zerr.Wrap(err, "failed to dump badging"), "apk", apkPath),
		)
	}
	return e.parser.Parse(string(out)), nil
}
