// Package repo writes the repository descriptor.
package repo

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// DescriptorFile is the descriptor name inside the output directory.
const DescriptorFile = "repo.json"

var _ ports.RepoWriter = (*Writer)(nil)

// Writer implements ports.RepoWriter.
type Writer struct{}

// NewWriter creates a new descriptor writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders repo.json from the template when it exists, otherwise from the default metadata.
// Template members other than meta.website are copied unchanged and in order.
func (w *Writer) Write(dir string, opts domain.RepoOptions) (string, error) {
	tpl, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	var desc any
	if tpl == nil {
		meta := opts.Default
		desc = &domain.RepoDescriptor{Meta: &meta}
	} else {
		tpl, err = applyOwner(tpl, domain.OwnerToken(opts.RepoURL, opts.Default.Owner))
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to parse repository template"), "path", opts.TemplatePath)
		}
		desc = tpl
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(desc); err != nil {
		return "", zerr.Wrap(err, "failed to marshal repository descriptor")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}
	path := filepath.Join(dir, DescriptorFile)
	//nolint:gosec // The descriptor is a published artifact
	if err := os.WriteFile(path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), 0o644); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write repository descriptor"), "path", path)
	}
	return path, nil
}

// loadTemplate returns nil when no template is configured or the file does not exist.
func loadTemplate(path string) (object, error) {
	if path == "" {
		return nil, nil
	}

	//nolint:gosec // Template path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read repository template"), "path", path)
	}

	tpl, err := decodeObject(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse repository template"), "path", path)
	}
	if tpl == nil {
		tpl = object{}
	}
	return tpl, nil
}
