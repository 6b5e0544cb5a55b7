// Package indexstore persists the repository index as JSON files.
package indexstore

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

const (
	// IndexFile is the human-readable index written into the output directory.
	IndexFile = "index.json"
	// MinIndexFile is the compact index written into the output directory.
	MinIndexFile = "index.min.json"
)

var _ ports.IndexStore = (*Store)(nil)

// Store implements ports.IndexStore using flat JSON files.
type Store struct{}

// NewStore creates a new index store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the pretty index from dir. Elements are kept as written; only pkg and name are decoded.
func (s *Store) Load(dir string) ([]domain.IndexEntry, error) {
	path := filepath.Join(dir, IndexFile)

	//nolint:gosec // Path is derived from the configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read index"), "path", path)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, errors.Join(domain.ErrIndexUnreadable,
			zerr.With(zerr.Wrap(err, "failed to unmarshal index"), "path", path))
	}

	entries := make([]domain.IndexEntry, 0, len(elements))
	for i, element := range elements {
		entry, err := domain.ParseIndexEntry(element)
		if err != nil {
			return nil, errors.Join(domain.ErrIndexUnreadable,
				zerr.With(zerr.With(err, "path", path), "element", i))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Save writes both index files into dir, creating it when needed.
func (s *Store) Save(dir string, entries []domain.IndexEntry) error {
	if entries == nil {
		entries = []domain.IndexEntry{}
	}

	pretty, err := encode(entries, "  ")
	if err != nil {
		return err
	}
	compact, err := encode(entries, "")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrIndexWriteFailed,
			zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir))
	}
	if err := write(filepath.Join(dir, IndexFile), pretty); err != nil {
		return err
	}
	return write(filepath.Join(dir, MinIndexFile), compact)
}

// encode marshals entries without HTML escaping and without a trailing newline.
func encode(entries []domain.IndexEntry, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Join(domain.ErrIndexWriteFailed, zerr.Wrap(err, "failed to marshal index"))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func write(path string, data []byte) error {
	//nolint:gosec // Index files are published artifacts
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Join(domain.ErrIndexWriteFailed,
			zerr.With(zerr.Wrap(err, "failed to write index"), "path", path))
	}
	return nil
}
