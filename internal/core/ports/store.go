package ports

import "go.trai.ch/extrepo/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// IndexStore persists the repository index.
type IndexStore interface {
	// Load returns the index stored in dir. A missing index yields no entries.
	// An index that cannot be decoded yields domain.ErrIndexUnreadable.
	Load(dir string) ([]domain.IndexEntry, error)
	// Save writes the pretty and the minified index into dir.
	Save(dir string, entries []domain.IndexEntry) error
}

// RepoWriter writes the repository descriptor.
type RepoWriter interface {
	// Write renders repo.json into dir and returns the written path.
	Write(dir string, opts domain.RepoOptions) (string, error)
}
