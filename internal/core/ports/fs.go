package ports

//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks

// PackageFinder lists the package files to index.
type PackageFinder interface {
	// FindPackages returns the package files under dir in a stable order.
	FindPackages(dir string) ([]string, error)
}

// ArtifactCopier publishes package files into the repository.
type ArtifactCopier interface {
	// Copy copies src to dst and reports whether dst already held identical content.
	Copy(src, dst string) (unchanged bool, err error)
}

// Hasher computes content hashes of files.
type Hasher interface {
	// ComputeFileHash returns the hash of the file's content.
	ComputeFileHash(path string) (uint64, error)
}
