// Package fs provides file system adapters for finding, hashing and publishing package files.
package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackagePattern matches the package files picked up from the input directory.
const PackagePattern = "*.apk"

// DebugDir is the sibling variant directory searched when the input directory holds no packages.
const DebugDir = "debug"

var _ ports.PackageFinder = (*Finder)(nil)

// Finder implements ports.PackageFinder using filepath.Glob.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindPackages returns the packages in dir, sorted by path. When dir has none,
// the packages of the sibling debug directory are returned instead.
// A missing directory yields no packages.
func (f *Finder) FindPackages(dir string) ([]string, error) {
	matches, err := glob(dir)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return matches, nil
	}
	return glob(filepath.Join(filepath.Dir(filepath.Clean(dir)), DebugDir))
}

func glob(dir string) ([]string, error) {
	pattern := filepath.Join(dir, PackagePattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob packages"), "pattern", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}
