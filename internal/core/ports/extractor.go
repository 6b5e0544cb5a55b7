package ports

import (
	"context"

	"go.trai.ch/extrepo/internal/core/domain"
)

//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks

// ToolLocator finds the metadata dump tool on the host.
type ToolLocator interface {
	// Locate returns the path of the tool to use. A non-empty explicit path is
	// validated and returned as is. domain.ErrToolNotFound is returned when
	// nothing suitable is installed.
	Locate(explicit string) (string, error)
}

// MetadataExtractor reads package metadata from a package file.
type MetadataExtractor interface {
	// Name identifies the extraction strategy in logs.
	Name() string
	// Extract returns the metadata of the package at apkPath.
	Extract(ctx context.Context, apkPath string) (domain.Metadata, error)
}

// IconExtractor copies the launcher icon out of a package file.
type IconExtractor interface {
	// ExtractIcon writes the best icon of apkPath to dest and reports whether one was found.
	ExtractIcon(apkPath, dest string) (bool, error)
}
