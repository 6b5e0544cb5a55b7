package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when no metadata dump tool can be located.
	ErrToolNotFound = zerr.New("metadata tool not found")

	// ErrToolFailed is returned when the metadata dump tool exits unsuccessfully.
	ErrToolFailed = zerr.New("metadata tool failed")

	// ErrIndexUnreadable is returned when a prior index exists but cannot be decoded.
	ErrIndexUnreadable = zerr.New("existing index could not be parsed")

	// ErrIndexWriteFailed is returned when the index files cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write index")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the resolved configuration is unusable.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrGenerationFailed is returned when processing a package aborts the run.
	ErrGenerationFailed = zerr.New("repository generation failed")

	// ErrPackageCopyFailed is returned when a package cannot be copied into the repository.
	ErrPackageCopyFailed = zerr.New("failed to copy package")
)
