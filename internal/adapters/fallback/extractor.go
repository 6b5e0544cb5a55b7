// Package fallback provides reduced-fidelity package metadata when no dump tool is installed.
package fallback

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildFileName is the build configuration file consulted for the version code.
const BuildFileName = "build.gradle"

// PackagePrefix is prepended to the derived identifier when none is configured.
const PackagePrefix = "eu.kanade.tachiyomi.extension.all."

var (
	versionCodeRe = regexp.MustCompile(`extVersionCode\s*=\s*(\d+)`)
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

var _ ports.MetadataExtractor = (*Extractor)(nil)

// Extractor implements ports.MetadataExtractor from configured defaults.
type Extractor struct {
	record domain.FallbackRecord
}

// NewExtractor creates an Extractor for the given default record.
func NewExtractor(record domain.FallbackRecord) *Extractor {
	return &Extractor{record: record}
}

// Name identifies the strategy in logs.
func (e *Extractor) Name() string {
	return "fallback"
}

// Extract returns the default record. A build file, when present, overrides the version code
// and the version string is rendered from it.
func (e *Extractor) Extract(_ context.Context, apkPath string) (domain.Metadata, error) {
	stem := strings.TrimSuffix(filepath.Base(apkPath), filepath.Ext(apkPath))

	meta := domain.Metadata{
		Name:        e.record.Name,
		Package:     e.record.Pkg,
		VersionCode: e.record.Code,
		NSFW:        e.record.NSFW,
	}
	if meta.Name == "" {
		meta.Name = stem
	}
	if meta.Package == "" {
		meta.Package = PackagePrefix + sanitize(stem)
	}

	code, ok, err := readVersionCode(e.buildFile(apkPath))
	if err != nil {
		return domain.Metadata{}, err
	}
	if ok {
		meta.VersionCode = code
	}
	meta.Version = e.record.Version(meta.VersionCode)

	return meta, nil
}

// buildFile returns the configured build file, or the one at the module root of a
// Gradle output layout (<module>/build/outputs/apk/<variant>/<file>.apk).
func (e *Extractor) buildFile(apkPath string) string {
	if e.record.BuildFile != "" {
		return e.record.BuildFile
	}
	dir := filepath.Dir(apkPath)
	for range 4 {
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, BuildFileName)
}

func readVersionCode(path string) (int, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path derives from the package location
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, "failed to read build file"), "path", path)
	}

	m := versionCodeRe.FindSubmatch(data)
	if m == nil {
		return 0, false, nil
	}
	code, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, false, nil
	}
	return code, true, nil
}

func sanitize(s string) string {
	s = nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
	if s == "" {
		return "unknown"
	}
	return s
}
