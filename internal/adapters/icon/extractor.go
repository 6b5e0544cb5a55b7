// Package icon extracts launcher icons from package archives.
package icon

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Candidates lists the archive paths searched for a launcher icon, highest density first.
var Candidates = []string{
	"res/mipmap-xxxhdpi-v4/ic_launcher.png",
	"res/mipmap-xxxhdpi/ic_launcher.png",
	"res/mipmap-xxhdpi-v4/ic_launcher.png",
	"res/mipmap-xxhdpi/ic_launcher.png",
	"res/mipmap-xhdpi-v4/ic_launcher.png",
	"res/mipmap-xhdpi/ic_launcher.png",
	"res/mipmap-hdpi-v4/ic_launcher.png",
	"res/mipmap-hdpi/ic_launcher.png",
	"res/mipmap-mdpi-v4/ic_launcher.png",
	"res/mipmap-mdpi/ic_launcher.png",
}

var _ ports.IconExtractor = (*Extractor)(nil)

// Extractor implements ports.IconExtractor for zip-based packages.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new icon Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractIcon copies the highest-density launcher icon of apkPath to dest.
// A package that cannot be read as an archive is reported as a warning and yields no icon.
func (e *Extractor) ExtractIcon(apkPath, dest string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create icon directory"), "path", dest)
	}

	r, err := zip.OpenReader(apkPath)
	if err != nil {
		e.logger.Warn("Could not read APK as zip: " + apkPath)
		return false, nil
	}
	defer r.Close() //nolint:errcheck // read-only archive

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}

	for _, name := range Candidates {
		f, ok := entries[name]
		if !ok {
			continue
		}
		if err := copyEntry(f, dest); err != nil {
			return false, zerr.With(zerr.With(err, "entry", name), "apk", apkPath)
		}
		return true, nil
	}
	return false, nil
}

func copyEntry(f *zip.File, dest string) error {
	src, err := f.Open()
	if err != nil {
		return zerr.Wrap(err, "failed to open icon entry")
	}
	defer src.Close() //nolint:errcheck // read-only entry

	out, err := os.Create(dest) //nolint:gosec // dest is derived from the output directory
	if err != nil {
		return zerr.Wrap(err, "failed to create icon file")
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to write icon file")
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to close icon file")
	}
	return nil
}
