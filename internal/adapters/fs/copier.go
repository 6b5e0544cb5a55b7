package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCopier = (*Copier)(nil)

// Copier implements ports.ArtifactCopier. Copies keep the source permissions and
// modification time, and are skipped when the destination content is already identical.
type Copier struct {
	hasher ports.Hasher
}

// NewCopier creates a new Copier.
func NewCopier(hasher ports.Hasher) *Copier {
	return &Copier{hasher: hasher}
}

// Copy copies src to dst and reports whether dst was already up to date.
func (c *Copier) Copy(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	same, err := c.identical(src, dst)
	if err != nil {
		return false, err
	}
	if same {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", dst)
	}
	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.With(err, "src", src), "dst", dst)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to preserve modification time"), "path", dst)
	}
	return false, nil
}

func (c *Copier) identical(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat destination"), "path", dst)
	}

	srcHash, err := c.hasher.ComputeFileHash(src)
	if err != nil {
		return false, err
	}
	dstHash, err := c.hasher.ComputeFileHash(dst)
	if err != nil {
		return false, err
	}
	return srcHash == dstHash, nil
}

func copyFile(src, dst string, perm iofs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "failed to open source")
	}
	defer in.Close() //nolint:errcheck // read-only

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // dst is derived from the output directory
	if err != nil {
		return zerr.Wrap(err, "failed to create destination")
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy content")
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to close destination")
	}
	return os.Chmod(dst, perm)
}
