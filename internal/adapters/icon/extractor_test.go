package icon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extrepo/internal/adapters/icon"
	"go.trai.ch/extrepo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeAPK writes a zip archive holding the given entries.
func writeAPK(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ext.apk")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, body := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractIcon_PicksHighestDensity(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := icon.NewExtractor(mocks.NewMockLogger(ctrl))

	apk := writeAPK(t, map[string]string{
		"AndroidManifest.xml":                 "manifest",
		"res/mipmap-mdpi-v4/ic_launcher.png":  "mdpi",
		"res/mipmap-xxhdpi/ic_launcher.png":   "xxhdpi",
		"res/mipmap-xhdpi-v4/ic_launcher.png": "xhdpi",
	})
	dest := filepath.Join(t.TempDir(), "icon", "a.en.b.png")

	found, err := ex.ExtractIcon(apk, dest)
	require.NoError(t, err)
	require.True(t, found)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "xxhdpi", string(data))
}

func TestExtractIcon_NoIcon(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := icon.NewExtractor(mocks.NewMockLogger(ctrl))

	apk := writeAPK(t, map[string]string{"res/drawable/other.png": "x"})
	dest := filepath.Join(t.TempDir(), "icon", "a.en.b.png")

	found, err := ex.ExtractIcon(apk, dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoFileExists(t, dest)
	assert.DirExists(t, filepath.Dir(dest))
}

func TestExtractIcon_NotAnArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	apk := filepath.Join(t.TempDir(), "broken.apk")
	require.NoError(t, os.WriteFile(apk, []byte("not a zip"), 0o600))

	mockLogger.EXPECT().Warn("Could not read APK as zip: " + apk).Times(1)

	found, err := icon.NewExtractor(mockLogger).ExtractIcon(apk, filepath.Join(t.TempDir(), "icon", "x.png"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCandidates_Order(t *testing.T) {
	require.Len(t, icon.Candidates, 10)
	assert.Equal(t, "res/mipmap-xxxhdpi-v4/ic_launcher.png", icon.Candidates[0])
	assert.Equal(t, "res/mipmap-mdpi/ic_launcher.png", icon.Candidates[len(icon.Candidates)-1])
}
