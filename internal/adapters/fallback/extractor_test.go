package fallback_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extrepo/internal/adapters/fallback"
	"go.trai.ch/extrepo/internal/core/domain"
)

func inkarrRecord() domain.FallbackRecord {
	return domain.FallbackRecord{
		Name:            "Inkarr",
		Pkg:             "eu.kanade.tachiyomi.extension.all.inkarr",
		VersionTemplate: "1.4.{code}",
		Code:            1,
	}
}

// gradleLayout creates <root>/build/outputs/apk/release/<name> and returns the APK path.
func gradleLayout(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, "build", "outputs", "apk", "release")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	apk := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(apk, []byte("apk"), 0o600))
	return apk
}

func TestExtractor_DefaultRecord(t *testing.T) {
	apk := gradleLayout(t, t.TempDir(), "inkarr-release.apk")

	meta, err := fallback.NewExtractor(inkarrRecord()).Extract(context.Background(), apk)
	require.NoError(t, err)

	assert.Equal(t, domain.Metadata{
		Name:        "Inkarr",
		Package:     "eu.kanade.tachiyomi.extension.all.inkarr",
		Version:     "1.4.1",
		VersionCode: 1,
	}, meta)
}

func TestExtractor_BuildFileOverridesCode(t *testing.T) {
	root := t.TempDir()
	apk := gradleLayout(t, root, "inkarr-release.apk")
	gradle := "ext {\n    extName = 'Inkarr'\n    extClass = '.Inkarr'\n    extVersionCode = 7\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "build.gradle"), []byte(gradle), 0o600))

	meta, err := fallback.NewExtractor(inkarrRecord()).Extract(context.Background(), apk)
	require.NoError(t, err)

	assert.Equal(t, 7, meta.VersionCode)
	assert.Equal(t, "1.4.7", meta.Version)
}

func TestExtractor_ConfiguredBuildFile(t *testing.T) {
	dir := t.TempDir()
	apk := filepath.Join(dir, "a.apk")
	require.NoError(t, os.WriteFile(apk, []byte("apk"), 0o600))
	gradle := filepath.Join(dir, "custom.gradle")
	require.NoError(t, os.WriteFile(gradle, []byte("extVersionCode=12"), 0o600))

	record := inkarrRecord()
	record.BuildFile = gradle

	meta, err := fallback.NewExtractor(record).Extract(context.Background(), apk)
	require.NoError(t, err)

	assert.Equal(t, 12, meta.VersionCode)
	assert.Equal(t, "1.4.12", meta.Version)
}

func TestExtractor_BuildFileWithoutCode(t *testing.T) {
	root := t.TempDir()
	apk := gradleLayout(t, root, "x.apk")
	require.NoError(t, os.WriteFile(filepath.Join(root, "build.gradle"), []byte("plugins {}\n"), 0o600))

	meta, err := fallback.NewExtractor(inkarrRecord()).Extract(context.Background(), apk)
	require.NoError(t, err)

	assert.Equal(t, 1, meta.VersionCode)
}

func TestExtractor_DerivesIdentityFromFilename(t *testing.T) {
	apk := gradleLayout(t, t.TempDir(), "My-Source_v2.apk")

	meta, err := fallback.NewExtractor(domain.DefaultConfig().Fallback).Extract(context.Background(), apk)
	require.NoError(t, err)

	assert.Equal(t, "My-Source_v2", meta.Name)
	assert.Equal(t, "eu.kanade.tachiyomi.extension.all.mysourcev2", meta.Package)
	assert.Equal(t, "1.0.1", meta.Version)
	assert.Equal(t, "fallback", fallback.NewExtractor(domain.FallbackRecord{}).Name())
}
