package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extrepo/internal/adapters/fs"
	"go.trai.ch/extrepo/internal/adapters/icon"
	"go.trai.ch/extrepo/internal/adapters/indexstore"
	"go.trai.ch/extrepo/internal/adapters/repo"
	"go.trai.ch/extrepo/internal/app"
	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/extrepo/internal/core/ports/mocks"
	"go.trai.ch/extrepo/internal/engine/indexer"
	"go.uber.org/mock/gomock"
)

type pkg struct {
	short string
	name  string
	code  int
}

func (p pkg) id() string { return "eu.kanade.tachiyomi.extension.en." + p.short }

func (p pkg) badging() string {
	return fmt.Sprintf("package: name='%s' versionCode='%d' versionName='1.4.%d'\napplication-label:'Tachiyomi: %s'\n",
		p.id(), p.code, p.code, p.name)
}

type harness struct {
	outDir  string
	loader  *mocks.MockConfigLoader
	locator *mocks.MockToolLocator
	runner  *mocks.MockCommandRunner
	logger  *mocks.MockLogger
	app     *app.App

	badging map[string]string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		outDir:  filepath.Join(t.TempDir(), "repo"),
		loader:  mocks.NewMockConfigLoader(ctrl),
		locator: mocks.NewMockToolLocator(ctrl),
		runner:  mocks.NewMockCommandRunner(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		badging: make(map[string]string),
	}

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	telemetry.EXPECT().Close().Return(nil).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()

	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(string) (*domain.Config, error) {
		cfg := domain.DefaultConfig()
		cfg.OutputDir = h.outDir
		cfg.Repo.Template = ""
		return &cfg, nil
	}).AnyTimes()
	h.runner.EXPECT().Output(gomock.Any(), "/sdk/aapt2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string) ([]byte, error) {
			return []byte(h.badging[args[len(args)-1]]), nil
		}).AnyTimes()

	hasher := fs.NewHasher()
	idx := indexer.New(icon.NewExtractor(h.logger), fs.NewCopier(hasher), telemetry, h.logger)
	h.app = app.New(
		h.loader,
		h.locator,
		h.runner,
		fs.NewFinder(),
		indexstore.NewStore(),
		repo.NewWriter(),
		idx,
		telemetry,
		h.logger,
	)
	return h
}

// packages writes one dummy package file per pkg into a fresh directory.
func (h *harness) packages(t *testing.T, pkgs ...pkg) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "release")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for _, p := range pkgs {
		path := filepath.Join(dir, p.short+".apk")
		require.NoError(t, os.WriteFile(path, []byte("apk:"+p.id()), 0o600))
		h.badging[path] = p.badging()
	}
	return dir
}

func (h *harness) index(t *testing.T) []domain.Extension {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
	require.NoError(t, err)
	var entries []domain.Extension
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func pkgs(entries []domain.Extension) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Pkg)
	}
	return out
}

func withTool(h *harness) {
	h.locator.EXPECT().Locate("").Return("/sdk/aapt2", nil).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
}

var (
	alpha   = pkg{short: "alpha", name: "Alpha", code: 1}
	bravo   = pkg{short: "bravo", name: "Bravo", code: 2}
	charlie = pkg{short: "charlie", name: "Charlie", code: 3}
)

func TestApp_Generate_WritesRepository(t *testing.T) {
	h := newHarness(t)
	withTool(h)
	apkDir := h.packages(t, bravo, alpha)

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: apkDir}))

	entries := h.index(t)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tachiyomi: Alpha", entries[0].Name)
	assert.Equal(t, "Tachiyomi: Bravo", entries[1].Name)
	assert.Equal(t, "tachiyomi-en.alpha-v1.4.1.apk", entries[0].APK)
	assert.Equal(t, domain.SourceID(alpha.id()), entries[0].Sources[0].ID)

	assert.FileExists(t, filepath.Join(h.outDir, indexer.APKDir, "tachiyomi-en.alpha-v1.4.1.apk"))
	assert.FileExists(t, filepath.Join(h.outDir, indexstore.MinIndexFile))
	assert.FileExists(t, filepath.Join(h.outDir, repo.DescriptorFile))
	assert.DirExists(t, filepath.Join(h.outDir, indexer.IconDir))
}

func TestApp_Generate_NoMergeDropsPriorEntries(t *testing.T) {
	h := newHarness(t)
	withTool(h)

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha, bravo)}))
	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{
		APKDir:  h.packages(t, charlie),
		NoMerge: true,
	}))

	assert.Equal(t, []string{charlie.id()}, pkgs(h.index(t)))
}

func TestApp_Generate_DisjointMergeSums(t *testing.T) {
	h := newHarness(t)
	withTool(h)

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha, charlie)}))
	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, bravo)}))

	assert.Equal(t, []string{alpha.id(), bravo.id(), charlie.id()}, pkgs(h.index(t)))
}

func TestApp_Generate_SamePackageReplaces(t *testing.T) {
	h := newHarness(t)
	withTool(h)

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha)}))
	updated := alpha
	updated.code = 5
	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, updated)}))

	entries := h.index(t)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Code)
	assert.Equal(t, "1.4.5", entries[0].Version)
}

func TestApp_Generate_PrettyAndMinEquivalent(t *testing.T) {
	h := newHarness(t)
	withTool(h)

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha, bravo)}))

	var pretty, compact []map[string]any
	data, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &pretty))
	data, err = os.ReadFile(filepath.Join(h.outDir, indexstore.MinIndexFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &compact))

	assert.Equal(t, pretty, compact)
}

func TestApp_Generate_EmptyDirectory(t *testing.T) {
	t.Run("fresh output", func(t *testing.T) {
		h := newHarness(t)
		withTool(h)

		require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t)}))

		data, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("merging keeps prior index", func(t *testing.T) {
		h := newHarness(t)
		withTool(h)

		require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha)}))
		before, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
		require.NoError(t, err)

		require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t)}))
		after, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
		require.NoError(t, err)

		assert.Equal(t, string(before), string(after))
	})
}

func TestApp_Generate_MergeKeepsPriorMembers(t *testing.T) {
	h := newHarness(t)
	withTool(h)
	require.NoError(t, os.MkdirAll(h.outDir, 0o750))
	prior := `[{"name":"Tachiyomi: Zulu","pkg":"a.en.zulu","code":"one","libVersion":"1.4",` +
		`"sources":[{"name":"Zulu","extra":"keep"}]}]`
	require.NoError(t, os.WriteFile(filepath.Join(h.outDir, indexstore.IndexFile), []byte(prior), 0o600))

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha)}))

	var entries []map[string]any
	data, err := os.ReadFile(filepath.Join(h.outDir, indexstore.IndexFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, alpha.id(), entries[0]["pkg"])
	assert.Equal(t, "one", entries[1]["code"])
	assert.Equal(t, "1.4", entries[1]["libVersion"])
	assert.Equal(t, []any{map[string]any{"name": "Zulu", "extra": "keep"}}, entries[1]["sources"])
}

func TestApp_Generate_UnreadablePriorIndex(t *testing.T) {
	h := newHarness(t)
	h.locator.EXPECT().Locate("").Return("/sdk/aapt2", nil)
	h.logger.EXPECT().Warn("Could not parse existing index.json")
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	require.NoError(t, os.MkdirAll(h.outDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(h.outDir, indexstore.IndexFile), []byte("{broken"), 0o600))

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha)}))

	assert.Equal(t, []string{alpha.id()}, pkgs(h.index(t)))
}

func TestApp_Generate_FallbackWhenToolMissing(t *testing.T) {
	h := newHarness(t)
	h.locator.EXPECT().Locate("").Return("", domain.ErrToolNotFound)
	h.logger.EXPECT().Warn("aapt not found, using fallback extraction").Times(1)
	h.logger.EXPECT().Warn(gomock.Not("aapt not found, using fallback extraction")).AnyTimes()

	apkDir := filepath.Join(t.TempDir(), "release")
	require.NoError(t, os.MkdirAll(apkDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(apkDir, "Sample.apk"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(apkDir, "Other.apk"), []byte("y"), 0o600))

	require.NoError(t, h.app.Generate(context.Background(), app.GenerateOptions{APKDir: apkDir}))

	assert.Equal(t, []string{
		"eu.kanade.tachiyomi.extension.all.other",
		"eu.kanade.tachiyomi.extension.all.sample",
	}, pkgs(h.index(t)))
}

func TestApp_Generate_ExplicitToolUnusable(t *testing.T) {
	h := newHarness(t)
	h.locator.EXPECT().Locate("/missing/aapt").Return("", errors.New("configured tool is not usable"))

	err := h.app.Generate(context.Background(), app.GenerateOptions{
		APKDir: h.packages(t, alpha),
		Tool:   "/missing/aapt",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "configured tool is not usable")
	assert.NoFileExists(t, filepath.Join(h.outDir, indexstore.IndexFile))
}

func TestApp_Generate_ToolFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t)
	h.locator.EXPECT().Locate("").Return("/broken/aapt", nil)
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), "/broken/aapt", gomock.Any()).Return(nil, errors.New("exit status 1"))

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	telemetry.EXPECT().Close().Return(nil)
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	hasher := fs.NewHasher()
	a := app.New(
		h.loader,
		h.locator,
		runner,
		fs.NewFinder(),
		indexstore.NewStore(),
		repo.NewWriter(),
		indexer.New(icon.NewExtractor(h.logger), fs.NewCopier(hasher), telemetry, h.logger),
		telemetry,
		h.logger,
	)

	err := a.Generate(context.Background(), app.GenerateOptions{APKDir: h.packages(t, alpha)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolFailed)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.NoFileExists(t, filepath.Join(h.outDir, indexstore.IndexFile))
}

func TestApp_Generate_ConfigLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)
	loader.EXPECT().Load("custom.yaml").Return(nil, domain.ErrConfigParseFailed)
	telemetry.EXPECT().Close().Return(nil)

	a := app.New(loader, nil, nil, nil, nil, nil, nil, telemetry, nil)
	err := a.Generate(context.Background(), app.GenerateOptions{ConfigPath: "custom.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Inspect(t *testing.T) {
	h := newHarness(t)
	withTool(h)
	apkDir := h.packages(t, bravo)

	meta, err := h.app.Inspect(context.Background(), app.InspectOptions{APK: filepath.Join(apkDir, "bravo.apk")})
	require.NoError(t, err)
	assert.Equal(t, domain.Metadata{
		Name:        "Bravo",
		Package:     bravo.id(),
		Version:     "1.4.2",
		VersionCode: 2,
	}, meta)
	assert.NoFileExists(t, filepath.Join(h.outDir, indexstore.IndexFile))
}
