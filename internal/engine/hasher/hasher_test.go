package hasher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/digest"
	"go.trai.ch/stamp/internal/adapters/fs"
	"go.trai.ch/stamp/internal/adapters/manifest"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.trai.ch/stamp/internal/engine/hasher"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// Digest prefixes for the fixture contents used below.
const (
	digestV1    = "5a6df720" // sha1("v1")
	digestV2    = "a1047eab" // sha1("v2")
	digestHello = "aaf4c61d" // sha1("hello")
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func newEngine(t *testing.T, base string) *hasher.Engine {
	t.Helper()
	opts := domain.DefaultOptions()
	opts.Base = base
	opts.Path = base
	return hasher.New(digest.New(), fs.NewLocator(), manifest.NewStore(), quietLogger(t), opts)
}

func writeSource(t *testing.T, base, rel, content string) {
	t.Helper()
	full := filepath.Join(base, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestEngine_HashFile_FirstRun(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "img/logo.png", "v1")
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef("img/logo.png"), nil)
	require.NoError(t, err)

	assert.Equal(t, "img/logo.png", rec.Original)
	assert.Equal(t, "img/logo-aH4urS"+digestV1+".png", rec.Path)
	assert.Equal(t, "aH4urS"+digestV1, rec.Hash)
	assert.True(t, rec.Hashed)
	assert.Equal(t, "png", rec.Type)

	data, err := os.ReadFile(filepath.Join(base, "img", "logo-aH4urS"+digestV1+".png"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	// The original survives unless replace is requested.
	_, err = os.Stat(filepath.Join(base, "img", "logo.png"))
	assert.NoError(t, err)

	got, ok := e.Library().Get("img/logo.png")
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestEngine_HashFile_UnchangedFileIsIdempotent(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.css", "v1")
	e := newEngine(t, base)

	first, err := e.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)

	// Deleting the artifact proves the second call touches nothing: the
	// engine answers from the library without rewriting.
	artifact := filepath.Join(base, "app-aH4urS"+digestV1+".css")
	require.NoError(t, os.Remove(artifact))

	second, err := e.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = os.Stat(artifact)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine_HashFile_ChangedContentReplacesStaleArtifact(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.css", "v1")
	e := newEngine(t, base)

	_, err := e.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)

	writeSource(t, base, "app.css", "v2")
	rec, err := e.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)
	assert.Equal(t, "app-aH4urS"+digestV2+".css", rec.Path)

	// Exactly one artifact remains: the stale v1 copy is gone.
	_, err = os.Stat(filepath.Join(base, "app-aH4urS"+digestV1+".css"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(base, "app-aH4urS"+digestV2+".css"))
	assert.NoError(t, err)

	got, ok := e.Library().Get("app.css")
	require.True(t, ok)
	assert.Equal(t, "aH4urS"+digestV2, got.Hash)
}

func TestEngine_HashFile_Replace(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.js", "v1")
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef("app.js"), map[string]any{"replace": true})
	require.NoError(t, err)
	assert.True(t, rec.Hashed)

	_, err = os.Stat(filepath.Join(base, "app.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(base, "app-aH4urS"+digestV1+".js"))
	assert.NoError(t, err)
}

func TestEngine_HashFile_SaveDisabled(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.css", "v1")
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef("app.css"), map[string]any{"save": false})
	require.NoError(t, err)
	assert.Equal(t, "aH4urS"+digestV1, rec.Hash)

	// The record exists, the artifact does not.
	_, err = os.Stat(filepath.Join(base, "app-aH4urS"+digestV1+".css"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, ok := e.Library().Get("app.css")
	assert.True(t, ok)
}

func TestEngine_HashFile_ArtifactShortCircuit(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	// The file does not even exist on disk: the key in the name is enough.
	rec, err := e.HashFile(domain.PathRef("img/logo-aH4urS"+digestV1+".png"), nil)
	require.NoError(t, err)

	assert.Equal(t, "img/logo-aH4urS"+digestV1+".png", rec.Original)
	assert.Equal(t, rec.Original, rec.Path)
	assert.False(t, rec.Hashed)
	assert.Empty(t, rec.Hash)
	assert.Equal(t, 0, e.Library().Len())
}

func TestEngine_HashFile_MissingFile(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef("nope.png"), nil)
	require.NoError(t, err)

	assert.Equal(t, "nope.png", rec.Original)
	assert.Equal(t, "nope.png", rec.Path)
	assert.False(t, rec.Hashed)
	assert.Equal(t, 0, e.Library().Len(), "no-hash outcomes stay out of the library")
}

func TestEngine_HashFile_EmptyContent(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "empty.css", "")
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef("empty.css"), nil)
	require.NoError(t, err)
	assert.False(t, rec.Hashed)
	assert.Equal(t, 0, e.Library().Len())
}

func TestEngine_HashFile_BufferRef(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.BufferRef("styles/app.css", []byte("hello")), nil)
	require.NoError(t, err)
	assert.Equal(t, "styles/app-aH4urS"+digestHello+".css", rec.Path)

	data, err := os.ReadFile(filepath.Join(base, "styles", "app-aH4urS"+digestHello+".css"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestEngine_HashFile_BufferRefWithReplace(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	// Replace on a source that never existed on disk is a no-op.
	_, err := e.HashFile(domain.BufferRef("app.css", []byte("hello")), map[string]any{"replace": true})
	assert.NoError(t, err)
}

func TestEngine_HashFile_OverridesDoNotMutateSession(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.BufferRef("a.css", []byte("hello")), map[string]any{
		"hasher":  "md5",
		"hashKey": "K",
		"length":  4,
	})
	require.NoError(t, err)
	assert.Equal(t, "K5d41", rec.Hash) // md5("hello") truncated to 4

	opts := e.Options()
	assert.Equal(t, "sha1", opts.Hasher)
	assert.Equal(t, "aH4urS", opts.HashKey)
	assert.Equal(t, 8, opts.Length)
}

func TestEngine_HashFile_TemplateOverride(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.BufferRef("img/logo.png", []byte("v1")), map[string]any{
		"template": "{hash}.{ext}",
	})
	require.NoError(t, err)
	assert.Equal(t, "img/aH4urS"+digestV1+".png", rec.Path)
}

func TestEngine_HashFile_AbsolutePathIsNormalized(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "img/logo.png", "v1")
	e := newEngine(t, base)

	rec, err := e.HashFile(domain.PathRef(filepath.Join(base, "img", "logo.png")), nil)
	require.NoError(t, err)
	assert.Equal(t, "img/logo.png", rec.Original)
}

func TestEngine_HashFile_UnknownAlgorithm(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	_, err := e.HashFile(domain.BufferRef("a.css", []byte("x")), map[string]any{"hasher": "crc31"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestEngine_HashAll_PreservesOrder(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "b.css", "v1")
	writeSource(t, base, "a.css", "v2")
	e := newEngine(t, base)

	refs := []domain.FileRef{
		domain.PathRef("b.css"),
		domain.PathRef("a.css"),
		domain.PathRef("missing.css"),
	}
	records, err := e.HashAll(refs, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "b.css", records[0].Original)
	assert.Equal(t, "a.css", records[1].Original)
	assert.Equal(t, "missing.css", records[2].Original)
	assert.False(t, records[2].Hashed)
}

func TestEngine_HashAll_FailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	digester := mocks.NewMockDigester(ctrl)
	digester.EXPECT().
		Sum(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", zerr.New("digest exploded"))

	opts := domain.DefaultOptions()
	opts.Base = t.TempDir()
	e := hasher.New(digester, fs.NewLocator(), manifest.NewStore(), quietLogger(t), opts)

	refs := []domain.FileRef{
		domain.BufferRef("a.css", []byte("x")),
		domain.BufferRef("b.css", []byte("y")),
	}
	_, err := e.HashAll(refs, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest exploded")
}

func TestEngine_HashFile_LocatorErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockStaleLocator(ctrl)
	locator.EXPECT().
		Locate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, zerr.New("bad pattern"))

	opts := domain.DefaultOptions()
	opts.Base = t.TempDir()
	e := hasher.New(digest.New(), locator, manifest.NewStore(), quietLogger(t), opts)

	_, err := e.HashFile(domain.BufferRef("a.css", []byte("x")), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad pattern")
}

func TestEngine_HashFile_LogsStaleRemoval(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.css", "v1")
	writeSource(t, base, "app-aH4urSdeadbeef.css", "old artifact")

	ctrl := gomock.NewController(t)
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Info(gomock.Cond(func(msg string) bool {
		return strings.Contains(msg, "removed stale artifact")
	})).Times(1)

	opts := domain.DefaultOptions()
	opts.Base = base
	e := hasher.New(digest.New(), fs.NewLocator(), manifest.NewStore(), l, opts)

	_, err := e.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(base, "app-aH4urSdeadbeef.css"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestEngine_ManifestRoundtrip(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "app.css", "v1")

	first := newEngine(t, base)
	_, err := first.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)
	require.NoError(t, first.SaveManifest(nil))

	_, err = os.Stat(filepath.Join(base, "assets.json"))
	require.NoError(t, err)

	// A fresh session carries the record forward: re-hashing the unchanged
	// file answers from the manifest without touching the filesystem.
	second := newEngine(t, base)
	require.NoError(t, second.LoadManifest(nil))

	artifact := filepath.Join(base, "app-aH4urS"+digestV1+".css")
	require.NoError(t, os.Remove(artifact))

	rec, err := second.HashFile(domain.PathRef("app.css"), nil)
	require.NoError(t, err)
	assert.Equal(t, "aH4urS"+digestV1, rec.Hash)

	_, err = os.Stat(artifact)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine_SaveManifest_DisabledByOverride(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)
	_, err := e.HashFile(domain.BufferRef("a.css", []byte("v1")), nil)
	require.NoError(t, err)

	require.NoError(t, e.SaveManifest(map[string]any{"manifest": false}))

	_, err = os.Stat(filepath.Join(base, "assets.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine_SetOptionAndReset(t *testing.T) {
	base := t.TempDir()
	e := newEngine(t, base)

	e.SetOption("hasher", "md5")
	assert.Equal(t, "md5", e.Options().Hasher)

	_, err := e.HashFile(domain.BufferRef("a.css", []byte("v1")), nil)
	require.NoError(t, err)
	require.Equal(t, 1, e.Library().Len())

	e.Reset()
	assert.Equal(t, 0, e.Library().Len())
}
