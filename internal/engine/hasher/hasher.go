// Package hasher implements the asset hashing engine.
//
// The engine owns the asset library and performs the per-file algorithm:
// artifact short-circuit, change detection against the existing record,
// stale-artifact cleanup, artifact write, and library update. Files are
// processed strictly one at a time in input order; every filesystem
// operation completes before the next step proceeds.
package hasher

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine orchestrates digesting, stale-artifact cleanup and library updates.
type Engine struct {
	digester ports.Digester
	locator  ports.StaleLocator
	store    ports.ManifestStore
	logger   ports.Logger
	library  *domain.Library
	opts     domain.Options
}

// New creates an Engine with an empty library and the given session options.
func New(
	digester ports.Digester,
	locator ports.StaleLocator,
	store ports.ManifestStore,
	logger ports.Logger,
	opts domain.Options,
) *Engine {
	return &Engine{
		digester: digester,
		locator:  locator,
		store:    store,
		logger:   logger,
		library:  domain.NewLibrary(),
		opts:     opts,
	}
}

// Library returns the engine's live asset library.
func (e *Engine) Library() *domain.Library {
	return e.library
}

// Options returns a copy of the session options.
func (e *Engine) Options() domain.Options {
	return e.opts
}

// SetOption mutates a session default. Per-call overrides passed to HashFile
// and HashAll never call this; they merge onto a copy.
func (e *Engine) SetOption(key string, value any) {
	e.opts.Set(key, value)
}

// Reset clears the asset library.
func (e *Engine) Reset() {
	e.library.Reset()
}

// manifestPath resolves the manifest location from the effective options. An
// empty manifest option disables persistence.
func manifestPath(opts domain.Options) string {
	if opts.Manifest == "" {
		return ""
	}
	return filepath.Join(opts.Path, opts.Manifest)
}

// LoadManifest populates the library from the manifest file, if any.
func (e *Engine) LoadManifest(overrides map[string]any) error {
	opts := e.opts.With(overrides)
	p := manifestPath(opts)
	if p == "" {
		return nil
	}
	return e.store.Load(p, e.library)
}

// SaveManifest serializes the library to the manifest file. It is a no-op
// when persistence is disabled.
func (e *Engine) SaveManifest(overrides map[string]any) error {
	opts := e.opts.With(overrides)
	p := manifestPath(opts)
	if p == "" {
		return nil
	}
	return e.store.Save(p, e.library)
}

// HashAll applies HashFile to every reference, preserving input order. The
// first fatal error aborts the remaining batch; records already processed
// are not rolled back.
func (e *Engine) HashAll(refs []domain.FileRef, overrides map[string]any) ([]domain.AssetRecord, error) {
	records := make([]domain.AssetRecord, 0, len(refs))
	for _, ref := range refs {
		rec, err := e.HashFile(ref, overrides)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// HashFile runs the per-file algorithm for a single reference and returns
// the resulting record. Overrides merge over the session options for this
// call only.
func (e *Engine) HashFile(ref domain.FileRef, overrides map[string]any) (domain.AssetRecord, error) {
	opts := e.opts.With(overrides)

	filePath := normalize(ref.Path(), opts.Base)
	ext := strings.TrimPrefix(path.Ext(filePath), ".")
	name := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	dir := path.Dir(filePath)

	// A path that already contains the hash key is an artifact from a
	// previous run, not a source. Returning it untouched keeps directory
	// traversal from producing second-order hashed artifacts. This is a
	// heuristic: a hand-named file containing the key literal is treated as
	// an artifact too.
	if opts.HashKey != "" && strings.Contains(filePath, opts.HashKey) {
		return domain.AssetRecord{Original: filePath, Path: filePath, Type: ext}, nil
	}

	current, known := e.library.Get(filePath)

	content, err := e.readContent(ref, filePath, opts)
	if err != nil {
		return domain.AssetRecord{}, err
	}

	digest, err := e.digester.Sum(content, opts.Hasher, opts.Length)
	if err != nil {
		return domain.AssetRecord{}, err
	}
	if digest == "" {
		// Missing file or empty content: a no-hash outcome, not an error.
		// The library records only sources that have produced a hash.
		return domain.AssetRecord{Original: filePath, Path: filePath, Type: ext}, nil
	}

	newHash := opts.HashKey + digest
	if known && current.Hash == newHash {
		// The artifact is already current. No filesystem mutation occurs,
		// which is what makes repeated hashing of an unchanged file
		// idempotent.
		return current, nil
	}

	newPath := path.Join(dir, domain.RenderName(opts.Template, name, newHash, ext))

	if err := e.removeStale(dir, name, ext, opts); err != nil {
		return domain.AssetRecord{}, err
	}

	if opts.Save {
		if err := writeArtifact(onDisk(newPath, opts.Base), content); err != nil {
			return domain.AssetRecord{}, err
		}
	}

	if opts.Replace {
		if err := removeOriginal(onDisk(filePath, opts.Base)); err != nil {
			return domain.AssetRecord{}, err
		}
	}

	rec := domain.AssetRecord{
		Original: filePath,
		Path:     newPath,
		Hash:     newHash,
		Hashed:   true,
		Type:     ext,
	}
	e.library.Put(rec)

	return rec, nil
}

// readContent returns the bytes to digest: the buffer for buffer references,
// the file content otherwise. A missing file yields nil content, which
// digests to the empty hash.
func (e *Engine) readContent(ref domain.FileRef, filePath string, opts domain.Options) ([]byte, error) {
	if buf, ok := ref.Buffer(); ok {
		return buf, nil
	}

	full := onDisk(filePath, opts.Base)
	data, err := os.ReadFile(full) //nolint:gosec // Path is resolved from caller input
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", full)
	}
	return data, nil
}

// removeStale deletes every prior hashed artifact for the source. Each
// deletion must succeed; a failure aborts the call.
func (e *Engine) removeStale(dir, name, ext string, opts domain.Options) error {
	stale, err := e.locator.Locate(onDisk(dir, opts.Base), name, ext, opts.Template, opts.HashKey)
	if err != nil {
		return err
	}

	for _, artifact := range stale {
		if err := os.Remove(artifact); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove stale artifact"), "path", artifact)
		}
		e.logger.Info("removed stale artifact " + artifact)
	}
	return nil
}

// writeArtifact writes content to dst via a temporary file and rename, so a
// reader never observes a partially written artifact.
func writeArtifact(dst string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", dst)
	}

	tmp := dst + ".tmp"
	//nolint:gosec // Artifacts are served to clients and stay world-readable
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", dst)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to publish artifact"), "path", dst)
	}
	return nil
}

// removeOriginal deletes the source file after the artifact is written. A
// source that never existed on disk (a buffer reference) is not an error.
func removeOriginal(full string) error {
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove original file"), "path", full)
	}
	return nil
}

// normalize converts a reference path to the slash-separated, base-relative
// form used as the library identity key.
func normalize(p, base string) string {
	p = filepath.Clean(p)
	if filepath.IsAbs(p) && base != "" {
		if absBase, err := filepath.Abs(base); err == nil {
			if rel, rerr := filepath.Rel(absBase, p); rerr == nil && !strings.HasPrefix(rel, "..") {
				return filepath.ToSlash(rel)
			}
		}
	}
	return filepath.ToSlash(p)
}

// onDisk converts a base-relative slash path back to an on-disk path.
func onDisk(p, base string) string {
	return filepath.Join(base, filepath.FromSlash(p))
}
