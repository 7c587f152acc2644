// Package app implements the application layer for stamp.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/hasher"
	"go.trai.ch/zerr"
)

// App wires the engine with input resolution and manifest lifecycle.
type App struct {
	engine   *hasher.Engine
	resolver ports.InputResolver
	digester ports.Digester
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	engine *hasher.Engine,
	resolver ports.InputResolver,
	digester ports.Digester,
	log ports.Logger,
) *App {
	return &App{
		engine:   engine,
		resolver: resolver,
		digester: digester,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// SetStdout redirects result output. Used by tests.
func (a *App) SetStdout(w io.Writer) {
	a.stdout = w
}

// Hash resolves the inputs, runs the engine over every concrete file in
// order, persists the manifest and prints the resulting records.
func (a *App) Hash(inputs []string, overrides map[string]any) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	opts := a.engine.Options().With(overrides)

	files, err := a.resolver.Resolve(inputs, opts.Base)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve inputs")
	}

	if err := a.engine.LoadManifest(overrides); err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	refs := make([]domain.FileRef, len(files))
	for i, f := range files {
		refs[i] = domain.PathRef(f)
	}

	records, err := a.engine.HashAll(refs, overrides)
	if err != nil {
		return err
	}

	if err := a.engine.SaveManifest(overrides); err != nil {
		return zerr.Wrap(err, "failed to save manifest")
	}

	a.logger.Info(fmt.Sprintf("hashed %d file(s)", len(records)))

	return a.printRecords(records)
}

// printRecords writes the batch result as JSON: a bare object for a single
// file, an array otherwise.
func (a *App) printRecords(records []domain.AssetRecord) error {
	var payload any = records
	if len(records) == 1 {
		payload = records[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal records")
	}

	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}

// Algorithms returns the supported digest algorithm names.
func (a *App) Algorithms() []string {
	return a.digester.Algorithms()
}

// PrintManifest loads the manifest and prints the full record set.
func (a *App) PrintManifest(overrides map[string]any) error {
	if err := a.engine.LoadManifest(overrides); err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	data, err := json.MarshalIndent(a.engine.Library().All(), "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}

// Engine exposes the underlying engine, primarily for tests.
func (a *App) Engine() *hasher.Engine {
	return a.engine
}
