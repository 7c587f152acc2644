package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver expands input addresses (paths, globs, directories) into concrete
// file paths using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve expands each input into base-relative file paths, preserving input
// order. Glob matches are sorted; directories are walked in lexical
// pre-order. A non-glob path that does not exist passes through unchanged so
// the engine can report it as a no-content record.
func (r *Resolver) Resolve(inputs []string, base string) ([]string, error) {
	var out []string

	for _, input := range inputs {
		full := input
		if !filepath.IsAbs(input) {
			full = filepath.Join(base, input)
		}

		info, err := os.Stat(full)
		switch {
		case err == nil && info.IsDir():
			files, werr := r.walker.Walk(full)
			if werr != nil {
				return nil, werr
			}
			for _, f := range files {
				out = append(out, relToBase(f, base))
			}
		case err == nil:
			out = append(out, relToBase(full, base))
		default:
			matched, merr := r.glob(full, base)
			if merr != nil {
				return nil, merr
			}
			if matched == nil {
				// Not a glob, or a glob with zero matches: pass the input
				// through as a concrete (possibly missing) path.
				out = append(out, relToBase(full, base))
				continue
			}
			out = append(out, matched...)
		}
	}

	return out, nil
}

// glob resolves a pattern to sorted base-relative paths. It returns nil when
// the pattern matched nothing.
func (r *Resolver) glob(pattern, base string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	sort.Strings(matches)

	var out []string
	for _, match := range matches {
		info, serr := os.Stat(match)
		if serr != nil {
			return nil, zerr.With(zerr.Wrap(serr, "failed to stat glob match"), "path", match)
		}
		if info.IsDir() {
			files, werr := r.walker.Walk(match)
			if werr != nil {
				return nil, werr
			}
			for _, f := range files {
				out = append(out, relToBase(f, base))
			}
			continue
		}
		out = append(out, relToBase(match, base))
	}
	return out, nil
}

// relToBase converts an on-disk path back to the base-relative,
// slash-separated form the engine records.
func relToBase(path, base string) string {
	if base != "" {
		if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filepath.Clean(path))
}
