package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StaleLocator = (*Locator)(nil)

// Locator finds previously generated hashed artifacts for a source file.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate renders the filename template with the hash placeholder replaced by
// hashKey plus a wildcard and globs the directory for matches. Any prior
// hashed artifact for the source matches regardless of its digest value; the
// un-hashed original never matches because its name lacks the hash key.
func (l *Locator) Locate(dir, name, ext, template, hashKey string) ([]string, error) {
	if hashKey == "" {
		// Without a key the pattern would swallow the original itself.
		return nil, nil
	}

	pattern := domain.RenderName(template, name, hashKey+"*", ext)
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid artifact pattern"), "pattern", pattern)
	}

	sort.Strings(matches)
	return matches, nil
}
