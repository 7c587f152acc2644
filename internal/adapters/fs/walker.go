// Package fs provides file system adapters for locating artifacts and
// expanding inputs.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker enumerates regular files under a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns every regular file under root in lexical pre-order: a
// directory's files come before the files of its sub-directories. Traversal
// uses an explicit worklist instead of recursion, so depth is bounded by the
// worklist and independent of the call stack.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if entry.Name() == ".git" || entry.Name() == ".jj" {
					continue
				}
				subdirs = append(subdirs, path)
				continue
			}
			if entry.Type().IsRegular() {
				files = append(files, path)
			}
		}

		// Push in reverse so the lexically first sub-directory is popped next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return files, nil
}
