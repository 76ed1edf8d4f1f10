package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/unitdoc"
)

// Ensure Finder implements unitdoc.SourceFinder at compile time.
var _ unitdoc.SourceFinder = (*Finder)(nil)

// Finder discovers source documents below a root directory.
type Finder struct {
	includes []string
	excludes []string
}

// NewFinder creates a Finder matching root-relative slash paths against
// doublestar globs. A file is found when it matches any include pattern and
// no exclude pattern. With no include patterns every file matches.
func NewFinder(includes, excludes []string) (*Finder, error) {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	for _, pattern := range append(append([]string{}, includes...), excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, unitdoc.Errorf(unitdoc.EINVALID, "invalid glob pattern %q", pattern)
		}
	}
	return &Finder{includes: includes, excludes: excludes}, nil
}

// FindSources returns the matching files below root in lexical walk order.
func (f *Finder) FindSources(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, unitdoc.Errorf(unitdoc.ENOTFOUND, "input directory not found: %s", root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, unitdoc.Errorf(unitdoc.EINVALID, "input is not a directory: %s", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && f.excluded(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if f.included(rel) && !f.excluded(rel) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (f *Finder) included(path string) bool {
	return matchAny(f.includes, path)
}

func (f *Finder) excluded(path string) bool {
	return matchAny(f.excludes, path)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
