// Package goldmark checks links in Markdown documents using
// github.com/yuin/goldmark.
package goldmark

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/unitdoc"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Checker implements unitdoc.LinkChecker at compile time.
var _ unitdoc.LinkChecker = (*Checker)(nil)

// Checker verifies local links and images in one Markdown file.
type Checker struct {
	md goldmark.Markdown
}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{md: goldmark.New()}
}

// CheckLinks parses the Markdown file at path and returns the links whose
// targets, resolved against the file's directory, do not exist.
func (c *Checker) CheckLinks(ctx context.Context, path string) ([]unitdoc.BrokenLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, unitdoc.Errorf(unitdoc.ENOTFOUND, "reference not found: %s", path)
		}
		return nil, err
	}

	dir := filepath.Dir(path)
	source := filepath.Base(path)
	broken := []unitdoc.BrokenLink{}
	seen := make(map[string]bool)

	root := c.md.Parser().Parse(text.NewReader(body))
	err = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		var dest string
		switch node := n.(type) {
		case *gmast.Link:
			dest = string(node.Destination)
		case *gmast.Image:
			dest = string(node.Destination)
		default:
			return gmast.WalkContinue, nil
		}

		target, ok := unitdoc.LocalTarget(dest)
		if !ok || seen[target] {
			return gmast.WalkContinue, nil
		}
		seen[target] = true
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); err != nil {
			broken = append(broken, unitdoc.BrokenLink{Source: source, Target: target})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return broken, nil
}
