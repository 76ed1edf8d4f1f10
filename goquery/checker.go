// Package goquery inspects generated HTML pages using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unitdoc"
)

// Ensure Checker implements unitdoc.LinkChecker at compile time.
var _ unitdoc.LinkChecker = (*Checker)(nil)

// linkAttrs maps the selectors checked to the attribute holding the link.
var linkAttrs = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"link[href]", "href"},
	{"script[src]", "src"},
}

// Checker verifies local links in the HTML pages of a portal directory.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// CheckLinks checks every *.html file directly inside dir and returns the
// links whose targets do not exist, ordered by page name.
func (c *Checker) CheckLinks(ctx context.Context, dir string) ([]unitdoc.BrokenLink, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, unitdoc.Errorf(unitdoc.ENOTFOUND, "output directory not found: %s", dir)
		}
		return nil, err
	}

	var pages []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".html") {
			pages = append(pages, e.Name())
		}
	}
	sort.Strings(pages)

	broken := []unitdoc.BrokenLink{}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		links, err := c.checkPage(dir, page)
		if err != nil {
			return nil, err
		}
		broken = append(broken, links...)
	}
	return broken, nil
}

func (c *Checker) checkPage(dir, page string) ([]unitdoc.BrokenLink, error) {
	f, err := os.Open(filepath.Join(dir, page))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, unitdoc.Errorf(unitdoc.EINVALID, "failed to parse HTML %s: %v", page, err)
	}

	var broken []unitdoc.BrokenLink
	seen := make(map[string]bool)
	for _, la := range linkAttrs {
		doc.Find(la.selector).Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr(la.attr)
			target, ok := unitdoc.LocalTarget(href)
			if !ok || seen[target] {
				return
			}
			seen[target] = true
			if !exists(filepath.Join(dir, filepath.FromSlash(target))) {
				broken = append(broken, unitdoc.BrokenLink{Source: page, Target: target})
			}
		})
	}
	return broken, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
