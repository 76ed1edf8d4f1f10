package mock

import (
	"context"

	"github.com/fwojciec/unitdoc"
)

var _ unitdoc.LinkChecker = (*LinkChecker)(nil)

// LinkChecker is a mock implementation of unitdoc.LinkChecker.
type LinkChecker struct {
	CheckLinksFn func(ctx context.Context, path string) ([]unitdoc.BrokenLink, error)
}

func (c *LinkChecker) CheckLinks(ctx context.Context, path string) ([]unitdoc.BrokenLink, error) {
	return c.CheckLinksFn(ctx, path)
}
