package mock

import (
	"context"

	"github.com/fwojciec/unitdoc"
)

var (
	_ unitdoc.UnitParser   = (*UnitParser)(nil)
	_ unitdoc.SourceFinder = (*SourceFinder)(nil)
)

// UnitParser is a mock implementation of unitdoc.UnitParser.
type UnitParser struct {
	ParseUnitFn func(ctx context.Context, path string) (*unitdoc.Unit, error)
}

func (p *UnitParser) ParseUnit(ctx context.Context, path string) (*unitdoc.Unit, error) {
	return p.ParseUnitFn(ctx, path)
}

// SourceFinder is a mock implementation of unitdoc.SourceFinder.
type SourceFinder struct {
	FindSourcesFn func(ctx context.Context, root string) ([]string, error)
}

func (f *SourceFinder) FindSources(ctx context.Context, root string) ([]string, error) {
	return f.FindSourcesFn(ctx, root)
}
