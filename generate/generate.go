// Package generate provides documentation generation orchestration.
// It coordinates source discovery, parsing, aggregation and rendering of
// the portal and the reference document.
package generate

import (
	"context"
	"fmt"

	"github.com/fwojciec/unitdoc"
)

// Generator orchestrates one documentation build.
type Generator struct {
	Finder   unitdoc.SourceFinder
	Parser   unitdoc.UnitParser
	Collator unitdoc.Collator

	Site       unitdoc.SiteRenderer
	SiteOutput unitdoc.FileWriter

	// Reference is optional; when nil no reference document is written.
	Reference       unitdoc.ReferenceRenderer
	ReferenceOutput unitdoc.FileWriter
}

// Result holds the outcome of a generation run.
type Result struct {
	// Files is the number of source files discovered.
	Files int

	// Parsed is the number of files that produced a unit.
	Parsed int

	// Unique is the number of units rendered.
	Unique int

	// Duplicates is the number of parsed units dropped because an earlier
	// file declared the same unit name.
	Duplicates int

	// Failed lists the files that could not be parsed.
	Failed []FileError

	// Units holds the rendered units in output order.
	Units []*unitdoc.Unit
}

// FileError records a source file that could not be parsed.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// ProgressEvent reports progress during a generation run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Unit      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressParsed
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// Generate builds the documentation for every source file below inputDir.
// Files that fail to parse are recorded in the result and skipped; failing
// to discover sources or to render output aborts the run.
func (g *Generator) Generate(ctx context.Context, inputDir string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	paths, err := g.Finder.FindSources(ctx, inputDir)
	if err != nil {
		return nil, fmt.Errorf("source discovery: %w", err)
	}

	total := len(paths)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	result := &Result{Files: total}
	units := make([]*unitdoc.Unit, 0, total)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		u, err := g.Parser.ParseUnit(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Failed = append(result.Failed, FileError{Path: path, Err: err})
			progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Path: path, Error: err})
			continue
		}

		units = append(units, u)
		progress(ProgressEvent{Type: ProgressParsed, Completed: i + 1, Total: total, Path: path, Unit: u.Name})
	}

	result.Parsed = len(units)
	result.Units, result.Duplicates = unitdoc.Aggregate(units, g.Collator)
	result.Unique = len(result.Units)

	if err := g.Site.RenderSite(ctx, result.Units, g.SiteOutput); err != nil {
		return nil, fmt.Errorf("rendering site: %w", err)
	}
	if g.Reference != nil {
		if err := g.Reference.RenderReference(ctx, result.Units, g.ReferenceOutput); err != nil {
			return nil, fmt.Errorf("rendering reference: %w", err)
		}
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}
