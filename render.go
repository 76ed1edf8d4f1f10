package unitdoc

import "context"

// FileWriter writes generated files below a fixed root directory.
type FileWriter interface {
	// WriteFile writes data to name, relative to the writer's root.
	// The root directory is created if it does not exist.
	WriteFile(ctx context.Context, name string, data []byte) error
}

// SiteRenderer renders the HTML documentation portal.
type SiteRenderer interface {
	// RenderSite writes one page per unit, an index page, the stylesheet and
	// the search script. Units must already be deduplicated and sorted.
	RenderSite(ctx context.Context, units []*Unit, w FileWriter) error
}

// ReferenceRenderer renders the flat Markdown reference document.
type ReferenceRenderer interface {
	// RenderReference writes a single document summarizing all units.
	RenderReference(ctx context.Context, units []*Unit, w FileWriter) error
}
