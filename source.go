package unitdoc

import "context"

// SourceFinder discovers unit documents below a root directory.
type SourceFinder interface {
	// FindSources returns matching file paths in a stable, lexical order.
	// The order is significant: it decides which unit wins a name collision.
	FindSources(ctx context.Context, root string) ([]string, error)
}

// UnitParser reads one unit document from disk and normalizes it.
type UnitParser interface {
	// ParseUnit returns the normalized unit stored at path.
	// Returns EINVALID if the document has no unit element or if the unit
	// name is missing or not a single file name.
	ParseUnit(ctx context.Context, path string) (*Unit, error)
}
