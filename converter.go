package unitdoc

// ContentExtractor reduces a rendered unit page to its documentation content.
type ContentExtractor interface {
	// ExtractContent returns the HTML of the page's content area with
	// navigation, scripts and diagram blocks removed.
	ExtractContent(html string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ContentExtractor).
	Convert(html string) (string, error)
}
