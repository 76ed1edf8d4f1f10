package htmltomarkdown

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/fwojciec/unitdoc"
)

// Ensure ExportWriter implements unitdoc.FileWriter at compile time.
var _ unitdoc.FileWriter = (*ExportWriter)(nil)

// ExportWriter decorates a site writer. Every unit page written through it
// is also reduced to its content area, converted to Markdown and written to
// Markdown as <unit>.md. Other files pass through untouched.
type ExportWriter struct {
	Next      unitdoc.FileWriter
	Markdown  unitdoc.FileWriter
	Extractor unitdoc.ContentExtractor
	Converter unitdoc.Converter

	// Skip lists page names that are not unit pages.
	Skip []string
}

// WriteFile writes the file through Next and exports unit pages.
func (w *ExportWriter) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := w.Next.WriteFile(ctx, name, data); err != nil {
		return err
	}
	if path.Ext(name) != ".html" || w.skipped(name) {
		return nil
	}

	content, err := w.Extractor.ExtractContent(string(data))
	if err != nil {
		return fmt.Errorf("exporting %s: %w", name, err)
	}
	md, err := w.Converter.Convert(content)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", name, err)
	}
	return w.Markdown.WriteFile(ctx, strings.TrimSuffix(name, ".html")+".md", []byte(md))
}

func (w *ExportWriter) skipped(name string) bool {
	for _, s := range w.Skip {
		if s == name {
			return true
		}
	}
	return false
}
