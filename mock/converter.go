package mock

import "github.com/fwojciec/unitdoc"

var (
	_ unitdoc.Converter        = (*Converter)(nil)
	_ unitdoc.ContentExtractor = (*ContentExtractor)(nil)
)

// Converter is a mock implementation of unitdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// ContentExtractor is a mock implementation of unitdoc.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractContent(html string) (string, error) {
	return e.ExtractContentFn(html)
}
