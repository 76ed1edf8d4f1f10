package mock

import (
	"context"

	"github.com/fwojciec/unitdoc"
)

var (
	_ unitdoc.FileWriter        = (*FileWriter)(nil)
	_ unitdoc.SiteRenderer      = (*SiteRenderer)(nil)
	_ unitdoc.ReferenceRenderer = (*ReferenceRenderer)(nil)
)

// FileWriter is a mock implementation of unitdoc.FileWriter.
type FileWriter struct {
	WriteFileFn func(ctx context.Context, name string, data []byte) error
}

func (w *FileWriter) WriteFile(ctx context.Context, name string, data []byte) error {
	return w.WriteFileFn(ctx, name, data)
}

// MemoryWriter is a unitdoc.FileWriter that keeps written files in memory.
type MemoryWriter struct {
	Files map[string]string
	Order []string
}

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{Files: make(map[string]string)}
}

func (w *MemoryWriter) WriteFile(_ context.Context, name string, data []byte) error {
	if _, ok := w.Files[name]; !ok {
		w.Order = append(w.Order, name)
	}
	w.Files[name] = string(data)
	return nil
}

// SiteRenderer is a mock implementation of unitdoc.SiteRenderer.
type SiteRenderer struct {
	RenderSiteFn func(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error
}

func (r *SiteRenderer) RenderSite(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error {
	return r.RenderSiteFn(ctx, units, w)
}

// ReferenceRenderer is a mock implementation of unitdoc.ReferenceRenderer.
type ReferenceRenderer struct {
	RenderReferenceFn func(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error
}

func (r *ReferenceRenderer) RenderReference(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error {
	return r.RenderReferenceFn(ctx, units, w)
}
