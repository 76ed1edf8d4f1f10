package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unitdoc"
)

var (
	_ unitdoc.SiteRenderer      = (*LoggingSiteRenderer)(nil)
	_ unitdoc.ReferenceRenderer = (*LoggingReferenceRenderer)(nil)
	_ unitdoc.FileWriter        = (*LoggingFileWriter)(nil)
)

// LoggingSiteRenderer wraps a SiteRenderer with logging.
type LoggingSiteRenderer struct {
	next   unitdoc.SiteRenderer
	logger *slog.Logger
}

// NewLoggingSiteRenderer creates a new LoggingSiteRenderer.
func NewLoggingSiteRenderer(next unitdoc.SiteRenderer, logger *slog.Logger) *LoggingSiteRenderer {
	return &LoggingSiteRenderer{next: next, logger: logger}
}

// RenderSite delegates to the wrapped renderer and logs the operation.
func (r *LoggingSiteRenderer) RenderSite(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render site",
			"units", len(units),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderSite(ctx, units, w)
}

// LoggingReferenceRenderer wraps a ReferenceRenderer with logging.
type LoggingReferenceRenderer struct {
	next   unitdoc.ReferenceRenderer
	logger *slog.Logger
}

// NewLoggingReferenceRenderer creates a new LoggingReferenceRenderer.
func NewLoggingReferenceRenderer(next unitdoc.ReferenceRenderer, logger *slog.Logger) *LoggingReferenceRenderer {
	return &LoggingReferenceRenderer{next: next, logger: logger}
}

// RenderReference delegates to the wrapped renderer and logs the operation.
func (r *LoggingReferenceRenderer) RenderReference(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render reference",
			"units", len(units),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderReference(ctx, units, w)
}

// LoggingFileWriter wraps a FileWriter with debug logging.
type LoggingFileWriter struct {
	next   unitdoc.FileWriter
	logger *slog.Logger
}

// NewLoggingFileWriter creates a new LoggingFileWriter.
func NewLoggingFileWriter(next unitdoc.FileWriter, logger *slog.Logger) *LoggingFileWriter {
	return &LoggingFileWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer and logs the operation.
func (w *LoggingFileWriter) WriteFile(ctx context.Context, name string, data []byte) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write",
			"file", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFile(ctx, name, data)
}
