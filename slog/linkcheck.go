package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unitdoc"
)

// Ensure LoggingLinkChecker implements unitdoc.LinkChecker.
var _ unitdoc.LinkChecker = (*LoggingLinkChecker)(nil)

// LoggingLinkChecker wraps a LinkChecker with logging.
type LoggingLinkChecker struct {
	next   unitdoc.LinkChecker
	name   string
	logger *slog.Logger
}

// NewLoggingLinkChecker creates a new LoggingLinkChecker. name identifies
// the checker in log lines.
func NewLoggingLinkChecker(next unitdoc.LinkChecker, name string, logger *slog.Logger) *LoggingLinkChecker {
	return &LoggingLinkChecker{next: next, name: name, logger: logger}
}

// CheckLinks delegates to the wrapped checker and logs the operation.
func (c *LoggingLinkChecker) CheckLinks(ctx context.Context, path string) (broken []unitdoc.BrokenLink, err error) {
	defer func(begin time.Time) {
		c.logger.Info("link check",
			"checker", c.name,
			"path", path,
			"broken", len(broken),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CheckLinks(ctx, path)
}
