package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unitdoc"
)

// Ensure LoggingUnitParser implements unitdoc.UnitParser.
var _ unitdoc.UnitParser = (*LoggingUnitParser)(nil)

// LoggingUnitParser wraps a UnitParser with logging. Successful parses are
// logged at debug level and failures at warn level.
type LoggingUnitParser struct {
	next   unitdoc.UnitParser
	logger *slog.Logger
}

// NewLoggingUnitParser creates a new LoggingUnitParser.
func NewLoggingUnitParser(next unitdoc.UnitParser, logger *slog.Logger) *LoggingUnitParser {
	return &LoggingUnitParser{next: next, logger: logger}
}

// ParseUnit delegates to the wrapped parser and logs the operation.
func (p *LoggingUnitParser) ParseUnit(ctx context.Context, path string) (u *unitdoc.Unit, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Warn("parse failed",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logger.Debug("parse",
			"path", path,
			"unit", u.Name,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ParseUnit(ctx, path)
}
