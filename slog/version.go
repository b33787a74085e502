package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/snipdoc"
)

// Ensure LoggingVersionLoader implements snipdoc.VersionLoader.
var _ snipdoc.VersionLoader = (*LoggingVersionLoader)(nil)

// LoggingVersionLoader wraps a VersionLoader with logging.
type LoggingVersionLoader struct {
	next   snipdoc.VersionLoader
	logger *slog.Logger
}

// NewLoggingVersionLoader creates a new LoggingVersionLoader.
func NewLoggingVersionLoader(next snipdoc.VersionLoader, logger *slog.Logger) *LoggingVersionLoader {
	return &LoggingVersionLoader{next: next, logger: logger}
}

// LoadVersions delegates to the wrapped loader and logs the load.
func (l *LoggingVersionLoader) LoadVersions(path string) (versions snipdoc.VersionMap, err error) {
	defer func(begin time.Time) {
		l.logger.Info("versions load",
			"path", path,
			"count", len(versions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadVersions(path)
}
