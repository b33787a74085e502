package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/snipdoc"
)

// Ensure LoggingSnippetFinder implements snipdoc.SnippetFinder.
var _ snipdoc.SnippetFinder = (*LoggingSnippetFinder)(nil)

// LoggingSnippetFinder wraps a SnippetFinder with logging.
type LoggingSnippetFinder struct {
	next   snipdoc.SnippetFinder
	logger *slog.Logger
}

// NewLoggingSnippetFinder creates a new LoggingSnippetFinder.
func NewLoggingSnippetFinder(next snipdoc.SnippetFinder, logger *slog.Logger) *LoggingSnippetFinder {
	return &LoggingSnippetFinder{next: next, logger: logger}
}

// FindSnippet delegates to the wrapped finder and logs the lookup.
func (f *LoggingSnippetFinder) FindSnippet(name string, paths []string) (snippet *snipdoc.Snippet, err error) {
	defer func(begin time.Time) {
		var source string
		var size int
		if snippet != nil {
			source, size = snippet.Path, len(snippet.Body)
		}
		f.logger.Info("snippet lookup",
			"name", name,
			"candidates", len(paths),
			"source", source,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindSnippet(name, paths)
}
