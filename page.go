package snipdoc

import "context"

// Page is a documentation page expanded from a template.
type Page struct {
	// Path is the page path relative to the output directory.
	Path    string
	Content string // Markdown
}

// ExpandProgress reports progress during page expansion.
type ExpandProgress struct {
	Path      string
	Completed int
	Total     int
	Error     error
}

// ExpandProgressFunc is called as pages are expanded.
type ExpandProgressFunc func(ExpandProgress)

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
