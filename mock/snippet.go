package mock

import "github.com/fwojciec/snipdoc"

var _ snipdoc.SnippetFinder = (*SnippetFinder)(nil)

// SnippetFinder is a mock implementation of snipdoc.SnippetFinder.
type SnippetFinder struct {
	FindSnippetFn func(name string, paths []string) (*snipdoc.Snippet, error)
}

func (f *SnippetFinder) FindSnippet(name string, paths []string) (*snipdoc.Snippet, error) {
	return f.FindSnippetFn(name, paths)
}
