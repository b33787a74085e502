package fs

import (
	"strings"

	"github.com/fwojciec/snipdoc"
)

// Ensure SnippetStore implements snipdoc.SnippetFinder at compile time.
var _ snipdoc.SnippetFinder = (*SnippetStore)(nil)

// SnippetStore finds snippets in JSON snippet files.
// Each file is a JSON object mapping snippet names to bodies.
type SnippetStore struct {
	baseDir string
}

// NewSnippetStore creates a new SnippetStore.
// Relative candidate paths are resolved against baseDir, the
// documentation project root.
func NewSnippetStore(baseDir string) *SnippetStore {
	return &SnippetStore{baseDir: baseDir}
}

// FindSnippet returns the snippet from the first candidate file that
// contains name. Files are read only until a match is found.
func (s *SnippetStore) FindSnippet(name string, paths []string) (*snipdoc.Snippet, error) {
	for _, p := range paths {
		table, err := readTable(resolve(s.baseDir, p), "snippet")
		if err != nil {
			return nil, err
		}
		if body, ok := table[name]; ok {
			return &snipdoc.Snippet{Name: name, Body: body, Path: p}, nil
		}
	}
	return nil, snipdoc.Errorf(snipdoc.ENOTFOUND, "could not find snippet %q in [%s]", name, strings.Join(paths, ", "))
}
