package snipdoc

// Snippet is a named code fragment found in a snippet file.
type Snippet struct {
	Name string
	Body string

	// Path is the candidate path the snippet was found in, as given by the caller.
	Path string
}

// SnippetRequest asks for a snippet from an ordered list of candidate files.
type SnippetRequest struct {
	Name  string
	Paths []string

	// Indent is the number of spaces added to every line after the first.
	Indent int
}

// Validate returns an error if the request contains invalid fields.
func (r *SnippetRequest) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "snippet name required")
	}
	if len(r.Paths) == 0 {
		return Errorf(EINVALID, "snippet %q: at least one file required", r.Name)
	}
	if r.Indent < 0 {
		return Errorf(EINVALID, "snippet %q: indent must not be negative", r.Name)
	}
	return nil
}

// SnippetFinder looks up snippets in snippet files.
type SnippetFinder interface {
	// FindSnippet searches paths in order and returns the snippet from the
	// first file that contains name. Later files are not read.
	// Returns EMISSING or EPARSE for an unreadable or malformed candidate,
	// and ENOTFOUND if no candidate contains name.
	FindSnippet(name string, paths []string) (*Snippet, error)
}
