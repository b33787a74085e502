// Package macro implements the template macros used by documentation pages:
// snippet rendering, the version table and markup stripping.
package macro

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/snipdoc"
)

// Format selects how a snippet is rendered.
type Format int

// Format constants for Renderer.
const (
	// FormatHTML wraps the raw body in a raw-HTML block with an anchor id.
	FormatHTML Format = iota

	// FormatMarkdown strips markup from the body and fences it.
	FormatMarkdown
)

// Renderer renders snippets as code blocks ready to splice into a page.
type Renderer struct {
	Snippets snipdoc.SnippetFinder

	// Stripper removes highlighting markup for FormatMarkdown.
	// Bodies are fenced unchanged if nil.
	Stripper snipdoc.MarkupStripper

	// NewID generates anchor ids. Defaults to snipdoc.NewAnchorID.
	NewID func() string

	Format Format
}

// NewRenderer creates a new Renderer that renders HTML blocks.
func NewRenderer(snippets snipdoc.SnippetFinder) *Renderer {
	return &Renderer{
		Snippets: snippets,
		NewID:    snipdoc.NewAnchorID,
	}
}

// Render finds the requested snippet and returns its code block with
// every line after the first indented by req.Indent spaces.
func (r *Renderer) Render(req snipdoc.SnippetRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	snippet, err := r.Snippets.FindSnippet(req.Name, req.Paths)
	if err != nil {
		return "", err
	}

	var block string
	switch r.Format {
	case FormatMarkdown:
		body := snippet.Body
		if r.Stripper != nil {
			body = r.Stripper.Strip(body)
		}
		// Leading newline keeps the fence line out of the indentation,
		// like the HTML wrapper.
		block = "\n" + snipdoc.MarkdownCodeBlock(body, languageFromPath(snippet.Path))
	default:
		newID := r.NewID
		if newID == nil {
			newID = snipdoc.NewAnchorID
		}
		block = snipdoc.RenderBlock(newID(), snippet.Body)
	}

	return snipdoc.IndentBlock(block, req.Indent), nil
}

// languageFromPath guesses the fence language from a snippet file name,
// e.g. "lib/snippets/setup/database.dart.excerpt.json" is "dart".
func languageFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".json")
	name = strings.TrimSuffix(name, ".excerpt")
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
