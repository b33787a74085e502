package main

import (
	"fmt"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/macro"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	r := macro.NewRenderer(deps.Snippets)
	if c.Markdown {
		r.Format = macro.FormatMarkdown
		r.Stripper = deps.Stripper
	}

	block, err := r.Render(snipdoc.SnippetRequest{
		Name:   c.Name,
		Paths:  c.Files,
		Indent: c.Indent,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, block)
	return nil
}
