package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/macro"
)

// Run executes the expand command.
func (c *ExpandCmd) Run(deps *Dependencies) error {
	templates := make([]*snipdoc.Page, 0, len(c.Templates))
	for _, name := range c.Templates {
		path := filepath.Join(deps.Config.Root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			err = snipdoc.Wrapf(err, snipdoc.EMISSING, "cannot read template %s: %v", path, err)
			fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
			return err
		}
		templates = append(templates, &snipdoc.Page{
			Path:    filepath.ToSlash(filepath.Clean(name)),
			Content: string(data),
		})
	}

	out := c.Out
	if out == "" {
		out = deps.Config.Out
	}
	if err := checkOutDir(out, deps.Config.Root); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
		return err
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = deps.Config.Concurrency
	}

	renderer := macro.NewRenderer(deps.Snippets)
	builder := &macro.Builder{
		Env:         macro.NewEnv(deps.Versions, renderer, deps.Stripper),
		Store:       deps.NewStore(out),
		Concurrency: concurrency,
	}

	err := builder.Build(deps.Ctx, templates, func(p snipdoc.ExpandProgress) {
		if p.Error != nil || deps.Logger == nil {
			return
		}
		deps.Logger.Info("page expanded", "path", p.Path, "completed", p.Completed, "total", p.Total)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Expanded %d pages into %s\n", len(templates), out)
	return nil
}

// checkOutDir rejects an output directory that equals or contains the
// project root. Commit replaces the output directory.
func checkOutDir(out, root string) error {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return snipdoc.Wrapf(err, snipdoc.EINVALID, "invalid output directory %s: %v", out, err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return snipdoc.Wrapf(err, snipdoc.EINVALID, "invalid root %s: %v", root, err)
	}
	rel, err := filepath.Rel(absOut, absRoot)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return snipdoc.Errorf(snipdoc.EINVALID, "output directory %s must not contain the project root %s", out, root)
	}
	return nil
}
