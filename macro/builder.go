package macro

import (
	"bytes"
	"context"
	"sync/atomic"

	"github.com/fwojciec/snipdoc"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages expanded at once when
// Builder.Concurrency is not set.
const DefaultConcurrency = 4

// Builder expands page templates through an Env and saves the results.
// A build is all-or-nothing: the first failing page aborts the store.
type Builder struct {
	Env         *Env
	Store       snipdoc.PageStore
	Concurrency int
}

// Build expands every template page and commits the store. Each template's
// Content is the template text and its Path is the output page path.
func (b *Builder) Build(ctx context.Context, templates []*snipdoc.Page, progress snipdoc.ExpandProgressFunc) (err error) {
	defer func() {
		if err != nil {
			_ = b.Store.Abort()
		}
	}()

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var completed atomic.Int64
	total := len(templates)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, tmpl := range templates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			err := b.expand(gctx, tmpl)
			if progress != nil {
				progress(snipdoc.ExpandProgress{
					Path:      tmpl.Path,
					Completed: int(completed.Add(1)),
					Total:     total,
					Error:     err,
				})
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return b.Store.Commit()
}

func (b *Builder) expand(ctx context.Context, tmpl *snipdoc.Page) error {
	var buf bytes.Buffer
	if err := b.Env.Execute(&buf, tmpl.Path, tmpl.Content); err != nil {
		return err
	}
	return b.Store.Save(ctx, &snipdoc.Page{Path: tmpl.Path, Content: buf.String()})
}
