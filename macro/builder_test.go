package macro_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/macro"
	"github.com/fwojciec/snipdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("expands and commits all pages", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPageStore()
		b := &macro.Builder{
			Env:         newTestEnv(map[string]string{"setup": "x"}),
			Store:       store,
			Concurrency: 2,
		}

		err := b.Build(context.Background(), []*snipdoc.Page{
			{Path: "index.md", Content: "drift {{ .versions.drift }}"},
			{Path: "setup.md", Content: `{{ load_snippet "setup" "lib/a.json" }}`},
			{Path: "plain.md", Content: "no macros"},
		}, nil)

		require.NoError(t, err)
		assert.True(t, store.Committed)
		assert.False(t, store.Aborted)
		assert.Equal(t, "drift 2.18.0", store.Pages["index.md"])
		assert.Contains(t, store.Pages["setup.md"], `<pre id="abcd1234"><code>x</code></pre>`)
		assert.Equal(t, "no macros", store.Pages["plain.md"])
	})

	t.Run("reports progress for every page", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var events []snipdoc.ExpandProgress
		b := &macro.Builder{Env: newTestEnv(nil), Store: mock.NewMemoryPageStore()}

		err := b.Build(context.Background(), []*snipdoc.Page{
			{Path: "a.md", Content: "a"},
			{Path: "b.md", Content: "b"},
		}, func(e snipdoc.ExpandProgress) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 2)
		completed := []int{events[0].Completed, events[1].Completed}
		assert.ElementsMatch(t, []int{1, 2}, completed)
		for _, e := range events {
			assert.Equal(t, 2, e.Total)
			assert.NoError(t, e.Error)
		}
	})

	t.Run("aborts store when a page fails", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPageStore()
		b := &macro.Builder{Env: newTestEnv(map[string]string{}), Store: store, Concurrency: 1}

		err := b.Build(context.Background(), []*snipdoc.Page{
			{Path: "ok.md", Content: "fine"},
			{Path: "broken.md", Content: `{{ load_snippet "missing" "lib/a.json" }}`},
		}, nil)

		require.Error(t, err)
		assert.Equal(t, snipdoc.ENOTFOUND, snipdoc.ErrorCode(err))
		assert.True(t, store.Aborted)
		assert.False(t, store.Committed)
	})

	t.Run("aborts store when save fails", func(t *testing.T) {
		t.Parallel()

		saveErr := errors.New("disk full")
		aborted := false
		store := &mock.PageStore{
			SaveFn: func(context.Context, *snipdoc.Page) error { return saveErr },
			CommitFn: func() error {
				t.Fatal("commit should not be called")
				return nil
			},
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}
		b := &macro.Builder{Env: newTestEnv(nil), Store: store}

		err := b.Build(context.Background(), []*snipdoc.Page{{Path: "a.md", Content: "a"}}, nil)

		assert.ErrorIs(t, err, saveErr)
		assert.True(t, aborted)
	})

	t.Run("commits empty build", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPageStore()
		b := &macro.Builder{Env: newTestEnv(nil), Store: store}

		require.NoError(t, b.Build(context.Background(), nil, nil))
		assert.True(t, store.Committed)
	})
}
