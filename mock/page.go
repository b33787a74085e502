package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/snipdoc"
)

var _ snipdoc.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of snipdoc.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *snipdoc.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *snipdoc.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// MemoryPageStore records saved pages in memory. It is safe for concurrent use.
type MemoryPageStore struct {
	mu        sync.Mutex
	Pages     map[string]string
	Committed bool
	Aborted   bool
}

var _ snipdoc.PageStore = (*MemoryPageStore)(nil)

// NewMemoryPageStore creates an empty MemoryPageStore.
func NewMemoryPageStore() *MemoryPageStore {
	return &MemoryPageStore{Pages: make(map[string]string)}
}

func (s *MemoryPageStore) Save(_ context.Context, page *snipdoc.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Pages[page.Path] = page.Content
	return nil
}

func (s *MemoryPageStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Committed = true
	return nil
}

func (s *MemoryPageStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Aborted = true
	return nil
}
