package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/snipdoc"
)

// Ensure FileStore implements snipdoc.PageStore at compile time.
var _ snipdoc.PageStore = (*FileStore)(nil)

// FileStore implements snipdoc.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
// The first Save clears a temporary directory left behind by an earlier run.
type FileStore struct {
	baseDir string
	name    string

	resetOnce sync.Once
	resetErr  error
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, page *snipdoc.Page) error {
	rel := filepath.Clean(filepath.FromSlash(page.Path))
	if page.Path == "" || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return snipdoc.Errorf(snipdoc.EINVALID, "invalid page path %q", page.Path)
	}

	s.resetOnce.Do(func() {
		s.resetErr = os.RemoveAll(s.tempDir())
	})
	if s.resetErr != nil {
		return s.resetErr
	}

	fullPath := filepath.Join(s.tempDir(), rel)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(page.Content), 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
