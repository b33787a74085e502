package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Page Output
// Expanded pages go to a temp directory and replace the output on commit

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "site")

	// When I save a page
	err := store.Save(context.Background(), &snipdoc.Page{
		Path:    "setup/index.md",
		Content: "# Setup\n\nInstall drift 2.18.0.",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "site.tmp", "setup", "index.md")
	content, err := os.ReadFile(tempPath)
	require.NoError(t, err, "file should exist in temp directory")
	assert.Equal(t, "# Setup\n\nInstall drift 2.18.0.", string(content))

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	// Given an existing output directory with a stale page
	base := t.TempDir()
	writeFile(t, base, "site/stale.md", "old")
	store := fs.NewFileStore(base, "site")
	err := store.Save(context.Background(), &snipdoc.Page{Path: "a.md", Content: "# A"})
	require.NoError(t, err)

	// When I commit
	err = store.Commit()
	require.NoError(t, err)

	// Then the new page exists
	_, err = os.Stat(filepath.Join(base, "site", "a.md"))
	require.NoError(t, err, "file should exist in final directory after commit")

	// And the stale page is gone
	_, err = os.Stat(filepath.Join(base, "site", "stale.md"))
	assert.True(t, os.IsNotExist(err), "stale page should be removed by commit")

	// And temp directory is gone
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := fs.NewFileStore(base, "site")
	err := store.Save(context.Background(), &snipdoc.Page{Path: "a.md", Content: "# A"})
	require.NoError(t, err)

	// When I abort
	err = store.Abort()
	require.NoError(t, err)

	// Then temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_DiscardsLeftoverTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a temp directory left behind by an interrupted build
	base := t.TempDir()
	writeFile(t, base, "site.tmp/stale.md", "old")
	store := fs.NewFileStore(base, "site")

	// When I save a page and commit
	err := store.Save(context.Background(), &snipdoc.Page{Path: "a.md", Content: "# A"})
	require.NoError(t, err)
	err = store.Save(context.Background(), &snipdoc.Page{Path: "b.md", Content: "# B"})
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	// Then both new pages are committed
	_, err = os.Stat(filepath.Join(base, "site", "a.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "site", "b.md"))
	require.NoError(t, err)

	// And the leftover page is not
	_, err = os.Stat(filepath.Join(base, "site", "stale.md"))
	assert.True(t, os.IsNotExist(err), "leftover page should not be committed")
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "site")

	for _, path := range []string{"", "../../etc/passwd", "..", "/etc/passwd"} {
		err := store.Save(context.Background(), &snipdoc.Page{Path: path, Content: "bad content"})

		require.Error(t, err, "path %q should be rejected", path)
		assert.Equal(t, snipdoc.EINVALID, snipdoc.ErrorCode(err))
	}
}
