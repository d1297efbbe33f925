package fs_test

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/adapters/fs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "app.ts"))
	touch(t, filepath.Join(root, "pages", "index", "index.wxml"))
	touch(t, filepath.Join(root, "node_modules", "lib", "index.js"))
	touch(t, filepath.Join(root, ".git", "HEAD"))
	touch(t, filepath.Join(root, "notes.tmp"))

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, []string{"node_modules", "*.tmp"}) {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, rel)
	}
	slices.Sort(got)

	assert.Equal(t, []string{"app.ts", filepath.Join("pages", "index", "index.wxml")}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.js", "b.js", "c.js"} {
		touch(t, filepath.Join(root, name))
	}

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")

	var errs []error
	for path, err := range fs.NewWalker().WalkFiles(root, nil) {
		assert.Empty(t, path)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], iofs.ErrNotExist)
}
