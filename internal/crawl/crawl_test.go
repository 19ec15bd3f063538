package crawl_test

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/packsmith/filemap/internal/crawl"
	"github.com/packsmith/filemap/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceA = `/**
 * @providesModule ModuleA
 */
import b from './b';
const c = require('./sub/c');
export * from 'pkg';
`

func newTestTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "a.js"), []byte(sourceA), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "sub", "c.js"), []byte("module.exports = 1;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello\n"), 0o644))
	require.NoError(t, os.Symlink("src/a.js", filepath.Join(root, "link.js")))

	return root
}

func newTestHandler() *crawl.Handler {
	return crawl.NewHandler(&schema.OS{}, &schema.Unix{})
}

func TestCrawl_RecordsRegularFilesAndSymlinks(t *testing.T) {
	t.Parallel()

	root := newTestTree(t)

	snap, err := newTestHandler().Crawl(context.Background(), root, crawl.Options{})
	require.NoError(t, err)

	assert.Equal(t, root, snap.RootDir)
	require.Len(t, snap.Files, 4)

	meta := snap.Files["src/a.js"]
	assert.Equal(t, uint64(len(sourceA)), meta.Size)
	assert.Positive(t, meta.Mtime)
	assert.False(t, meta.IsSymlink)

	link := snap.Files["link.js"]
	assert.True(t, link.IsSymlink)
	assert.Equal(t, "src/a.js", link.SymlinkTo)
	assert.Positive(t, link.Mtime)
}

func TestCrawl_ComputesSHA1(t *testing.T) {
	t.Parallel()

	root := newTestTree(t)

	snap, err := newTestHandler().Crawl(context.Background(), root, crawl.Options{ComputeSHA1: true})
	require.NoError(t, err)

	sum := sha1.Sum([]byte(sourceA)) //nolint:gosec
	assert.Equal(t, hex.EncodeToString(sum[:]), snap.Files["src/a.js"].SHA1)

	// Symlinks are recorded without content hashes.
	assert.Empty(t, snap.Files["link.js"].SHA1)
}

func TestCrawl_ExtractsDependenciesAndModuleName(t *testing.T) {
	t.Parallel()

	root := newTestTree(t)

	snap, err := newTestHandler().Crawl(context.Background(), root, crawl.Options{ExtractDependencies: true})
	require.NoError(t, err)

	meta := snap.Files["src/a.js"]
	assert.Equal(t, "ModuleA", meta.ID)
	assert.Equal(t, []string{"./b", "pkg", "./sub/c"}, meta.DependencyList())

	// Non-source files are not scanned.
	assert.Empty(t, snap.Files["notes.txt"].ID)
	assert.Empty(t, snap.Files["notes.txt"].Dependencies)
}

func TestCrawl_IgnoreFilter(t *testing.T) {
	t.Parallel()

	root := newTestTree(t)

	snap, err := newTestHandler().Crawl(context.Background(), root, crawl.Options{
		Ignore: regexp.MustCompile(`sub`),
	})
	require.NoError(t, err)

	assert.NotContains(t, snap.Files, "src/sub/c.js")
	assert.Contains(t, snap.Files, "src/a.js")
}

func TestCrawl_RelativeRoot(t *testing.T) {
	t.Parallel()

	_, err := newTestHandler().Crawl(context.Background(), "relative/root", crawl.Options{})
	require.Error(t, err)
}

func TestCrawl_CanceledContext(t *testing.T) {
	t.Parallel()

	root := newTestTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestHandler().Crawl(ctx, root, crawl.Options{})
	require.ErrorIs(t, err, context.Canceled)
}
