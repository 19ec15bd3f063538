package crawl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/packsmith/filemap/internal/crawl"
	"github.com/packsmith/filemap/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crawlSingleSource(t *testing.T, source string) schema.FileMetadata {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "mod.js"), []byte(source), 0o644))

	snap, err := newTestHandler().Crawl(context.Background(), root, crawl.Options{ExtractDependencies: true})
	require.NoError(t, err)

	return snap.Files["mod.js"]
}

func TestExtract_ImportForms(t *testing.T) {
	t.Parallel()

	meta := crawlSingleSource(t, `
import Default from 'a';
import { one, two } from "b";
import 'c';
`)

	assert.Equal(t, []string{"a", "b", "c"}, meta.DependencyList())
}

func TestExtract_ReExportsAndRequires(t *testing.T) {
	t.Parallel()

	meta := crawlSingleSource(t, `
export * from 'x';
export { y } from 'y';
const z = require('z');
`)

	assert.Equal(t, []string{"x", "y", "z"}, meta.DependencyList())
}

func TestExtract_DeduplicatesSpecifiers(t *testing.T) {
	t.Parallel()

	meta := crawlSingleSource(t, `
import a from 'dup';
const b = require('dup');
`)

	assert.Equal(t, []string{"dup"}, meta.DependencyList())
}

func TestExtract_NoDependencies(t *testing.T) {
	t.Parallel()

	meta := crawlSingleSource(t, "const x = 1;\n")

	assert.Empty(t, meta.Dependencies)
	assert.Empty(t, meta.ID)
	assert.Empty(t, meta.DependencyList())
	assert.NotNil(t, meta.DependencyList())
}

func TestExtract_ProvidesModule(t *testing.T) {
	t.Parallel()

	meta := crawlSingleSource(t, `/**
 * @providesModule Banana
 */
`)

	assert.Equal(t, "Banana", meta.ID)
}
