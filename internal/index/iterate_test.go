package index_test

import (
	"slices"
	"testing"

	"github.com/packsmith/filemap/internal/index"
	"github.com/packsmith/filemap/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_YieldsCanonicalKeys(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	keys := slices.Collect(fm.Files())
	assert.ElementsMatch(t, []string{"src/a.js", "src/sub/b.js", "link.js"}, keys)
}

func TestFiles_FreshCallYieldsFreshPass(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	first := slices.Collect(fm.Files())
	second := slices.Collect(fm.Files())
	assert.ElementsMatch(t, first, second)
}

func TestFiles_EarlyBreak(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	var seen []string
	for key := range fm.Files() {
		seen = append(seen, key)

		break
	}
	assert.Len(t, seen, 1)
}

func TestAllFiles_MatchesAbsoluteFiles(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	assert.ElementsMatch(t, slices.Collect(fm.AbsoluteFiles()), fm.AllFiles())
}

func TestAbsoluteFiles_ResolvedAgainstRoot(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	assert.ElementsMatch(t, []string{
		"/proj/src/a.js",
		"/proj/src/sub/b.js",
		"/proj/link.js",
	}, fm.AllFiles())
}

func TestSnapshot_IsMutationIndependent(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	snap := fm.Snapshot()

	fm.AddOrModify("late.js", schema.FileMetadata{Mtime: 1, Size: 1})
	_, removed := fm.Remove("src/a.js")
	require.True(t, removed)

	assert.Len(t, snap, 3)
	assert.Contains(t, snap, "src/a.js")
	assert.NotContains(t, snap, "late.js")
}

func TestSnapshot_RoundTripsIntoFreshIndex(t *testing.T) {
	t.Parallel()
	fm := newTestMap(t)

	restored, err := index.NewFileMap("/proj", fm.Snapshot())
	require.NoError(t, err)

	for key := range fm.Files() {
		assert.True(t, restored.Exists(key))

		wantSize, _ := fm.Size(key)
		gotSize, ok := restored.Size(key)
		require.True(t, ok)
		assert.Equal(t, wantSize, gotSize)

		wantDeps, _ := fm.Dependencies(key)
		gotDeps, ok := restored.Dependencies(key)
		require.True(t, ok)
		assert.Equal(t, wantDeps, gotDeps)

		wantStats, _ := fm.LinkStats(key)
		gotStats, ok := restored.LinkStats(key)
		require.True(t, ok)
		assert.Equal(t, wantStats, gotStats)
	}

	assert.ElementsMatch(t, fm.AllFiles(), restored.AllFiles())
}
