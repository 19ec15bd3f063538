package schema_test

import (
	"testing"

	"github.com/packsmith/filemap/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestDependencyList_RoundTrip(t *testing.T) {
	t.Parallel()

	meta := schema.FileMetadata{
		Dependencies: schema.JoinDependencies([]string{"b.js", "c.js"}),
	}

	assert.Equal(t, []string{"b.js", "c.js"}, meta.DependencyList())
}

func TestDependencyList_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	meta := schema.FileMetadata{}

	assert.NotNil(t, meta.DependencyList())
	assert.Empty(t, meta.DependencyList())
}

func TestJoinDependencies_NoDelimiterCollision(t *testing.T) {
	t.Parallel()

	specifiers := []string{"./a", "../b", "pkg/sub", "@scope/name"}
	joined := schema.JoinDependencies(specifiers)

	meta := schema.FileMetadata{Dependencies: joined}
	assert.Equal(t, specifiers, meta.DependencyList())
}
