package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/packsmith/filemap/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGeneric_Godotenv(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filemap.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"FILEMAP_SNAPSHOT=/var/cache/filemap.snap\nFILEMAP_ROOT=/proj\nFILEMAP_VERBOSE=true\n",
	), 0o644))

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	envMap, err := configHandler.ReadGeneric(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/filemap.snap", configHandler.MapKeyToString(envMap, configuration.KeySnapshotPath))
	assert.Equal(t, "/proj", configHandler.MapKeyToString(envMap, configuration.KeyCrawlRoot))
	assert.True(t, configHandler.MapKeyToBool(envMap, configuration.KeyVerbose))
}

func TestReadGeneric_MissingFile(t *testing.T) {
	t.Parallel()

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	_, err := configHandler.ReadGeneric(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

func TestMapKeyHelpers_Defaults(t *testing.T) {
	t.Parallel()

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	envMap := map[string]string{"NUM": "42", "BAD": "wat"}

	assert.Empty(t, configHandler.MapKeyToString(envMap, "MISSING"))
	assert.False(t, configHandler.MapKeyToBool(envMap, "MISSING"))
	assert.False(t, configHandler.MapKeyToBool(envMap, "BAD"))
	assert.Equal(t, 42, configHandler.MapKeyToInt(envMap, "NUM"))
	assert.Equal(t, -1, configHandler.MapKeyToInt(envMap, "BAD"))
	assert.Equal(t, -1, configHandler.MapKeyToInt(envMap, "MISSING"))
}
