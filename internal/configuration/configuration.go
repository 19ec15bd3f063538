// Package configuration reads the application's environment-style
// configuration files and maps their keys onto typed settings.
package configuration

import "strconv"

// Environment keys recognized in configuration files.
const (
	KeySnapshotPath = "FILEMAP_SNAPSHOT"
	KeyCrawlRoot    = "FILEMAP_ROOT"
	KeyIgnore       = "FILEMAP_IGNORE"
	KeyVerbose      = "FILEMAP_VERBOSE"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is a configuration handler over a previously given provider.
type Handler struct {
	configReader genericConfigProvider
}

// NewHandler returns a configuration [Handler] for the given provider.
func NewHandler(reader genericConfigProvider) *Handler {
	return &Handler{configReader: reader}
}

// ReadGeneric reads generic Unix-type configuration files into a map
// (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.configReader.Read(filenames...)
}

// MapKeyToString returns the string value for a key, empty when unset.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the boolean value for a key, false when unset or not
// parseable.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}

// MapKeyToInt returns the integer value for a key, -1 when unset or not
// parseable.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
