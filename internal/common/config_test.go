package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, 5*time.Second, config.Search.DelayDuration())
	assert.Equal(t, 30*time.Second, config.Search.TimeoutDuration())
	assert.Equal(t, 20, config.Search.MaxResults)
	assert.Equal(t, ".", config.Output.Directory)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFiles_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locus.toml")
	content := `
[search]
delay = "2s"
max_results = 50

[output]
directory = "/tmp/exports"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, config.Search.DelayDuration())
	assert.Equal(t, 50, config.Search.MaxResults)
	assert.Equal(t, "/tmp/exports", config.Output.Directory)
	assert.Equal(t, "debug", config.Logging.Level)

	// Untouched values keep their defaults
	assert.Equal(t, 30*time.Second, config.Search.TimeoutDuration())
}

func TestLoadFromFiles_MissingFileFails(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadFromFiles_EmptyPathsYieldDefaults(t *testing.T) {
	config, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, 20, config.Search.MaxResults)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LOCUS_LOG_LEVEL", "warn")
	t.Setenv("LOCUS_SEARCH_DELAY", "10s")
	t.Setenv("LOCUS_OUTPUT_DIR", "/data/out")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, 10*time.Second, config.Search.DelayDuration())
	assert.Equal(t, "/data/out", config.Output.Directory)
}

func TestApplyEnvOverrides_MalformedDurationIgnored(t *testing.T) {
	t.Setenv("LOCUS_SEARCH_DELAY", "not-a-duration")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, config.Search.DelayDuration())
}

func TestDurationFallbacks(t *testing.T) {
	c := SearchConfig{Delay: "bogus", RequestTimeout: ""}
	assert.Equal(t, 5*time.Second, c.DelayDuration())
	assert.Equal(t, 30*time.Second, c.TimeoutDuration())
}
