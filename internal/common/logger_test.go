package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger_ReturnsSameInstance(t *testing.T) {
	first := GetLogger()
	require.NotNil(t, first)

	second := GetLogger()
	assert.Equal(t, first, second)
}

func TestInitLogger_ReplacesGlobalLogger(t *testing.T) {
	config := NewDefaultConfig()
	config.Logging.Level = "debug"

	logger := InitLogger(config)
	require.NotNil(t, logger)

	// Subsequent accessors hand out the configured logger
	assert.Equal(t, logger, GetLogger())
}
