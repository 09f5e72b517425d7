package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksync/backend/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.ObservabilityConfig{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger(config.ObservabilityConfig{LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(config.ObservabilityConfig{LogLevel: "loudest", LogFormat: "json"})
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(config.ObservabilityConfig{LogLevel: "info", LogFormat: "xml"})
	assert.Error(t, err)
}
