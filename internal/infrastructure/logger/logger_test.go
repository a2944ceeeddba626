package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"jan-server/services/application-settings-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("chatty"))
}

func TestNewAppliesConfiguredLevel(t *testing.T) {
	log := New(&config.Config{ServiceName: "application-settings-api", Environment: "test", LogLevel: "error"})
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}
