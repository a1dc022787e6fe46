package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor_VacioDerivaDelEntorno(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, levelFor(Config{Env: "development"}))
	assert.Equal(t, zerolog.InfoLevel, levelFor(Config{Env: "production"}))
}

func TestLevelFor_ExplicitoGanaAlEntorno(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, levelFor(Config{Env: "development", Level: "warn"}))
	assert.Equal(t, zerolog.ErrorLevel, levelFor(Config{Env: "production", Level: " ERROR "}))
}
