package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"exam_results_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithOutput_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput(&config.AppConfig{LogLevel: "debug", Environment: "Production"}, &buf)
	buf.Reset()

	Component("lookup_service").WithField("subject", "English").Info("Lookup completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Lookup completed", entry["msg"])
	assert.Equal(t, "lookup_service", entry["component"])
	assert.Equal(t, "English", entry["subject"])
	assert.Equal(t, "exam_results_bot", entry["service"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())
}

func TestInitWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput(&config.AppConfig{LogLevel: "loud"}, &buf)

	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")
	assert.Contains(t, buf.String(), "env=development")
}

func TestInitWithOutput_HooksDoNotAccumulate(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 3; i++ {
		InitWithOutput(&config.AppConfig{LogLevel: "info"}, &buf)
	}
	assert.Len(t, Get().Hooks[logrus.InfoLevel], 1)
}

func TestDefaultFieldsHook_KeepsExplicitFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput(&config.AppConfig{LogLevel: "info", Environment: "staging"}, &buf)
	buf.Reset()

	Log.WithField("env", "override").Info("x")
	assert.True(t, strings.Contains(buf.String(), `"env":"override"`))
}
