package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/config"
)

func TestNewUsesJSONInCI(t *testing.T) {
	t.Setenv("CI", "true")
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{LogLevel: "debug"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("order_id", 7).Info("order created")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order created", line["msg"])
	assert.Equal(t, float64(7), line["order_id"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{LogLevel: "chatty"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
