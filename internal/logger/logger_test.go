package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ServiceField(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	l := New(&buf, "bank")
	l.WithField("accountNo", "1001").Info("deposit")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bank", entry["service"])
	assert.Equal(t, "1001", entry["accountNo"])
	assert.Equal(t, "deposit", entry["msg"])
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer
	l := New(&buf, "gateway")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("skipped")
	assert.Empty(t, buf.String())
}
