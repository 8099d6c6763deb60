package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_WritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "debug")

	log.With("store", "subscription").Warn(context.Background(), "fallback", "table", "subscriptions")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "fallback", line["message"])
	assert.Equal(t, "subscription", line["store"])
	assert.Equal(t, "subscriptions", line["table"])
}

func TestZerologLogger_DanglingKey(t *testing.T) {
	var buf bytes.Buffer
	NewZerologLogger(&buf, "info").Info(context.Background(), "odd", "lonely")

	assert.Contains(t, buf.String(), `"!BADKEY":"lonely"`)
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	New(BackendZerolog, "info", &buf).Info(context.Background(), "z")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "zerolog emits JSON")

	buf.Reset()
	New("unknown", "info", &buf).Info(context.Background(), "s")
	assert.Contains(t, buf.String(), "msg=s")
}
