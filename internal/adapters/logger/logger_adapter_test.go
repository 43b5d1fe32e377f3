package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"real-estate-manager/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	tags     []string
	messages []map[string]interface{}
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, map[string]interface{}(message.(port.Fields)))
	return nil
}

func TestSlogAdapter_JSONWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogAdapter(SlogConfig{Writer: buf, Level: slog.LevelDebug, IsJSON: true}).
		WithFields(port.Fields{"component": "test"})

	logger.Error("Failed", errors.New("boom"), port.Fields{"listing_id": 7})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Failed", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "test", record["component"])
	assert.EqualValues(t, 7, record["listing_id"])
	assert.Equal(t, "boom", record["err"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogAdapter(SlogConfig{Writer: buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"trace_id": "t-1"})
	logger.Debug("skipped", nil)
	logger.Warn("Cache miss", port.Fields{"key": "regions"})

	require.Equal(t, []string{"warn"}, poster.tags)
	msg := poster.messages[0]
	assert.Equal(t, "Cache miss", msg["message"])
	assert.Equal(t, "t-1", msg["trace_id"])
	assert.Equal(t, "regions", msg["key"])

	// исходный адаптер не получил полей от WithFields
	adapter.Info("plain", nil)
	assert.NotContains(t, poster.messages[1], "trace_id")

	_, err = NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiloggerAdapter_FansOut(t *testing.T) {
	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	multi, err := NewMultiloggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: first}),
		NewSlogAdapter(SlogConfig{Writer: second}),
	)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"session_id": "s-1"}).Info("Request started", nil)

	for _, out := range []string{first.String(), second.String()} {
		assert.True(t, strings.Contains(out, "Request started") && strings.Contains(out, "session_id=s-1"), out)
	}

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}
