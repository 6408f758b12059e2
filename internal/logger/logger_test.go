package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(LevelInfo, &buf).log(tt.level, tt.message, tt.fields, tt.err)
			assert.Equal(t, tt.want, buf.Len() > 0)
		})
	}
}

func TestLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("send failed", Fields{"status": 500, "channel": "@deals"}, errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "send failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])

	ts, ok := entry["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)

	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(500), fields["status"])
	assert.Equal(t, "@deals", fields["channel"])
}

func TestLogger_NoFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	New(LevelInfo, &buf).Info("plain", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "fields")
	assert.NotContains(t, entries[0], "error")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", nil, nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "ERROR", entries[1]["level"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: " Warn ", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New(LevelDebug, &buf))

	Debug("debug", nil)
	Info("info", Fields{"a": 1})
	Warn("warn", nil)
	Error("error", nil, errors.New("x"))

	assert.Len(t, decodeLines(t, &buf), 4)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("messages.sent")
	m.IncrCounter("messages.sent")
	m.RecordTiming("telegram.send", 150*time.Millisecond)
	m.RecordTiming("telegram.send", 50*time.Millisecond)

	fields := m.Fields()
	assert.Equal(t, int64(2), fields["messages.sent"])
	assert.Equal(t, int64(200), fields["telegram.send_ms"])

	// Fields is a copy
	fields["messages.sent"] = int64(99)
	assert.Equal(t, int64(2), m.Fields()["messages.sent"])
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrCounter("c")
			m.RecordTiming("t", time.Millisecond)
		}()
	}
	wg.Wait()

	fields := m.Fields()
	assert.Equal(t, int64(50), fields["c"])
	assert.Equal(t, int64(50), fields["t_ms"])
}
