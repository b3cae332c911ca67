package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestNewLogger_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.InfoContext(WithRequestID(context.Background(), "req-1"), "hello", "k", "v")
	logger.With("component", "test").InfoContext(context.Background(), "plain")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "component=test")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("request_id=")))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
