package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/pkg/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewLogger_ContextEnrichment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "json", Output: &buf})

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithProductID(ctx, "PRD001")
	log.InfoContext(ctx, "sale recorded", slog.Int64("quantity", 5))

	line := decodeLine(t, &buf)
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "PRD001", line["product_id"])
	assert.Equal(t, "INFO", line["severity"])
	assert.EqualValues(t, 5, line["quantity"])
	assert.Equal(t, "req-1", logger.RequestID(ctx))
}

func TestNewLogger_Redaction(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		key   string
		value string
	}{
		{
			name:  "sensitive_key",
			log:   func(l *slog.Logger) { l.Info("connecting", slog.String("db_password", "hunter2")) },
			key:   "db_password",
			value: "***REDACTED***",
		},
		{
			name:  "inline_credential",
			log:   func(l *slog.Logger) { l.Info("retrying", slog.String("detail", "token=abc123 expired")) },
			key:   "detail",
			value: "token=***REDACTED*** expired",
		},
		{
			name:  "connection_url",
			log:   func(l *slog.Logger) { l.Info("dialing", slog.String("dsn", "postgres://ledger:s3cret@db:5432/ledger")) },
			key:   "dsn",
			value: "postgres://ledger:***REDACTED***@db:5432/ledger",
		},
		{
			name:  "plain_values_untouched",
			log:   func(l *slog.Logger) { l.Info("ok", slog.String("product_id", "PRD001")) },
			key:   "product_id",
			value: "PRD001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewLogger(&logger.LogConfig{Format: "json", Output: &buf}))
			assert.Equal(t, tt.value, decodeLine(t, &buf)[tt.key])
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "warn", Format: "text", Output: &buf})

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "debug", Format: "pretty", Output: &buf})

	log.With(slog.String("service", "engine")).Debug("allocated", slog.Int("batches", 2))

	out := buf.String()
	assert.Contains(t, out, "allocated")
	assert.Contains(t, out, "service")
	assert.Contains(t, out, "batches")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("bogus"))
}
