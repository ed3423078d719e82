package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"log/slog"
)

// decodeRecord parses the last JSON record written to buf.
func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &record); err != nil {
		t.Fatalf("invalid JSON record %q: %v", lines[len(lines)-1], err)
	}
	return record
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("embedded slog.Logger is nil")
	}
}

func TestLogger_EmitsJSONWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Info(context.Background(), "world generated", "planets", 5)

	record := decodeRecord(t, &buf)
	if record["msg"] != "world generated" {
		t.Errorf("msg = %v, expected 'world generated'", record["msg"])
	}
	if record["planets"] != float64(5) {
		t.Errorf("planets = %v, expected 5", record["planets"])
	}
	runID, ok := record["run_id"].(string)
	if !ok || len(runID) != 16 {
		t.Errorf("run_id = %v, expected 16 hex characters", record["run_id"])
	}
}

func TestLogger_DistinctRunIDs(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	NewLoggerWithWriter(&buf1).Info(context.Background(), "a")
	NewLoggerWithWriter(&buf2).Info(context.Background(), "b")

	id1 := decodeRecord(t, &buf1)["run_id"]
	id2 := decodeRecord(t, &buf2)["run_id"]
	if id1 == id2 {
		t.Errorf("two loggers share run_id %v", id1)
	}
}

func TestLogger_TickFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	ctx := WithTick(context.Background(), 1234)
	logger.Info(ctx, "landed")

	record := decodeRecord(t, &buf)
	if record["tick"] != float64(1234) {
		t.Errorf("tick = %v, expected 1234", record["tick"])
	}
}

func TestLogger_NoTickWithoutContextTag(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Info(context.Background(), "plain")

	if _, present := decodeRecord(t, &buf)["tick"]; present {
		t.Error("tick attribute present on an untagged context")
	}
}

func TestTickFromContext(t *testing.T) {
	if _, ok := TickFromContext(context.Background()); ok {
		t.Error("bare context reported a tick")
	}

	tick, ok := TickFromContext(WithTick(context.Background(), 7))
	if !ok || tick != 7 {
		t.Errorf("TickFromContext = %d, %v, expected 7, true", tick, ok)
	}
}

func TestLogger_ErrorAttachesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Error(context.Background(), "step failed", errors.New("fuel pump jammed"))

	record := decodeRecord(t, &buf)
	if record["error"] != "fuel pump jammed" {
		t.Errorf("error = %v, expected the wrapped message", record["error"])
	}
	if record["level"] != "ERROR" {
		t.Errorf("level = %v, expected ERROR", record["level"])
	}
}

func TestLogger_ErrorWithNilError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Error(context.Background(), "ended", nil)

	if _, present := decodeRecord(t, &buf)["error"]; present {
		t.Error("error attribute present for a nil error")
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.value, func(t *testing.T) {
			t.Setenv("STARDRIFT_LOG_LEVEL", tt.value)
			if got := levelFromEnv(); got != tt.want {
				t.Errorf("levelFromEnv() with %q = %v, expected %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLogger_DebugSuppressedAtDefaultLevel(t *testing.T) {
	os.Unsetenv("STARDRIFT_LOG_LEVEL")

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Debug(context.Background(), "noise")
	if buf.Len() != 0 {
		t.Errorf("debug record emitted at default level: %s", buf.String())
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		context string
		args    []any
		want    string
	}{
		{"plain context", base, "loading config", nil, "loading config: boom"},
		{"formatted context", base, "loading %s", []any{"config.json"}, "loading config.json: boom"},
		{"nil error", nil, "anything", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapError(tt.err, tt.context, tt.args...)
			if tt.err == nil {
				if wrapped != nil {
					t.Errorf("WrapError(nil) = %v, expected nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.want {
				t.Errorf("WrapError() = %q, expected %q", wrapped.Error(), tt.want)
			}
			if !errors.Is(wrapped, base) {
				t.Error("wrapped error lost its cause")
			}
		})
	}
}
