package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}
}

func TestLogger_Zero_IsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Error("nobody hears this")
	logger.With(slog.String("k", "v")).Info("still nothing")

	if logger.Enabled(context.Background(), LevelError) {
		t.Error("zero logger reports enabled")
	}

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero logger should report defaults")
	}
}

func TestLogger_JSON_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))
	logger.Info("rule matched", slog.String("rule", "exponent"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "rule matched" {
		t.Errorf("expected msg, got %v", result["msg"])
	}

	if result["rule"] != "exponent" {
		t.Errorf("expected rule attr, got %v", result["rule"])
	}

	if _, ok := result["time"]; ok {
		t.Error("expected time to be omitted with layout none")
	}
}

func TestLogger_Text_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText))
	logger.Info("test message", slog.String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Error("message not found in text output")
	}

	if !strings.Contains(output, "key=value") {
		t.Error("key=value not found in text output")
	}
}

func TestLogger_LogMethods_RespectLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(tt.minLevel))
			tt.logFunc(logger, "test message")

			if hasOutput := buf.Len() > 0; hasOutput != tt.logged {
				t.Errorf("expected logged=%v, got output %q", tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_Trace_LevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace), WithFormat(FormatText))
	logger.Trace("deep detail")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level name, got: %s", buf.String())
	}
}

func TestLogger_Caller_ReportsCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithFormat(FormatText))
	logger.Info("where am I")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected source to reference this file, got: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesWithoutMutating(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	base.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("base logger level changed: %q", buf.String())
	}

	wrapped.Debug("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Error("wrapped logger did not apply new level")
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf).With(slog.String("component", "val"))
	logger.Info("hello")

	if !strings.Contains(buf.String(), `"component":"val"`) {
		t.Errorf("expected attribute in output, got: %s", buf.String())
	}
}

func TestLogger_Pretty_RendersBothFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{"text", FormatText, []string{"msg=styled", "n=3", "ok=true", "INFO"}},
		{"json", FormatJSON, []string{"msg: styled", "n: 3", "ok: true", "{\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithPretty(true), WithFormat(tt.format))
			logger.Info("styled", slog.Int("n", 3), slog.Bool("ok", true))

			// A bytes.Buffer is not a terminal, so lipgloss emits no escapes.
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("expected %q in output: %s", s, buf.String())
				}
			}
		})
	}
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf syncBuffer

	logger := Make(&buf)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	defaultLog = Make(&buf, WithLevel(LevelTrace))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Config_WrapsDefault(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithFormat(FormatText), WithLevel(LevelDebug))
	Debug("configured")

	if !strings.Contains(buf.String(), "msg=configured") {
		t.Errorf("expected text output from configured default, got: %s", buf.String())
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
