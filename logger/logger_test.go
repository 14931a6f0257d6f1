package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json", Output: "stderr"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", "linqctl")
	l.Info("traversal finished", Fields(FieldStage, "adults", FieldYielded, 3))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := lines[0]
	if got["message"] != "traversal finished" {
		t.Errorf("unexpected message %v", got["message"])
	}
	if got[FieldStage] != "adults" {
		t.Errorf("expected stage=adults, got %v", got[FieldStage])
	}
	if got[FieldYielded] != float64(3) {
		t.Errorf("expected yielded=3, got %v", got[FieldYielded])
	}
	if got[FieldService] != "linqctl" {
		t.Errorf("expected service=linqctl, got %v", got[FieldService])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", "")
	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept too")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}
	if l.DebugEnabled() {
		t.Error("debug should be disabled at warn level")
	}
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !NewWithWriter(&buf, "debug", "").DebugEnabled() {
		t.Error("expected debug enabled")
	}
	if Nop().DebugEnabled() {
		t.Error("nop logger must not enable debug")
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", "svc").
		WithComponent("query").
		WithFields(map[string]interface{}{"k": "v"}).
		WithError(errors.New("boom"))
	l.Info("hello")

	got := decodeLines(t, &buf)[0]
	if got[FieldComponent] != "query" {
		t.Errorf("expected component=query, got %v", got[FieldComponent])
	}
	if got["k"] != "v" {
		t.Errorf("expected k=v, got %v", got["k"])
	}
	if got[FieldError] != "boom" {
		t.Errorf("expected error=boom, got %v", got[FieldError])
	}
	if l.service != "svc" {
		t.Errorf("service should be preserved, got %q", l.service)
	}
}

func TestInit(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	Init(Config{Level: "debug", Format: "json", Output: "stderr", ServiceName: "init-svc"})
	if GetGlobalLogger().service != "init-svc" {
		t.Errorf("expected init-svc, got %q", GetGlobalLogger().service)
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	var buf bytes.Buffer
	SetGlobalLogger(NewWithWriter(&buf, "debug", ""))
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	WithComponent("c").Info("component")

	if n := len(decodeLines(t, &buf)); n != 5 {
		t.Errorf("expected 5 lines, got %d", n)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp to be enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"disabled level", Config{Level: "disabled", Format: "console", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := Nop()
	Register("registered", l)
	if Get("registered") != l {
		t.Error("expected the registered logger back")
	}
	if Get("unregistered-component") == nil {
		t.Error("expected a fallback logger for unknown names")
	}
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(f) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(f), f)
	}
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestErrorFields(t *testing.T) {
	f := ErrorFields("load", errors.New("missing"))
	if f[FieldOperation] != "load" || f[FieldError] != "missing" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestDurationFields(t *testing.T) {
	f := DurationFields("sort", 1500*time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", f[FieldDuration])
	}
	m := MergeWithDuration(nil, 2*time.Second)
	if m[FieldDuration] != int64(2000) {
		t.Errorf("expected 2000ms, got %v", m[FieldDuration])
	}
}

func TestConsoleLevelTags(t *testing.T) {
	if levelTag("DEBUG") != "[DBG]" || levelTag("CUSTOM") != "[CUSTOM]" {
		t.Error("unexpected level tags")
	}
	if !strings.Contains(colorize("INFO", "[INF]"), "\033[32m") {
		t.Error("expected green info tag")
	}
}
