package linq

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kbukum/golinq/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		events = append(events, ev)
	}
	return events
}

func TestTrace_LogsTraversal(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", "linq-test")

	r := Of(1, 2, 3).Trace(log, "numbers")
	assertSlice(t, r.ToSlice(), []int{1, 2, 3})

	events := decodeLines(t, &buf)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}
	start, end := events[0], events[1]
	if start["message"] != "traversal started" || end["message"] != "traversal finished" {
		t.Errorf("unexpected messages %v / %v", start["message"], end["message"])
	}
	if start[logger.FieldStage] != "numbers" || end[logger.FieldStage] != "numbers" {
		t.Errorf("stage not set: %v", events)
	}
	id, _ := start[logger.FieldTraversalID].(string)
	if id == "" || end[logger.FieldTraversalID] != id {
		t.Errorf("traversal ids differ: %v vs %v", start[logger.FieldTraversalID], end[logger.FieldTraversalID])
	}
	if end[logger.FieldYielded] != float64(3) {
		t.Errorf("yielded = %v, want 3", end[logger.FieldYielded])
	}
	if _, ok := end[logger.FieldDuration]; !ok {
		t.Error("missing duration")
	}
}

func TestTrace_NewIDPerTraversal(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", "")

	r := Of("a", "b").Trace(log, "letters")
	if v, ok := r.First(); !ok || v != "a" {
		t.Fatalf("First = %q, %v", v, ok)
	}
	_ = r.Count()

	events := decodeLines(t, &buf)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[1][logger.FieldYielded] != float64(1) {
		t.Errorf("first traversal yielded %v, want 1", events[1][logger.FieldYielded])
	}
	if events[0][logger.FieldTraversalID] == events[2][logger.FieldTraversalID] {
		t.Error("traversals should get distinct ids")
	}
}

func TestTrace_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "")
	_ = Of(1).Trace(log, "quiet").ToSlice()
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %s", buf.String())
	}
}

func TestTrace_NilLoggerUsesRegisteredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Register(TraceLoggerName, logger.NewWithWriter(&buf, "debug", ""))
	t.Cleanup(func() { logger.Register(TraceLoggerName, logger.Nop()) })

	if got := Of(1, 2).Trace(nil, "registered").Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	events := decodeLines(t, &buf)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}
	if events[1][logger.FieldStage] != "registered" || events[1][logger.FieldYielded] != float64(2) {
		t.Errorf("unexpected end event %v", events[1])
	}
}
