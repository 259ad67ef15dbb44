package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsBelowMinAreDropped(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Debugf("hidden %d", 1)
	l.Infof("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug should be dropped at default level: %s", out)
	}
	if !strings.Contains(out, "[INFO] visible") {
		t.Fatalf("info should be written: %s", out)
	}

	l.SetMinLevel(LevelDebug)
	l.Debugf("now shown")
	if !strings.Contains(buf.String(), "[DEBUG] now shown") {
		t.Fatalf("debug should pass after SetMinLevel: %s", buf.String())
	}
}

func TestErrorCap(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	for i := 0; i < DefaultErrorCap+5; i++ {
		l.Errorf("boom %d", i)
	}
	out := buf.String()
	if got := strings.Count(out, "[ERROR]"); got != DefaultErrorCap {
		t.Fatalf("expected %d error lines, got %d", DefaultErrorCap, got)
	}
	if !strings.Contains(out, "error cap reached") {
		t.Fatalf("expected suppression notice: %s", out)
	}
	if strings.Contains(out, "boom 10") {
		t.Fatalf("errors past the cap must be swallowed: %s", out)
	}
	if l.ErrorCount() != DefaultErrorCap+5 {
		t.Fatalf("counter should include suppressed errors: %d", l.ErrorCount())
	}
}

func TestNilWriterIsSafe(t *testing.T) {
	l := New(nil)
	l.Infof("no panic")
	l.Errorf("no panic either")
	if l.ErrorCount() != 1 {
		t.Fatalf("count should still advance: %d", l.ErrorCount())
	}
}
