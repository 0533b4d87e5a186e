package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("jobs.aggregate", map[string]any{"count": 3, "source": "remoteok"})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if payload["msg"] != "jobs.aggregate" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["source"] != "remoteok" {
		t.Fatalf("unexpected source: %v", payload["source"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestSetLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	SetLevel("error")
	Info("dropped", nil)
	Warn("dropped too", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	Error("kept", map[string]any{"err": "boom"})
	if buf.Len() == 0 {
		t.Fatalf("expected error line")
	}
}
