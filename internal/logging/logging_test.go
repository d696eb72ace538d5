package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Error("saving stores", zap.String("path", "stores.jsonl"))
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "saving stores") {
		t.Errorf("output %q missing error entry", out)
	}
	if !strings.Contains(out, "stores.jsonl") {
		t.Errorf("output %q missing path field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("New() should reject unknown level")
	}
}
