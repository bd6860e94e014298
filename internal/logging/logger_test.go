package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHelpersAreNoopsBeforeInit(t *testing.T) {
	Close()
	Info("nothing")
	Warn("nothing")
	if With("k", "v") != nil {
		t.Error("With should return nil before init")
	}
}

func TestInitWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, log.InfoLevel)
	defer Close()

	Debug("hidden")
	Info("shown", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "count=3") {
		t.Errorf("expected info message with keyvals, got %q", out)
	}
}

func TestInitCreatesDatedFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, log.DebugLevel); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Info("hello file")
	Close()

	matches, err := filepath.Glob(filepath.Join(dir, "logs", "cupid-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != log.DebugLevel {
		t.Error("expected debug level")
	}
	if ParseLevel("nonsense") != log.InfoLevel {
		t.Error("unknown level should fall back to info")
	}
}
