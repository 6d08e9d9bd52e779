package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")
	level.Error(logger).Log("msg", "also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "level=warn") {
		t.Fatalf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "also shown") {
		t.Fatalf("error line missing: %q", out)
	}
}

func TestNewWriterAddsTimestampAndCaller(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "debug")
	if err != nil {
		t.Fatal(err)
	}
	level.Debug(logger).Log("msg", "x")
	out := buf.String()
	if !strings.Contains(out, "ts=") || !strings.Contains(out, "caller=") {
		t.Fatalf("expected ts and caller keys: %q", out)
	}
}

func TestLevelNames(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", " warn ", "warning", "error", "none", "off"} {
		if _, err := NewWriter(&bytes.Buffer{}, lvl); err != nil {
			t.Errorf("level %q: %v", lvl, err)
		}
	}
	if _, err := NewWriter(&bytes.Buffer{}, "verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gpacalc.log")
	logger, closer, err := New(path, "info")
	if err != nil {
		t.Fatal(err)
	}
	level.Info(logger).Log("msg", "started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=started") {
		t.Fatalf("log file content = %q", data)
	}
}

func TestNewBadLevelClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpacalc.log")
	if _, _, err := New(path, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
