package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewFileLogger_CreatesDirectoryAndWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "folio.log")
	logger, err := NewFileLogger(path, false)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	logger.Info("session started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNewFileLogger_VerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "folio.log")
	logger, err := NewFileLogger(path, true)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should enable debug level")
	}

	quiet, err := NewFileLogger(filepath.Join(t.TempDir(), "q.log"), false)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Error("default logger should not enable debug level")
	}
}
