package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeWritesJSONToFile(t *testing.T) {
	defer InitializeDefault()

	path := filepath.Join(t.TempDir(), "quantkit.log")
	err := Initialize(Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Debug("converted", zap.String("from", "mile"), zap.String("to", "km"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"converted"`, `"from":"mile"`, `"level":"debug"`, `"timestamp"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestInitializeRespectsLevel(t *testing.T) {
	defer InitializeDefault()

	path := filepath.Join(t.TempDir(), "warn.log")
	if err := Initialize(Config{Level: "warn", Format: "json", Output: path}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Info("dropped")
	Warn("kept")
	Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Error("info entry written below configured level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn entry missing")
	}
}

func TestInitializeDiscard(t *testing.T) {
	defer InitializeDefault()

	if err := Initialize(Config{Level: "debug", Output: "discard"}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if Logger.Core().Enabled(zap.DebugLevel) {
		t.Error("discard logger should not enable any level")
	}
}

func TestInitializeBadPath(t *testing.T) {
	defer InitializeDefault()

	bad := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	if err := Initialize(Config{Output: bad}); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
