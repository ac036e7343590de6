package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWithFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "test.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("hello from test")
	Sugar.Debugf("formatted %d", 42)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "hello from test") {
		t.Error("info message missing from log file")
	}
	if !strings.Contains(out, "formatted 42") {
		t.Error("debug message missing from log file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"}, // unknown falls back to info
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "filtered.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, _ := os.ReadFile(logFile)
	out := string(data)

	if strings.Contains(out, "should be filtered") {
		t.Error("info message leaked through warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
}
