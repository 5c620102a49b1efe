package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.WarnLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" error ": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("ParseLevel(chatty) should fail")
	}
}

func TestNewFile_WritesLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	log, err := NewFile("info", dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Info("dashboard started")
	log.Debug("hidden")
	_ = log.Sync()

	b, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "dashboard started") || strings.Contains(out, "hidden") {
		t.Fatalf("log contents = %q", out)
	}
}
