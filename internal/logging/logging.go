// Package logging builds the zap loggers used by commands and the dashboard.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the dashboard log file inside the data directory.
const FileName = "larder.log"

// ParseLevel resolves a level name such as "debug" or "warn". An empty name
// is warn.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// New returns a console logger writing to stderr at the named level.
func New(level string) (*zap.Logger, error) {
	return build(level, []string{"stderr"})
}

// NewFile returns a logger that appends to the log file in dataDir, for
// callers that own the terminal.
func NewFile(level, dataDir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	return build(level, []string{filepath.Join(dataDir, FileName)})
}

func build(level string, outputs []string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          "console",
		EncoderConfig:     enc,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
		DisableCaller:     lvl > zapcore.DebugLevel,
	}
	return cfg.Build()
}
