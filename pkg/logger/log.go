package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger builds a console logger writing to stdout and, when given, to
// additional files. Directories for file outputs are created on demand.
func NewLogger(level string, outputPaths ...string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	paths := []string{"stdout"}
	for _, p := range outputPaths {
		if p == "" || p == "stdout" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      paths,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	return dualConfig.Build()
}

// MustNewLogger panics when the logger cannot be built.
func MustNewLogger(level string, outputPaths ...string) *zap.Logger {
	l, err := NewLogger(level, outputPaths...)
	if err != nil {
		panic(err)
	}
	return l
}
