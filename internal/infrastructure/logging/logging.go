package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: console encoding on stderr, ISO8601
// timestamps, caller locations. Level comes from LOG_LEVEL (default
// debug, matching the chattiness expected of a single-purpose daemon).
func New() *zap.Logger {
	level := zapcore.DebugLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if l, err := zapcore.ParseLevel(v); err == nil {
			level = l
		}
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, zap.AddCaller())
}
