package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's verbosity and output format.
type Config struct {
	Level    string // debug, info, warn, error
	Encoding string // json or console
}

// New builds the process-wide zap logger. An unknown level falls back to
// info instead of failing startup; the level is still validated so typos
// in LOG_LEVEL surface in the first log line.
func New(cfg Config) (*zap.Logger, error) {
	level, levelErr := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if levelErr != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if strings.EqualFold(cfg.Encoding, "console") {
		zc.Encoding = "console"
	}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if levelErr != nil {
		log.Warn("Unknown log level, using info", zap.String("level", cfg.Level))
	}
	return log, nil
}
