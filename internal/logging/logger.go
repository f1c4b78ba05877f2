// Package logging builds the zap logger used across catter. Output only ever
// goes to a file: the terminal belongs to the viewer.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the log file.
type Config struct {
	Level      string // debug, info, warn, error
	OutputPath string // empty disables logging
	MaxSize    int    // megabytes per file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New returns a logger writing JSON lines to cfg.OutputPath with rotation.
// Without an output path it returns a no-op logger.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.OutputPath == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.OutputPath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
