package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production JSON logger with human-readable timestamps.
// An empty or unknown level falls back to info.
func New(level string) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.TimeKey = "time"
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	return logConfig.Build()
}

func ParseLevel(level string) zapcore.Level {
	logLevel := zap.InfoLevel
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			logLevel = zap.InfoLevel
		}
	}
	return logLevel
}
