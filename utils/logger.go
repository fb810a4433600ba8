package utils

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tutorbase/config"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration. The level comes from
// LOG_LEVEL; an unparseable value falls back to info in production and debug
// in development.
func InitializeLogger() {
	var cfg zap.Config
	var fallback zapcore.Level

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		fallback = zap.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		fallback = zap.DebugLevel
	}

	level := fallback
	if err := level.Set(config.AppConfig.LogLevel); err != nil {
		level = fallback
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
