package utils

import (
	"log"

	"github.com/mohamedfathy32/elnaseem-crm/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// logLevel resolves the configured LOG_LEVEL, falling back to the
// environment default (info in production, debug otherwise).
func logLevel() zapcore.Level {
	fallback := zapcore.DebugLevel
	if IsProduction() {
		fallback = zapcore.InfoLevel
	}
	raw := config.AppConfig.LogLevel
	if raw == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		log.Printf("unknown LOG_LEVEL %q, using %s", raw, fallback)
		return fallback
	}
	return level
}

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

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
