package utils

import (
	"testing"

	"github.com/mohamedfathy32/elnaseem-crm/config"

	"go.uber.org/zap/zapcore"
)

func TestLogLevel(t *testing.T) {
	restore := config.AppConfig
	defer func() { config.AppConfig = restore }()

	tests := []struct {
		name  string
		env   string
		raw   string
		want  zapcore.Level
	}{
		{"configured level wins", "development", "warn", zapcore.WarnLevel},
		{"error level", "production", "error", zapcore.ErrorLevel},
		{"empty falls back to debug in dev", "development", "", zapcore.DebugLevel},
		{"empty falls back to info in prod", "production", "", zapcore.InfoLevel},
		{"garbage falls back", "production", "loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppConfig.Env = tt.env
			config.AppConfig.LogLevel = tt.raw
			if got := logLevel(); got != tt.want {
				t.Errorf("logLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInitializeLoggerHonorsConfiguredLevel(t *testing.T) {
	restore := config.AppConfig
	defer func() {
		config.AppConfig = restore
		Logger = nil
	}()

	config.AppConfig.Env = "development"
	config.AppConfig.LogLevel = "warn"
	InitializeLogger()

	core := Logger.Core()
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled")
	}
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be suppressed at warn level")
	}
}
