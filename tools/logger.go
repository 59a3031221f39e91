package tools

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	loggerOnce   sync.Once
)

// InitLogger builds the global zap logger. environment "production" gets
// JSON to stdout; anything else gets the colored development console.
func InitLogger(environment string) *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if environment == "production" {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.TimeKey = "timestamp"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			cfg.DisableStacktrace = true
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		logger, err := cfg.Build()
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		globalLogger = logger
		zap.ReplaceGlobals(globalLogger)
	})
	return globalLogger
}

// Log returns the global logger, initializing a development one if needed.
func Log() *zap.Logger {
	if globalLogger == nil {
		return InitLogger("development")
	}
	return globalLogger
}

// SwapLogger replaces the global logger and returns a restore func. Tests use
// it to capture log output through a zap observer core.
func SwapLogger(l *zap.Logger) func() {
	prev := globalLogger
	globalLogger = l
	return func() { globalLogger = prev }
}

func SyncLogger() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
