package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	log     *zap.Logger
	verbose bool
)

// SetVerbose switches the logger to debug level. Call before GetLogger.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = nil
}

func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log != nil {
		return log
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if _, noColor := os.LookupEnv("NO_COLOR"); !noColor {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	log = zap.New(core)
	return log
}
