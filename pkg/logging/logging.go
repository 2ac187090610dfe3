package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds the process logger. Debug selects the human readable
// development encoder at debug level; otherwise JSON at info level.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewNop()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// L returns the configured logger, or a no-op logger before Setup ran.
func L() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}
