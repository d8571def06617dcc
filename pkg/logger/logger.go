package logger

import (
	"go.uber.org/zap"
)

var globalLogger = zap.NewNop()

// Setup builds the process-wide logger. The "local" env gets the
// human-readable development config, everything else the production one.
func Setup(env string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	globalLogger = l

	return l, nil
}

func Logger() *zap.Logger {
	return globalLogger
}

func Debug(msg string, fields ...zap.Field) {
	globalLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	globalLogger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	globalLogger.Error(msg, fields...)
}
