package logger

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = getLogger()

func getLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(getCurrentLogLevel())
	newLogger, _ := config.Build(
		zap.AddStacktrace(zap.ErrorLevel),
		zap.AddCallerSkip(1),
	)

	return newLogger
}

func getCurrentLogLevel() zapcore.Level {
	raw, _ := os.LookupEnv("PRANKPRESS_LOGGER_LEVEL")
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zap.InfoLevel
	}
	return level
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

func Sync() {
	err := Logger.Sync()
	if err != nil && !errors.Is(err, syscall.ENOTTY) && err.Error() != "sync /dev/stderr: invalid argument" {
		Logger.Error("zLog Sync", zap.Any("err", err))
		return
	}
}
