package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevel = zapcore.InfoLevel

func config() zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderCfg
}

func rebuild() {
	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(config()),
		zapcore.Lock(os.Stdout),
		logLevel,
	))
	zap.ReplaceGlobals(logger)
}

func init() {
	rebuild()
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...interface{}) {
	zap.S().Debugw(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...interface{}) {
	zap.S().Infow(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...interface{}) {
	zap.S().Warnw(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...interface{}) {
	zap.S().Errorw(msg, args...)
}

// Panic logs a message with optional key-value pairs, then panics.
func Panic(msg string, args ...interface{}) {
	zap.S().Panicw(msg, args...)
}

// Fatal logs a message with optional key-value pairs, then exits.
func Fatal(msg string, args ...interface{}) {
	zap.S().Fatalw(msg, args...)
}

// SetLevel sets the global log level from a string, which can be any
// of ["debug", "info", "warn", "warning", "error", "panic", "fatal"],
// case-insensitive.
func SetLevel(level string) error {
	switch Clean(level) {
	case "debug":
		logLevel = zapcore.DebugLevel
	case "info":
		logLevel = zapcore.InfoLevel
	case "warn", "warning":
		logLevel = zapcore.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	case "panic":
		logLevel = zapcore.PanicLevel
	case "fatal":
		logLevel = zapcore.FatalLevel
	default:
		return fmt.Errorf("invalid log level string: %v", level)
	}

	rebuild()

	return nil
}

// GetLevel returns the current global log level.
func GetLevel() zapcore.Level {
	return logLevel
}

// Clean normalizes a level string for comparison.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
