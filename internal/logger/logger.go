// Package logger provides structured JSON logging and run metrics for the deals poster.
//
// Logging is backed by zap with a JSON encoder. Every entry carries a timestamp,
// level and message, plus optional structured fields and an error string.
// Output goes to stderr by default so dry-run output on stdout stays clean.
//
// Example usage:
//
//	logger.Info("Message sent", logger.Fields{
//	    "channel": "@JJExpressOfertas",
//	    "deals":   12,
//	})
//
//	logger.Error("Send failed", logger.Fields{"status": 500}, err)
//
//	logger.IncrCounter("messages.sent")
//	logger.RecordTiming("telegram.send", duration)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel converts a case-insensitive level name such as "debug" or "WARN".
// Unknown names fall back to INFO and return an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger provides structured logging
type Logger struct {
	zl *zap.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(LevelInfo, os.Stderr)
}

// New creates a logger writing JSON lines to output.
// Messages below level are discarded.
func New(level Level, output io.Writer) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		NameKey:        zapcore.OmitKey,
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     utcRFC3339,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(output),
		level.zapLevel(),
	)

	return &Logger{zl: zap.New(core)}
}

func utcRFC3339(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339))
}

// SetDefault sets the logger used by the package-level functions
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// log writes a structured log entry
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	ce := l.zl.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}

	zf := make([]zap.Field, 0, 2)
	if len(fields) > 0 {
		zf = append(zf, zap.Any("fields", map[string]interface{}(fields)))
	}
	if err != nil {
		zf = append(zf, zap.String("error", err.Error()))
	}

	ce.Write(zf...)
}

// Debug logs detailed diagnostic information
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs general operational information
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a potential issue that does not stop the run
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs a failure together with its error
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using default logger

func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Sync flushes the default logger
func Sync() error {
	return defaultLogger.Sync()
}
