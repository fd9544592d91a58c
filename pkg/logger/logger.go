// Package logger provides logging implementations for TubeDigest
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tubedigest/tubedigest/pkg/interfaces"
)

// ZapLogger implements the Logger interface on top of zap
type ZapLogger struct {
	zl *zap.Logger
}

// NewLogger creates a new logger with default settings
func NewLogger() interfaces.Logger {
	return NewConsoleLogger("info")
}

// NewConsoleLogger creates a console logger at the given level
func NewConsoleLogger(level string) interfaces.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		parseLevel(level),
	)

	return &ZapLogger{zl: zap.New(core)}
}

// NewTestLogger creates a logger for testing
func NewTestLogger() interfaces.Logger {
	return &ZapLogger{zl: zap.NewNop()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []map[string]interface{}) []zap.Field {
	var zf []zap.Field
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zf = append(zf, zap.Any(key, value))
		}
	}
	return zf
}

// Debug logs debug level messages
func (l *ZapLogger) Debug(msg string, fields ...map[string]interface{}) {
	l.zl.Debug(msg, toZapFields(fields)...)
}

// Info logs info level messages
func (l *ZapLogger) Info(msg string, fields ...map[string]interface{}) {
	l.zl.Info(msg, toZapFields(fields)...)
}

// Warn logs warning level messages
func (l *ZapLogger) Warn(msg string, fields ...map[string]interface{}) {
	l.zl.Warn(msg, toZapFields(fields)...)
}

// Error logs error level messages
func (l *ZapLogger) Error(msg string, err error, fields ...map[string]interface{}) {
	zf := toZapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.zl.Error(msg, zf...)
}

// Fatal logs fatal level messages and exits
func (l *ZapLogger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	zf := toZapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.zl.Fatal(msg, zf...)
}

// WithFields returns a logger with additional fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	return &ZapLogger{zl: l.zl.With(toZapFields([]map[string]interface{}{fields})...)}
}
