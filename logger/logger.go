// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ------------------- global logger -------------------

var sugar *zap.SugaredLogger

// InitLogger creates or reinitializes the logging system. It:
// - Ensures `./logs` exists.
// - Creates a timestamped log file in `logs/`.
// - Writes logs to both the file and stdout.
func InitLogger() error {
	if err := os.MkdirAll("./logs", 0700); err != nil {
		return err
	}

	logFileName := filepath.Join("logs", time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	// log to both stdout and the file
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.DebugLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(file), zap.DebugLevel),
	)

	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return nil
}

// SetLogLevel adjusts logging output depending on environment. In
// production debug output is discarded entirely; elsewhere it is kept.
func SetLogLevel(env string) {
	if env != "production" {
		return
	}
	base := sugar.Desugar()
	sugar = base.WithOptions(
		zap.IncreaseLevel(zap.InfoLevel),
	).Sugar()
}

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() {
	_ = sugar.Sync()
}

// ------------------- level helpers -------------------

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { sugar.Infof(format, args...) }

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) { sugar.Warnf(format, args...) }

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) { sugar.Errorf(format, args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { sugar.Debugf(format, args...) }

// init attempts to initialize the logger at package load time. If file
// logging cannot be set up (read-only filesystem, tests), fall back to a
// stdout-only logger rather than failing.
func init() {
	if err := InitLogger(); err != nil {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			zap.DebugLevel,
		)
		sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	}
}
