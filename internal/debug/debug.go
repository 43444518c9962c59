// Package debug sets up the structured logger shared by the CLI and handed
// to boxlayout trees.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the logger's level, encoding and optional file sink.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	// File, when set, receives JSON logs through a rotating writer.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

var (
	logger  *zap.Logger
	release func() error
	mu      sync.Mutex
)

// New builds a logger writing to console and, when cfg.File is set, to a
// rotating file. The returned close func flushes and releases the file.
func New(cfg Config, console zapcore.WriteSyncer) (*zap.Logger, func() error, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	cores := []zapcore.Core{zapcore.NewCore(enc, console, level)}

	var file *lumberjack.Logger
	if cfg.File != "" {
		// Ensure directory exists
		if dir := filepath.Dir(cfg.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		jsonEnc, _ := encoder("json")
		cores = append(cores, zapcore.NewCore(jsonEnc, zapcore.AddSync(file), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("boxlayout")
	closeFn := func() error {
		_ = l.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return l, closeFn, nil
}

func encoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	switch format {
	case "", "console":
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Init replaces the package logger with one built from cfg, writing console
// output to stderr.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	l, closeFn, err := New(cfg, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	_ = closeLocked()
	logger, release = l, closeFn
	return nil
}

// Logger returns the package logger, or a no-op logger before Init.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Close flushes the package logger and releases its file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked does the actual close work. Caller must hold mu.
func closeLocked() error {
	if logger == nil {
		return nil
	}
	err := release()
	logger, release = nil, nil
	return err
}

// Logf writes a debug message through the package logger.
func Logf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
