package logger

import (
	"os"

	"github.com/samvad-hq/line-login/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface used across the application.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// LevelSetter is implemented by loggers whose level can change after Init.
type LevelSetter interface {
	SetLevel(level zapcore.Level)
}

// ZapLogger adapts a zap.Logger to Logger.
type ZapLogger struct {
	l     *zap.Logger
	level zap.AtomicLevel
}

// Init initializes the package logger using settings from config. Output goes
// to stderr so command results on stdout stay machine readable.
func Init(cfg *config.Config) (*ZapLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	z := NewWithCore(func(enab zapcore.LevelEnabler) zapcore.Core {
		return zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(zapcore.Lock(os.Stderr)),
			enab,
		)
	}, ParseLevel(cfg.LogLevel), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	S = z.l.Sugar()
	return z, nil
}

// NewWithCore builds a ZapLogger whose core filters through an adjustable
// level starting at lvl.
func NewWithCore(newCore func(zapcore.LevelEnabler) zapcore.Core, lvl zapcore.Level, opts ...zap.Option) *ZapLogger {
	level := zap.NewAtomicLevelAt(lvl)
	return &ZapLogger{l: zap.New(newCore(level), opts...), level: level}
}

// New wraps an existing zap.Logger. Its level is fixed by the logger's core.
func New(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l, level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

// SetLevel changes the minimum level logged from now on.
func (z *ZapLogger) SetLevel(level zapcore.Level) {
	z.level.SetLevel(level)
}

// ParseLevel maps a config level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// Minimal object logging helpers -------------------------------------------------
// These log the given object as a single structured field named `key`.
func (z *ZapLogger) InfoObj(msg, key string, obj interface{}) {
	z.l.Info(msg, zap.Any(key, obj))
}

func (z *ZapLogger) DebugObj(msg, key string, obj interface{}) {
	z.l.Debug(msg, zap.Any(key, obj))
}

func (z *ZapLogger) WarnObj(msg, key string, obj interface{}) {
	z.l.Warn(msg, zap.Any(key, obj))
}

func (z *ZapLogger) ErrorObj(msg, key string, obj interface{}) {
	z.l.Error(msg, zap.Any(key, obj))
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) InfoObj(string, string, interface{})  {}
func (NopLogger) DebugObj(string, string, interface{}) {}
func (NopLogger) WarnObj(string, string, interface{})  {}
func (NopLogger) ErrorObj(string, string, interface{}) {}
