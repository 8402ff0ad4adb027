package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type ctxKey struct{}

// Logger is a thin wrapper so packages only depend on the helpers in this
// package and not on zap directly.
type Logger struct {
	zl *zap.Logger
}

var (
	globalOnce sync.Once
	global     *Logger
)

func production() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func config(debug bool) zap.Config {
	var cfg zap.Config
	if production() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return cfg
}

// Setup builds the global logger on first use; later calls return it as is,
// whatever debug says.
func Setup(debug bool) *Logger {
	globalOnce.Do(func() {
		zl, err := config(debug).Build(zap.AddCallerSkip(1))
		if err != nil {
			log.Panicf("could not create logger: %v", err)
		}
		global = &Logger{zl: zl}
	})

	return global
}

func New() *Logger {
	return Setup(false)
}

// Nop returns a logger that discards everything, meant for tests.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

func Wrap(zl *zap.Logger) *Logger {
	if zl == nil {
		return Nop()
	}

	return &Logger{zl: zl}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zl.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zl.Warn(msg, fields...) }

// Fatal logs and exits the process; only main should call it.
func (l *Logger) Fatal(msg string, fields ...Field) { l.zl.Fatal(msg, fields...) }

func (l *Logger) Sync() error {
	return l.zl.Sync()
}
