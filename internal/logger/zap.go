package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger and keeps its level adjustable.
type Logger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

const defaultZapLevel = zapcore.InfoLevel

// toZapLevel maps a config level string; unknown values fall back to info.
func toZapLevel(levelStr string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case DebugLevel:
		return zapcore.DebugLevel, true
	case InfoLevel, "":
		return zapcore.InfoLevel, true
	case WarnLevel, "warning":
		return zapcore.WarnLevel, true
	case ErrorLevel:
		return zapcore.ErrorLevel, true
	default:
		return defaultZapLevel, false
	}
}

func newConsoleCore(level zap.AtomicLevel) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	ws := zapcore.Lock(os.Stdout)
	return zapcore.NewCore(encoder, ws, level)
}

func newZapLogger(levelStr string) *Logger {
	lvl, _ := toZapLevel(levelStr)
	atomic := zap.NewAtomicLevelAt(lvl)
	return &Logger{
		SugaredLogger: zap.New(newConsoleCore(atomic)).Sugar(),
		level:         atomic,
	}
}

// SetLevel changes the level at runtime. Unknown values keep info and are
// reported back as false.
func (l *Logger) SetLevel(levelStr string) bool {
	lvl, ok := toZapLevel(levelStr)
	l.level.SetLevel(lvl)
	return ok
}

// Level reports the current level as text.
func (l *Logger) Level() string {
	return l.level.Level().String()
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{
		SugaredLogger: zap.NewNop().Sugar(),
		level:         zap.NewAtomicLevelAt(defaultZapLevel),
	}
}
