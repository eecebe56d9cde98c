package telemetry

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	log *zap.SugaredLogger
}

// NewZapLogger builds a JSON zap logger writing to stdout at the given level
// ("debug", "info", "warn" or "error"; anything else means info).
func NewZapLogger(level string) (Logger, error) {
	var logLevel zapcore.Level
	switch level {
	case "debug":
		logLevel = zap.DebugLevel
	case "info":
		logLevel = zap.InfoLevel
	case "warn":
		logLevel = zap.WarnLevel
	case "error":
		logLevel = zap.ErrorLevel
	default:
		logLevel = zap.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "can not build zap logger")
	}
	return ZapLogger(l), nil
}

// ZapLogger adapts an existing zap logger.
func ZapLogger(l *zap.Logger) Logger {
	return zapLogger{log: l.Sugar()}
}

func (z zapLogger) Info(msg string, kv ...any) {
	z.log.Infow(msg, kv...)
}

func (z zapLogger) Debug(msg string, kv ...any) {
	z.log.Debugw(msg, kv...)
}

func (z zapLogger) Error(msg string, err error, kv ...any) {
	z.log.Errorw(msg, append(kv, zap.Error(err))...)
}
