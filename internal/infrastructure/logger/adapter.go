package logger

import (
	"go.uber.org/zap"

	"nextgen-api/internal/application/port/output"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

// LoggerAdapter backs the application LoggerPort with zap. Production config
// emits JSON; the dev environment gets the human-readable development encoder.
type LoggerAdapter struct {
	sugar *zap.SugaredLogger
}

func NewLoggerAdapter(appEnv string) (*LoggerAdapter, error) {
	var base *zap.Logger
	var err error

	if appEnv == "dev" {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return &LoggerAdapter{
		sugar: base.Sugar(),
	}, nil
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{
		sugar: l.sugar.With(key, value),
	}
}

func (l *LoggerAdapter) Close() error {
	// Sync flushes buffered entries; stderr sync errors are not actionable.
	_ = l.sugar.Sync()
	return nil
}
