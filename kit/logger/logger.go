package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger struct {
	*zap.Logger
}

type config struct {
	noStdout bool
}

type Option func(*config)

// NoStdout writes to the log file only. Tests use it to keep output quiet.
func NoStdout(c *config) {
	c.noStdout = true
}

func NewLogger(path string, level Level, options ...Option) (*Logger, error) {
	cfg := new(config)
	for _, option := range options {
		option(cfg)
	}

	outputPaths := []string{path}
	if !cfg.noStdout {
		outputPaths = append(outputPaths, "stdout")
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = outputPaths
	zapConfig.ErrorOutputPaths = outputPaths

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger failed")
	}

	return &Logger{Logger: zapLogger}, nil
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}
