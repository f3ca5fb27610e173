package logging

import (
	"context"
	"fmt"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// TextLogger implements ports.Logger using charmbracelet/log.
type TextLogger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// NewText creates a charmbracelet/log adapter.
func NewText(opts Options) (*TextLogger, error) {
	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(opts.Writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		ReportCaller:    opts.ReportCaller,
		Formatter:       cblog.TextFormatter,
	})

	return &TextLogger{
		logger: base,
		fields: componentFields(opts.Component),
		layer:  opts.Layer,
	}, nil
}

func (l *TextLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields...)
}

func (l *TextLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields...)
}

func (l *TextLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields...)
}

func (l *TextLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *TextLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	return &TextLogger{
		logger: l.logger,
		fields: appendFields(l.fields, fields),
		layer:  l.layer,
	}
}

func (l *TextLogger) log(ctx context.Context, level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	payload := mergeFields(l.fields, fields, contextExtras(ctx, l.layer))

	switch level {
	case cblog.DebugLevel:
		l.logger.Debug(msg, payload...)
	case cblog.WarnLevel:
		l.logger.Warn(msg, payload...)
	case cblog.ErrorLevel:
		l.logger.Error(msg, payload...)
	default:
		l.logger.Info(msg, payload...)
	}
}

var _ ports.Logger = (*TextLogger)(nil)
