package logging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// JSONLogger implements ports.Logger using zerolog.
type JSONLogger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// NewJSON creates a zerolog adapter writing one JSON object per entry.
func NewJSON(opts Options) (*JSONLogger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	ctx := zerolog.New(opts.Writer).Level(level).With()
	if opts.TimeFormat != "" {
		ctx = ctx.Timestamp()
	}
	if opts.ReportCaller {
		ctx = ctx.Caller()
	}

	return &JSONLogger{
		base:   ctx.Logger(),
		fields: componentFields(opts.Component),
		layer:  opts.Layer,
	}, nil
}

func (l *JSONLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.base.Debug(), msg, fields...)
}

func (l *JSONLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.base.Info(), msg, fields...)
}

func (l *JSONLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.base.Warn(), msg, fields...)
}

func (l *JSONLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.base.Error(), msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *JSONLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	return &JSONLogger{
		base:   l.base,
		fields: appendFields(l.fields, fields),
		layer:  l.layer,
	}
}

func (l *JSONLogger) log(ctx context.Context, event *zerolog.Event, msg string, fields ...interface{}) {
	if l == nil || event == nil {
		return
	}
	payload := mergeFields(l.fields, fields, contextExtras(ctx, l.layer))
	for i := 0; i+1 < len(payload); i += 2 {
		key, _ := payload[i].(string)
		switch value := payload[i+1].(type) {
		case error:
			event = event.AnErr(key, value)
		case time.Duration:
			event = event.Int64(key+"_ms", value.Milliseconds())
		default:
			event = event.Interface(key, value)
		}
	}
	event.Msg(msg)
}

var _ ports.Logger = (*JSONLogger)(nil)
