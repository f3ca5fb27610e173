package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

const defaultDeferredLimit = 500

type deferredEntry struct {
	ctx    context.Context
	level  string
	msg    string
	fields []interface{}
}

// DeferredSink holds log entries while the terminal customiser owns the
// screen. Once full, the oldest entries are dropped.
type DeferredSink struct {
	mu      sync.Mutex
	limit   int
	entries []deferredEntry
	dropped int
}

// NewDeferredSink creates a sink keeping at most limit entries.
func NewDeferredSink(limit int) *DeferredSink {
	if limit <= 0 {
		limit = defaultDeferredLimit
	}
	return &DeferredSink{limit: limit}
}

// Logger returns a ports.Logger writing into the sink.
func (s *DeferredSink) Logger() ports.Logger {
	return &deferredLogger{sink: s}
}

// Len returns the number of held entries.
func (s *DeferredSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *DeferredSink) add(entry deferredEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == s.limit {
		s.entries = append(s.entries[:0], s.entries[1:]...)
		s.dropped++
	}
	s.entries = append(s.entries, entry)
}

// Replay writes the held entries to delegate in order and empties the sink.
func (s *DeferredSink) Replay(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	s.mu.Lock()
	entries := s.entries
	dropped := s.dropped
	s.entries = nil
	s.dropped = 0
	s.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "deferred log entries dropped", "count", dropped)
	}
	for _, entry := range entries {
		switch entry.level {
		case "debug":
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case "warn":
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case "error":
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

type deferredLogger struct {
	sink   *DeferredSink
	fields []interface{}
}

func (l *deferredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "debug", msg, fields)
}

func (l *deferredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "info", msg, fields)
}

func (l *deferredLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "warn", msg, fields)
}

func (l *deferredLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "error", msg, fields)
}

func (l *deferredLogger) With(fields ...interface{}) ports.Logger {
	return &deferredLogger{sink: l.sink, fields: appendFields(l.fields, fields)}
}

func (l *deferredLogger) add(ctx context.Context, level, msg string, fields []interface{}) {
	if l.sink == nil {
		return
	}
	l.sink.add(deferredEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: appendFields(l.fields, fields),
	})
}
