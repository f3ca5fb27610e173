package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// Format selects the log encoding.
type Format string

const (
	// FormatText renders human-readable lines through charmbracelet/log.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per line through zerolog.
	FormatJSON Format = "json"
)

// Options configures a logger adapter.
type Options struct {
	Writer       io.Writer
	Level        string
	Format       Format
	TimeFormat   string
	ReportCaller bool
	Layer        string
	Component    string
}

// New creates the adapter matching opts.Format. Text is the default.
func New(opts Options) (ports.Logger, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	if opts.Layer == "" {
		opts.Layer = "infrastructure"
	}

	switch Format(strings.ToLower(string(opts.Format))) {
	case "", FormatText:
		return NewText(opts)
	case FormatJSON:
		return NewJSON(opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
}

// NewFileWriter returns a writer that appends to path and rotates it once it
// grows past maxSizeMB, keeping maxBackups compressed copies. Zero values
// select 10 MB and 3 backups.
func NewFileWriter(path string, maxSizeMB, maxBackups int) io.WriteCloser {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

func componentFields(component string) []interface{} {
	fields := make([]interface{}, 0, 6)
	if component != "" {
		fields = append(fields, "component", component)
	}
	return fields
}
