package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// BackdropVariable is the variable translucent colours are composited over.
const BackdropVariable = "--theme-background"

var (
	nameStyle    = lipgloss.NewStyle().Width(24)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	black        = colorful.Color{}
)

// TerminalSink records variables like MemorySink and renders them as
// coloured swatches.
type TerminalSink struct {
	*MemorySink
}

// NewTerminalSink creates an empty terminal sink.
func NewTerminalSink() *TerminalSink {
	return &TerminalSink{MemorySink: NewMemorySink()}
}

// Render draws one swatch line per variable.
func (s *TerminalSink) Render() string {
	vars := s.Variables()
	backdrop := black
	if bg, ok := s.Get(BackdropVariable); ok {
		if hex, err := Flatten(bg, black); err == nil {
			backdrop, _ = colorful.Hex(hex)
		}
	}

	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, Swatch(v.Value, backdrop)+" "+nameStyle.Render(v.Name)+valueStyle.Render(v.Value))
	}
	return strings.Join(lines, "\n")
}

// Swatch renders a small block filled with value composited over backdrop.
// Values that cannot be parsed render as a marker.
func Swatch(value string, backdrop colorful.Color) string {
	hex, err := Flatten(value, backdrop)
	if err != nil {
		return invalidStyle.Render("??")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
