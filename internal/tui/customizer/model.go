// Package customizer is the interactive terminal theme editor.
package customizer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apptheme "github.com/alexisbeaulieu97/sonora/internal/application/theme"
	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
)

// Section is one tab of the customiser.
type Section int

const (
	SectionPresets Section = iota
	SectionBackground
	SectionSimulation
	SectionPalette
)

var sections = []Section{SectionPresets, SectionBackground, SectionSimulation, SectionPalette}

func (s Section) String() string {
	switch s {
	case SectionPresets:
		return "Presets"
	case SectionBackground:
		return "Background"
	case SectionSimulation:
		return "Simulation"
	case SectionPalette:
		return "Palette"
	default:
		return "Unknown"
	}
}

func (s Section) group() (domain.Group, bool) {
	switch s {
	case SectionBackground:
		return domain.GroupBackground, true
	case SectionSimulation:
		return domain.GroupSimulation, true
	case SectionPalette:
		return domain.GroupPalette, true
	default:
		return 0, false
	}
}

// Model contains the Bubbletea state for the theme customiser.
type Model struct {
	ctx    context.Context
	editor *apptheme.Editor
	sink   *style.TerminalSink

	section Section
	cursors map[Section]int

	editing bool
	field   string
	input   textinput.Model

	keys keyMap
	help help.Model

	status    string
	statusErr bool
	quitting  bool

	width  int
	height int
}

// NewModel creates a customiser over editor. sink may be nil when no
// style surface preview is wanted.
func NewModel(ctx context.Context, editor *apptheme.Editor, sink *style.TerminalSink) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 256

	return Model{
		ctx:     ctx,
		editor:  editor,
		sink:    sink,
		section: SectionPresets,
		cursors: make(map[Section]int),
		input:   input,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Section returns the active tab.
func (m Model) Section() Section {
	return m.section
}

// Cursor returns the selected row of the active tab.
func (m Model) Cursor() int {
	return m.cursors[m.section]
}

// Editing reports whether a field value is being typed.
func (m Model) Editing() bool {
	return m.editing
}

// Status returns the last status line and whether it reports a failure.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// rows lists the selectable entries of the active tab.
func (m Model) rows() []string {
	if m.section == SectionPresets {
		presets := m.editor.ListPresets()
		names := make([]string, len(presets))
		for i, p := range presets {
			names[i] = p.Name
		}
		return names
	}
	group, _ := m.section.group()
	if group == domain.GroupPalette {
		keys := domain.PaletteKeys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return names
	}
	names := apptheme.FieldNames(group)
	if group == domain.GroupSimulation {
		for i := range m.editor.Simulation().Colors {
			names = append(names, colorRow(i))
		}
	}
	return names
}

// colorRow names the row editing one fluid colour.
func colorRow(index int) string {
	return fmt.Sprintf("%s[%d]", colorsField, index)
}

func colorIndex(row string) (int, bool) {
	var index int
	if _, err := fmt.Sscanf(row, colorsField+"[%d]", &index); err != nil {
		return 0, false
	}
	return index, true
}

func (m *Model) clampCursor() {
	if last := len(m.rows()) - 1; m.cursors[m.section] > last {
		m.cursors[m.section] = max(last, 0)
	}
}

func (m Model) selectedRow() (string, bool) {
	rows := m.rows()
	cursor := m.cursors[m.section]
	if cursor < 0 || cursor >= len(rows) {
		return "", false
	}
	return rows[cursor], true
}

func (m *Model) setStatus(msg string, failed bool) {
	m.status = msg
	m.statusErr = failed
}
