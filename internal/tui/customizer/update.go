package customizer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	apptheme "github.com/alexisbeaulieu97/sonora/internal/application/theme"
	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
)

const colorsField = "colors"

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.NextTab):
		m.switchSection(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchSection(-1)
	case key.Matches(msg, m.keys.Reset):
		m.editor.ResetTheme(m.ctx)
		m.setStatus("theme reset to "+m.editor.Current().Name, false)
	case key.Matches(msg, m.keys.AddColor):
		if m.section == SectionSimulation {
			m.addColor()
		}
	case key.Matches(msg, m.keys.RemoveColor):
		if m.section == SectionSimulation {
			m.removeColor()
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectRow()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		m.setStatus("edit cancelled", false)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.commitEdit()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	rows := m.rows()
	if len(rows) == 0 {
		return
	}
	cursor := m.cursors[m.section] + delta
	if cursor < 0 {
		cursor = len(rows) - 1
	}
	if cursor >= len(rows) {
		cursor = 0
	}
	m.cursors[m.section] = cursor
}

func (m *Model) switchSection(delta int) {
	next := (int(m.section) + delta + len(sections)) % len(sections)
	m.section = sections[next]
}

func (m Model) selectRow() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	if m.section == SectionPresets {
		if m.editor.ApplyPreset(m.ctx, row) {
			m.setStatus("applied preset "+row, false)
		} else {
			m.setStatus(fmt.Sprintf("preset %q not found", row), true)
		}
		return m, nil
	}

	group, _ := m.section.group()
	var current string
	if index, ok := colorIndex(row); ok {
		current = m.editor.Simulation().Colors[index]
	} else {
		current = apptheme.FieldValues(m.editor.Current(), group)[row]
	}
	m.editing = true
	m.field = group.String() + "." + row
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) commitEdit() {
	path, raw := m.field, strings.TrimSpace(m.input.Value())
	m.stopEditing()

	if index, ok := colorIndex(strings.TrimPrefix(path, domain.GroupSimulation.String()+".")); ok {
		if !m.editor.SetColor(m.ctx, index, raw) {
			m.setStatus(fmt.Sprintf("colour %d not updated", index+1), true)
			return
		}
		m.setStatus(fmt.Sprintf("colour %d = %s", index+1, raw), false)
		return
	}

	edit, err := apptheme.ParseUpdate(path, raw)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if err := edit.Apply(m.ctx, m.editor); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("%s = %s", path, raw), false)
}

func (m *Model) stopEditing() {
	m.editing = false
	m.field = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) addColor() {
	if m.editor.AddColor(m.ctx, apptheme.DefaultNewColor) {
		m.setStatus(fmt.Sprintf("added %s", apptheme.DefaultNewColor), false)
		return
	}
	m.setStatus(fmt.Sprintf("at most %d colours", domain.MaxSimulationColors), true)
}

// removeColor drops the selected colour row, or the last colour when the
// cursor is on a field.
func (m *Model) removeColor() {
	colors := m.editor.Simulation().Colors
	index := len(colors) - 1
	if row, ok := m.selectedRow(); ok {
		if selected, isColor := colorIndex(row); isColor {
			index = selected
		}
	}
	if m.editor.RemoveColor(m.ctx, index) {
		m.clampCursor()
		m.setStatus(fmt.Sprintf("removed %s", colors[index]), false)
		return
	}
	m.setStatus(fmt.Sprintf("at least %d colour required", domain.MinSimulationColors), true)
}
