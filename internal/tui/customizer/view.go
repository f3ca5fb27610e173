package customizer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	apptheme "github.com/alexisbeaulieu97/sonora/internal/application/theme"
	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
	"github.com/alexisbeaulieu97/sonora/internal/ui/components"
)

// View renders the current state of the model. The chrome is derived from
// the theme being edited, so palette edits recolour the screen immediately.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current := m.editor.Current()
	t := components.FromPalette(current.Palette)
	var out []string

	out = append(out, t.Title.Render(fmt.Sprintf("Sonora • %s", current.Name)))
	if current.Description != "" {
		out = append(out, t.Muted.Render(current.Description))
	}
	out = append(out, m.renderTabs(t))
	out = append(out, m.renderRows(t, current))

	if m.editing {
		out = append(out, t.Section.Render("Editing "+m.field), m.input.View())
	}

	if m.section == SectionPalette && m.sink != nil {
		out = append(out, t.Section.Render("Style surface"), t.Panel.Render(m.sink.Render()))
	}

	if m.status != "" {
		statusStyle := t.Success
		if m.statusErr {
			statusStyle = t.Failure
		}
		out = append(out, "", statusStyle.Render(m.status))
	}

	out = append(out, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m Model) renderTabs(t components.Theme) string {
	tabs := make([]string, 0, len(sections))
	for _, s := range sections {
		if s == m.section {
			tabs = append(tabs, t.ActiveTab.Render(s.String()))
		} else {
			tabs = append(tabs, t.InactiveTab.Render(s.String()))
		}
	}
	return t.Section.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderRows(t components.Theme, current domain.ThemeConfig) string {
	rows := m.rows()
	cursor := m.cursors[m.section]
	backdrop := backdropOf(current.Palette)

	var values map[string]string
	group, isGroup := m.section.group()
	if isGroup {
		values = apptheme.FieldValues(current, group)
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		marker := "  "
		if i == cursor {
			marker = t.Cursor.Render("› ")
		}

		var line string
		switch {
		case m.section == SectionPresets:
			line = labelStyle.Render(row)
			if row == current.Name {
				line += components.Badge(t, "active", components.PaletteSuccess)
			}
		case group == domain.GroupPalette:
			value := values[row]
			line = style.Swatch(value, backdrop) + " " + labelStyle.Render(fieldLabel(row)) + t.Value.Render(value)
		case isColorRow(row):
			index, _ := colorIndex(row)
			value := current.Simulation.Colors[index]
			line = style.Swatch(value, backdrop) + " " + labelStyle.Render(fmt.Sprintf("Colour %d", index+1)) + t.Value.Render(value)
		case row == colorsField:
			line = labelStyle.Render(fieldLabel(row)) + renderColors(t, current.Simulation.Colors, backdrop)
		default:
			line = labelStyle.Render(fieldLabel(row)) + t.Value.Render(values[row])
		}
		lines = append(lines, marker+line)
	}
	return strings.Join(lines, "\n")
}

func isColorRow(row string) bool {
	_, ok := colorIndex(row)
	return ok
}

func renderColors(t components.Theme, colors []string, backdrop colorful.Color) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, style.Swatch(c, backdrop)+" "+t.Value.Render(c))
	}
	return strings.Join(parts, "  ") + t.Muted.Render(fmt.Sprintf("  (%d/%d)", len(colors), domain.MaxSimulationColors))
}

func backdropOf(p domain.Palette) colorful.Color {
	hex, err := style.Flatten(p.Background, colorful.Color{})
	if err != nil {
		return colorful.Color{}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
