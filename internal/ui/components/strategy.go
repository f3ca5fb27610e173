package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc applies a theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy composes style transformations.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies its funcs in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply implements StyleStrategy.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteText      PaletteSlot = func(p Palette) ColourSet { return p.Text }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Background fills with the slot colour and switches the text to its
// legible counterpart.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground sets the text colour only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Muted sets the text to the slot's muted variant.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(0, n)
	}
}

// Compose builds a style from appliers against theme.
func Compose(theme Theme, appliers ...StyleFunc) lipgloss.Style {
	return NewCompositeStrategy(appliers...).Apply(lipgloss.NewStyle(), theme)
}
