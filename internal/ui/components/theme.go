package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
)

// ColourSet pairs a colour with the text colour that stays legible on it
// and a variant faded toward the backdrop.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette holds the semantic slots used for terminal chrome.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Surface   ColourSet
	Text      ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Border    lipgloss.Color
}

// Theme is an immutable set of styles derived from a Palette.
type Theme struct {
	Palette Palette

	Title       lipgloss.Style
	Section     lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Cursor      lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
	Panel       lipgloss.Style
}

const (
	darkText  = "#0b1120"
	lightText = "#f8fafc"

	// mutedBlend is how far muted variants move toward the backdrop.
	mutedBlend = 0.45
)

// DefaultTheme derives the chrome from the built-in default palette values.
func DefaultTheme() Theme {
	return FromPalette(domain.Palette{
		Primary:       "#5227FF",
		Secondary:     "#FF9FFC",
		Accent:        "#B19EEF",
		Background:    "rgba(15, 15, 25, 0.95)",
		Surface:       "rgba(255, 255, 255, 0.05)",
		Text:          "#ffffff",
		TextSecondary: "rgba(255, 255, 255, 0.7)",
		Border:        "rgba(255, 255, 255, 0.1)",
		Success:       "#4ade80",
		Warning:       "#fbbf24",
		Error:         "#ef4444",
	})
}

// FromPalette builds terminal chrome from a theme palette. Translucent
// colours are composited over the palette background. A slot that cannot be
// parsed keeps the fallback colour so a half-typed value never breaks the
// screen.
func FromPalette(p domain.Palette) Theme {
	backdrop := resolve(p.Background, colorful.Color{}, colorful.Color{R: 0.06, G: 0.06, B: 0.1})

	set := func(value string, fallback string) ColourSet {
		fb, _ := colorful.Hex(fallback)
		return colourSet(resolve(value, backdrop, fb), backdrop)
	}

	palette := Palette{
		Primary:   set(p.Primary, "#5227FF"),
		Secondary: set(p.Secondary, "#FF9FFC"),
		Accent:    set(p.Accent, "#B19EEF"),
		Surface:   set(p.Surface, "#1a1a24"),
		Text:      colourSet(resolve(p.Text, backdrop, colorful.Color{R: 1, G: 1, B: 1}), backdrop),
		Success:   set(p.Success, "#4ade80"),
		Warning:   set(p.Warning, "#fbbf24"),
		Danger:    set(p.Error, "#ef4444"),
		Border:    lipgloss.Color(resolve(p.Border, backdrop, colorful.Color{R: 0.3, G: 0.3, B: 0.35}).Hex()),
	}
	if secondary, err := style.Flatten(p.TextSecondary, backdrop); err == nil {
		palette.Text.Muted = lipgloss.Color(secondary)
	}

	return newTheme(palette)
}

func newTheme(p Palette) Theme {
	t := Theme{Palette: p}
	t.Title = Compose(t, Bold(), Foreground(PalettePrimary))
	t.Section = Compose(t, Bold(), Foreground(PaletteAccent)).MarginTop(1)
	t.ActiveTab = Compose(t, Bold(), Background(PalettePrimary), PaddingX(1))
	t.InactiveTab = Compose(t, Muted(PaletteText), PaddingX(1))
	t.Cursor = Compose(t, Bold(), Foreground(PaletteSecondary))
	t.Value = Compose(t, Foreground(PaletteText))
	t.Muted = Compose(t, Muted(PaletteText))
	t.Success = Compose(t, Foreground(PaletteSuccess))
	t.Failure = Compose(t, Bold(), Foreground(PaletteDanger))
	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	return t
}

// Badge renders text as a filled pill in the slot colour.
func Badge(theme Theme, text string, slot PaletteSlot) string {
	return Compose(theme, Background(slot), PaddingX(1)).Render(text)
}

func resolve(value string, backdrop, fallback colorful.Color) colorful.Color {
	hex, err := style.Flatten(value, backdrop)
	if err != nil {
		return fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func colourSet(c, backdrop colorful.Color) ColourSet {
	return ColourSet{
		Base:   lipgloss.Color(c.Hex()),
		OnBase: lipgloss.Color(onColour(c)),
		Muted:  lipgloss.Color(c.BlendLab(backdrop, mutedBlend).Clamped().Hex()),
	}
}

// onColour picks dark or light text by perceived lightness.
func onColour(c colorful.Color) string {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}
