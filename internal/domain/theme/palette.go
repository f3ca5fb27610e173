package theme

// PaletteKey identifies one of the eleven palette slots.
type PaletteKey int

const (
	PalettePrimary PaletteKey = iota
	PaletteSecondary
	PaletteAccent
	PaletteBackground
	PaletteSurface
	PaletteText
	PaletteTextSecondary
	PaletteBorder
	PaletteSuccess
	PaletteWarning
	PaletteError
)

var paletteKeys = []PaletteKey{
	PalettePrimary,
	PaletteSecondary,
	PaletteAccent,
	PaletteBackground,
	PaletteSurface,
	PaletteText,
	PaletteTextSecondary,
	PaletteBorder,
	PaletteSuccess,
	PaletteWarning,
	PaletteError,
}

var paletteNames = [...]string{
	PalettePrimary:       "primary",
	PaletteSecondary:     "secondary",
	PaletteAccent:        "accent",
	PaletteBackground:    "background",
	PaletteSurface:       "surface",
	PaletteText:          "text",
	PaletteTextSecondary: "textSecondary",
	PaletteBorder:        "border",
	PaletteSuccess:       "success",
	PaletteWarning:       "warning",
	PaletteError:         "error",
}

// Style variable names are a compatibility contract with stylesheets and
// must not change without a migration.
var paletteVariables = [...]string{
	PalettePrimary:       "--theme-primary",
	PaletteSecondary:     "--theme-secondary",
	PaletteAccent:        "--theme-accent",
	PaletteBackground:    "--theme-background",
	PaletteSurface:       "--theme-surface",
	PaletteText:          "--theme-text",
	PaletteTextSecondary: "--theme-text-secondary",
	PaletteBorder:        "--theme-border",
	PaletteSuccess:       "--theme-success",
	PaletteWarning:       "--theme-warning",
	PaletteError:         "--theme-error",
}

// PaletteKeys returns every palette key in declaration order.
func PaletteKeys() []PaletteKey {
	out := make([]PaletteKey, len(paletteKeys))
	copy(out, paletteKeys)
	return out
}

// ParsePaletteKey resolves a serialised field name such as "textSecondary".
func ParsePaletteKey(name string) (PaletteKey, bool) {
	for _, key := range paletteKeys {
		if paletteNames[key] == name {
			return key, true
		}
	}
	return 0, false
}

func (k PaletteKey) valid() bool {
	return k >= PalettePrimary && k <= PaletteError
}

// String returns the serialised field name.
func (k PaletteKey) String() string {
	if !k.valid() {
		return "unknown"
	}
	return paletteNames[k]
}

// StyleVariable returns the style-surface key the slot is published under.
func (k PaletteKey) StyleVariable() string {
	if !k.valid() {
		return ""
	}
	return paletteVariables[k]
}

func (k PaletteKey) field(p *Palette) *string {
	switch k {
	case PalettePrimary:
		return &p.Primary
	case PaletteSecondary:
		return &p.Secondary
	case PaletteAccent:
		return &p.Accent
	case PaletteBackground:
		return &p.Background
	case PaletteSurface:
		return &p.Surface
	case PaletteText:
		return &p.Text
	case PaletteTextSecondary:
		return &p.TextSecondary
	case PaletteBorder:
		return &p.Border
	case PaletteSuccess:
		return &p.Success
	case PaletteWarning:
		return &p.Warning
	case PaletteError:
		return &p.Error
	default:
		return nil
	}
}

// Get returns the colour stored in the slot identified by key.
func (p Palette) Get(key PaletteKey) string {
	if ptr := key.field(&p); ptr != nil {
		return *ptr
	}
	return ""
}

// Variables maps every style variable name to its colour, unmodified.
func (p Palette) Variables() map[string]string {
	vars := make(map[string]string, len(paletteKeys))
	for _, key := range paletteKeys {
		vars[key.StyleVariable()] = p.Get(key)
	}
	return vars
}
