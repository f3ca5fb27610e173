package ports

import (
	"github.com/alexisbeaulieu97/sonora/internal/domain/theme"
)

// StyleSink is the ambient key/value surface that downstream styling reads
// from. The Propagator is its only writer; any other writer of the palette
// keys breaks the surface silently.
type StyleSink interface {
	SetVariable(name, value string)
}

// Renderer consumes the background and simulation groups. Implementations
// must accept a new parameter set on every call and apply it to the next
// frame without restarting.
type Renderer interface {
	ApplyBackground(background theme.Background)
	ApplySimulation(simulation theme.Simulation)
}

// ThemeValidator checks a complete configuration. It is only consulted when
// strict editing is enabled.
type ThemeValidator interface {
	ValidateTheme(cfg theme.ThemeConfig) error
}
