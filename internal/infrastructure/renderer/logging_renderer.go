// Package renderer provides Renderer implementations for environments
// without a GPU surface.
package renderer

import (
	"context"
	"sync"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// LoggingRenderer records each parameter set it receives and logs it at
// debug level.
type LoggingRenderer struct {
	logger ports.Logger

	mu         sync.RWMutex
	background domain.Background
	simulation domain.Simulation
	frames     int
}

// NewLoggingRenderer creates a renderer that logs through logger.
func NewLoggingRenderer(logger ports.Logger) *LoggingRenderer {
	r := &LoggingRenderer{}
	if logger != nil {
		r.logger = logger.With("component", "renderer")
	}
	return r
}

// ApplyBackground implements ports.Renderer.
func (r *LoggingRenderer) ApplyBackground(bg domain.Background) {
	r.mu.Lock()
	r.background = bg
	r.frames++
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug(context.Background(), "background parameters applied",
			"base_color_1", bg.BaseColor1,
			"base_color_2", bg.BaseColor2,
			"hue_shift", bg.HueShift,
			"speed", bg.Speed,
			"vertical_position", bg.VerticalPosition,
		)
	}
}

// ApplySimulation implements ports.Renderer.
func (r *LoggingRenderer) ApplySimulation(sim domain.Simulation) {
	sim = sim.Clone()
	r.mu.Lock()
	r.simulation = sim
	r.frames++
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug(context.Background(), "simulation parameters applied",
			"colors", len(sim.Colors),
			"viscous", sim.IsViscous,
			"auto_demo", sim.AutoDemo,
			"resolution", sim.Resolution,
		)
	}
}

// Background returns the last background parameter set.
func (r *LoggingRenderer) Background() domain.Background {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.background
}

// Simulation returns a copy of the last simulation parameter set.
func (r *LoggingRenderer) Simulation() domain.Simulation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.simulation.Clone()
}

// Applied counts parameter sets received.
func (r *LoggingRenderer) Applied() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frames
}
