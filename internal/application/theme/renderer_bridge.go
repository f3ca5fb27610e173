package theme

import (
	"context"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// RendererBridge forwards background and simulation parameter sets to the
// renderer whenever the corresponding group changes.
type RendererBridge struct {
	renderer ports.Renderer
}

// NewRendererBridge creates a bridge feeding renderer.
func NewRendererBridge(renderer ports.Renderer) *RendererBridge {
	return &RendererBridge{renderer: renderer}
}

// HandleEvent implements ports.EventHandler for theme.changed events.
func (b *RendererBridge) HandleEvent(_ context.Context, event ports.DomainEvent) error {
	changed, ok := event.(ThemeChangedEvent)
	if !ok || b.renderer == nil {
		return nil
	}
	current := changed.Change.Current
	if changed.Change.BackgroundChanged() {
		b.renderer.ApplyBackground(current.Background)
	}
	if changed.Change.SimulationChanged() {
		b.renderer.ApplySimulation(current.Simulation.Clone())
	}
	return nil
}

// Attach pushes the initial parameter sets and subscribes to future changes.
func (b *RendererBridge) Attach(publisher ports.EventPublisher, initial domain.ThemeConfig) (ports.Subscription, error) {
	if b.renderer != nil {
		b.renderer.ApplyBackground(initial.Background)
		b.renderer.ApplySimulation(initial.Simulation.Clone())
	}
	return publisher.Subscribe(ports.EventThemeChanged, b.HandleEvent)
}
