package theme

import (
	"context"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// Propagator writes the palette into the style surface. It reacts only to
// changes whose palette group differs; background and simulation edits never
// reach the sink.
type Propagator struct {
	sink   ports.StyleSink
	logger ports.Logger
}

// NewPropagator creates a Propagator writing to sink.
func NewPropagator(sink ports.StyleSink, logger ports.Logger) *Propagator {
	p := &Propagator{sink: sink}
	if logger != nil {
		p.logger = logger.With("component", "propagator")
	}
	return p
}

// Propagate writes all palette slots verbatim under their style variable names.
func (p *Propagator) Propagate(ctx context.Context, palette domain.Palette) {
	if p == nil || p.sink == nil {
		return
	}
	for _, key := range domain.PaletteKeys() {
		p.sink.SetVariable(key.StyleVariable(), palette.Get(key))
	}
	if p.logger != nil {
		p.logger.Debug(ctx, "palette propagated", "primary", palette.Primary, "background", palette.Background)
	}
}

// HandleEvent implements ports.EventHandler for theme.changed events.
func (p *Propagator) HandleEvent(ctx context.Context, event ports.DomainEvent) error {
	changed, ok := event.(ThemeChangedEvent)
	if !ok || !changed.Change.PaletteChanged() {
		return nil
	}
	p.Propagate(ctx, changed.Change.Current.Palette)
	return nil
}

// Attach writes the initial palette and subscribes to future changes.
func (p *Propagator) Attach(ctx context.Context, publisher ports.EventPublisher, initial domain.Palette) (ports.Subscription, error) {
	p.Propagate(ctx, initial)
	return publisher.Subscribe(ports.EventThemeChanged, p.HandleEvent)
}
