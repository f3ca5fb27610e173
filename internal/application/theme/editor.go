package theme

import (
	"context"
	"slices"
	"sync"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// DefaultNewColor is the colour user interfaces append to the fluid colour list.
const DefaultNewColor = "#FFFFFF"

// Editor is the only mutation surface of the current theme. Each operation
// runs to completion, including synchronous event delivery, before the next
// one starts. Event handlers may read from the editor but must not call its
// mutating methods.
type Editor struct {
	mu        sync.Mutex
	store     *domain.Store
	catalog   *domain.Catalog
	logger    ports.Logger
	events    ports.EventPublisher
	validator ports.ThemeValidator
}

// Option configures an Editor.
type Option func(*Editor)

// WithValidator enables strict editing: an update whose result fails
// validation is refused and the theme is left unchanged.
func WithValidator(v ports.ThemeValidator) Option {
	return func(e *Editor) {
		e.validator = v
	}
}

// NewEditor creates an editor whose store holds the catalog default.
func NewEditor(catalog *domain.Catalog, logger ports.Logger, events ports.EventPublisher, opts ...Option) *Editor {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	e := &Editor{
		store:   domain.NewStore(catalog.Default()),
		catalog: catalog,
		logger:  logger.With("component", "editor"),
		events:  events,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strict reports whether updates are validated before they are committed.
func (e *Editor) Strict() bool {
	return e.validator != nil
}

// Current returns a copy of the whole theme.
func (e *Editor) Current() domain.ThemeConfig {
	return e.store.Current()
}

func (e *Editor) Background() domain.Background {
	return e.store.Current().Background
}

func (e *Editor) Simulation() domain.Simulation {
	return e.store.Current().Simulation
}

func (e *Editor) Palette() domain.Palette {
	return e.store.Current().Palette
}

// ListPresets returns copies of every catalog preset in order.
func (e *Editor) ListPresets() []domain.ThemeConfig {
	return e.catalog.List()
}

// UpdateBackground assigns one background field. The error is always nil
// unless strict editing is enabled.
func (e *Editor) UpdateBackground(ctx context.Context, u domain.BackgroundUpdate) error {
	return applyUpdate(ctx, e, domain.GroupBackground, CauseUpdate, u, e.store.MergeBackground)
}

// UpdateSimulation assigns one simulation field. Replacing the colour list
// through this method does not enforce its length bounds.
func (e *Editor) UpdateSimulation(ctx context.Context, u domain.SimulationUpdate) error {
	return applyUpdate(ctx, e, domain.GroupSimulation, CauseUpdate, u, e.store.MergeSimulation)
}

// UpdatePalette assigns one palette colour.
func (e *Editor) UpdatePalette(ctx context.Context, u domain.PaletteUpdate) error {
	return applyUpdate(ctx, e, domain.GroupPalette, CauseUpdate, u, e.store.MergePalette)
}

// ApplyPreset replaces the theme with a copy of the named preset. An
// unknown name leaves the theme untouched and reports false.
func (e *Editor) ApplyPreset(ctx context.Context, name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applyPresetLocked(ctx, name, CausePreset)
}

// ResetTheme restores the catalog default.
func (e *Editor) ResetTheme(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPresetLocked(ctx, e.catalog.DefaultName(), CauseReset)
}

// AddColor appends a fluid colour while fewer than MaxSimulationColors are set.
func (e *Editor) AddColor(ctx context.Context, color string) bool {
	return e.editColors(ctx, func(colors []string) ([]string, bool) {
		if len(colors) >= domain.MaxSimulationColors {
			return nil, false
		}
		return append(colors, color), true
	})
}

// RemoveColor drops the fluid colour at index while more than
// MinSimulationColors remain.
func (e *Editor) RemoveColor(ctx context.Context, index int) bool {
	return e.editColors(ctx, func(colors []string) ([]string, bool) {
		if len(colors) <= domain.MinSimulationColors || index < 0 || index >= len(colors) {
			return nil, false
		}
		return slices.Delete(colors, index, index+1), true
	})
}

// SetColor replaces the fluid colour at index.
func (e *Editor) SetColor(ctx context.Context, index int, color string) bool {
	return e.editColors(ctx, func(colors []string) ([]string, bool) {
		if index < 0 || index >= len(colors) {
			return nil, false
		}
		colors[index] = color
		return colors, true
	})
}

func (e *Editor) editColors(ctx context.Context, edit func([]string) ([]string, bool)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	colors := slices.Clone(e.store.Current().Simulation.Colors)
	next, ok := edit(colors)
	if !ok {
		e.logger.Debug(ctx, "colour edit refused", "colors", len(colors))
		return false
	}
	return commitUpdate(ctx, e, domain.GroupSimulation, CauseColors, domain.SetColors(next), e.store.MergeSimulation) == nil
}

func applyUpdate[G any](ctx context.Context, e *Editor, group domain.Group, cause Cause, u domain.Update[G], merge func(domain.Update[G]) domain.Change) error {
	if u == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return commitUpdate(ctx, e, group, cause, u, merge)
}

func commitUpdate[G any](ctx context.Context, e *Editor, group domain.Group, cause Cause, u domain.Update[G], merge func(domain.Update[G]) domain.Change) error {
	if e.validator != nil {
		candidate := domain.Preview(e.store, u)
		if err := e.validator.ValidateTheme(candidate); err != nil {
			e.logger.Warn(ctx, "theme update rejected", "group", group.String(), "field", u.Field(), "value", u.Value(), "error", err)
			publishEvent(ctx, e.events, e.logger, ports.EventUpdateRejected, map[string]interface{}{
				"group": group.String(),
				"field": u.Field(),
				"error": err.Error(),
			})
			return err
		}
	}

	change := merge(u)
	if !change.Changed() {
		return nil
	}
	e.logger.Debug(ctx, "theme updated", "group", group.String(), "field", u.Field(), "value", u.Value())
	publish(ctx, e.events, e.logger, ThemeChangedEvent{
		Change: change,
		Cause:  cause,
		Group:  group.String(),
		Field:  u.Field(),
	})
	return nil
}

func (e *Editor) applyPresetLocked(ctx context.Context, name string, cause Cause) bool {
	preset, ok := e.catalog.Lookup(name)
	if !ok {
		e.logger.Warn(ctx, "preset not found", "preset", name)
		publishEvent(ctx, e.events, e.logger, ports.EventPresetNotFound, map[string]interface{}{
			"preset": name,
		})
		return false
	}

	change := e.store.Replace(preset)
	e.logger.Info(ctx, "preset applied", "preset", name, "cause", string(cause), "groups", change.Groups.Names())
	if change.Changed() {
		publish(ctx, e.events, e.logger, ThemeChangedEvent{
			Change: change,
			Cause:  cause,
			Preset: name,
		})
	}

	eventType := ports.EventPresetApplied
	if cause == CauseReset {
		eventType = ports.EventThemeReset
	}
	publishEvent(ctx, e.events, e.logger, eventType, map[string]interface{}{
		"preset":  name,
		"changed": change.Changed(),
	})
	return true
}
