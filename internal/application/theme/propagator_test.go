package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
)

var expectedVariables = []string{
	"--theme-primary",
	"--theme-secondary",
	"--theme-accent",
	"--theme-background",
	"--theme-surface",
	"--theme-text",
	"--theme-text-secondary",
	"--theme-border",
	"--theme-success",
	"--theme-warning",
	"--theme-error",
}

func requirePaletteMirrored(t *testing.T, sink *style.MemorySink, palette domain.Palette) {
	t.Helper()
	vars := sink.Variables()
	require.Len(t, vars, len(expectedVariables))
	for i, key := range domain.PaletteKeys() {
		require.Equal(t, expectedVariables[i], vars[i].Name)
		require.Equal(t, palette.Get(key), vars[i].Value, vars[i].Name)
	}
}

func TestPropagateWritesEveryKeyVerbatim(t *testing.T) {
	t.Parallel()

	sink := style.NewMemorySink()
	palette := presets.Builtin().Default().Palette
	NewPropagator(sink, nil).Propagate(context.Background(), palette)

	requirePaletteMirrored(t, sink, palette)
	value, ok := sink.Get("--theme-text-secondary")
	require.True(t, ok)
	require.Equal(t, "rgba(255, 255, 255, 0.7)", value)
}

func TestPropagatorFollowsEditor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	publisher := events.NewLoggingPublisher(nil)
	editor := NewEditor(presets.Builtin(), nil, publisher)
	sink := style.NewMemorySink()

	sub, err := NewPropagator(sink, nil).Attach(ctx, publisher, editor.Palette())
	require.NoError(t, err)
	requirePaletteMirrored(t, sink, editor.Palette())
	writes := sink.Writes()

	require.NoError(t, editor.UpdateBackground(ctx, domain.SetWarpAmount(0.3)))
	require.True(t, editor.AddColor(ctx, DefaultNewColor))
	require.Equal(t, writes, sink.Writes(), "non-palette edits must not reach the sink")

	require.NoError(t, editor.UpdatePalette(ctx, domain.SetPaletteColor(domain.PaletteBorder, "#333333")))
	requirePaletteMirrored(t, sink, editor.Palette())
	writes = sink.Writes()

	require.NoError(t, editor.UpdatePalette(ctx, domain.SetPaletteColor(domain.PaletteBorder, "#333333")))
	require.Equal(t, writes, sink.Writes(), "unchanged palette must not be re-propagated")

	require.True(t, editor.ApplyPreset(ctx, "Royal Purple"))
	requirePaletteMirrored(t, sink, editor.Palette())

	editor.ResetTheme(ctx)
	requirePaletteMirrored(t, sink, presets.Builtin().Default().Palette)

	sub.Unsubscribe()
	writes = sink.Writes()
	require.True(t, editor.ApplyPreset(ctx, "Ocean Deep"))
	require.Equal(t, writes, sink.Writes())
}

func TestPropagatorIgnoresOtherEvents(t *testing.T) {
	t.Parallel()

	sink := style.NewMemorySink()
	p := NewPropagator(sink, nil)
	require.NoError(t, p.HandleEvent(context.Background(), domainEvent{eventType: "theme.changed"}))
	require.Zero(t, sink.Writes())
}

func TestRendererBridgeForwardsChangedGroups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	publisher := events.NewLoggingPublisher(nil)
	editor := NewEditor(presets.Builtin(), nil, publisher)
	renderer := &recordingRenderer{}

	_, err := NewRendererBridge(renderer).Attach(publisher, editor.Current())
	require.NoError(t, err)
	require.Equal(t, 1, renderer.backgrounds)
	require.Equal(t, 1, renderer.simulations)

	require.NoError(t, editor.UpdateBackground(ctx, domain.SetSpeed(0.75)))
	require.Equal(t, 2, renderer.backgrounds)
	require.Equal(t, 1, renderer.simulations)
	require.Equal(t, 0.75, renderer.lastBackground.Speed)

	require.True(t, editor.RemoveColor(ctx, 0))
	require.Equal(t, 2, renderer.backgrounds)
	require.Equal(t, 2, renderer.simulations)

	renderer.lastSimulation.Colors[0] = "#000000"
	require.NotEqual(t, "#000000", editor.Simulation().Colors[0])

	require.NoError(t, editor.UpdatePalette(ctx, domain.SetPaletteColor(domain.PaletteError, "#ff0000")))
	require.Equal(t, 2, renderer.backgrounds)
	require.Equal(t, 2, renderer.simulations)

	require.True(t, editor.ApplyPreset(ctx, "Ocean Deep"))
	require.Equal(t, 3, renderer.backgrounds)
	require.Equal(t, 3, renderer.simulations)
	require.Equal(t, 180.0, renderer.lastBackground.HueShift)
}

type recordingRenderer struct {
	backgrounds    int
	simulations    int
	lastBackground domain.Background
	lastSimulation domain.Simulation
}

func (r *recordingRenderer) ApplyBackground(bg domain.Background) {
	r.backgrounds++
	r.lastBackground = bg
}

func (r *recordingRenderer) ApplySimulation(sim domain.Simulation) {
	r.simulations++
	r.lastSimulation = sim
}
