package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	logginginfra "github.com/alexisbeaulieu97/sonora/internal/infrastructure/logging"
)

func TestLoggingRendererRecordsParameterSets(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{Writer: buf, Level: "debug", Format: logginginfra.FormatJSON})
	require.NoError(t, err)

	r := NewLoggingRenderer(logger)
	r.ApplyBackground(domain.Background{BaseColor1: "#0077BE", HueShift: 180})

	colors := []string{"#0077BE", "#00B4D8"}
	r.ApplySimulation(domain.Simulation{Colors: colors, AutoDemo: true})
	colors[0] = "#000000"

	require.Equal(t, 2, r.Applied())
	require.Equal(t, 180.0, r.Background().HueShift)
	require.Equal(t, []string{"#0077BE", "#00B4D8"}, r.Simulation().Colors)

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "\n"))
	require.Contains(t, out, `"component":"renderer"`)
	require.Contains(t, out, "simulation parameters applied")
}

func TestLoggingRendererWithoutLogger(t *testing.T) {
	t.Parallel()

	r := NewLoggingRenderer(nil)
	r.ApplyBackground(domain.Background{Speed: 0.5})
	require.Equal(t, 1, r.Applied())
}
