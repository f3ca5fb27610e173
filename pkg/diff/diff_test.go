package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	doc := []byte("name: Default\nspeed: 0.5\n")
	require.Empty(t, Unified(doc, doc, "a", "b"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("name: Default\nhueShift: 0\nspeed: 0.5\n")
	after := []byte("name: Default\nhueShift: 180\nspeed: 0.5\n")

	result := Unified(before, after, "Default", "Ocean Deep")
	require.True(t, strings.HasPrefix(result, "--- Default\n+++ Ocean Deep\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, result, "\n name: Default\n")
	require.Contains(t, result, "\n-hueShift: 0\n")
	require.Contains(t, result, "\n+hueShift: 180\n")
	require.Contains(t, result, "\n speed: 0.5\n")
}

func TestUnifiedCountsInsertions(t *testing.T) {
	t.Parallel()

	before := []byte("colors:\n  - '#5227FF'\n")
	after := []byte("colors:\n  - '#5227FF'\n  - '#FFFFFF'\n")

	result := Unified(before, after, "a", "b")
	require.Contains(t, result, "@@ -1,2 +1,3 @@")
	require.Contains(t, result, "+  - '#FFFFFF'")

	added, removed := Stats(before, after)
	require.Equal(t, 1, added)
	require.Zero(t, removed)
}

func TestUnifiedTruncation(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 0; i < 11000; i++ {
		before = append(before, "expected line")
		if i%2 == 0 {
			after = append(after, "actual line")
		} else {
			after = append(after, "expected line")
		}
	}

	result := Unified([]byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")), "a", "b")
	require.Contains(t, result, truncateMessage)
	require.LessOrEqual(t, len(strings.Split(result, "\n")), maxDiffLines+2)
}
