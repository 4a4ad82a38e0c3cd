package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconLoadsAndCaches(t *testing.T) {
	first, err := Icon("active.svg")
	require.NoError(t, err)
	assert.Equal(t, "active.svg", first.Name())
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustIcon("active.svg")
	assert.Same(t, first, second)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("missing.svg")
	require.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}
