package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, 25, settings.DefaultMinutes)
	assert.Equal(t, 5, settings.MinutesStep)
	assert.Equal(t, time.Second, settings.ControllerConfig().TickInterval)
	assert.Len(t, settings.TaskSuggestions, 3)
}

func TestControllerConfigIgnoresNonPositiveInterval(t *testing.T) {
	settings := DefaultSettings()
	settings.TickInterval = 0
	assert.Equal(t, time.Second, settings.ControllerConfig().TickInterval)

	settings.TickInterval = 250 * time.Millisecond
	assert.Equal(t, 250*time.Millisecond, settings.ControllerConfig().TickInterval)
}

func TestParseSuggestions(t *testing.T) {
	got := ParseSuggestions("Project 1\n\n  Project 2  \nProject 1\n")
	assert.Equal(t, []string{"Project 1", "Project 2"}, got)
}

func TestCloneDetachesSuggestions(t *testing.T) {
	settings := DefaultSettings()
	clone := settings.Clone()
	clone.TaskSuggestions[0] = "changed"
	assert.Equal(t, "Project 1", settings.TaskSuggestions[0])
}
