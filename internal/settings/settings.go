// Package settings holds the user preferences shared by the desktop app,
// the terminal runner and the settings file.
package settings

import (
	"strings"
	"time"

	"focuscycle/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultMinutes  int
	MinutesStep     int
	TickInterval    time.Duration
	TaskSuggestions []string
	LogLevel        string
}

// DefaultSettings returns default settings for FocusCycle.
func DefaultSettings() Settings {
	return Settings{
		DefaultMinutes:  25,
		MinutesStep:     5,
		TickInterval:    time.Second,
		TaskSuggestions: []string{"Project 1", "Project 2", "Project 3"},
		LogLevel:        "info",
	}
}

// ControllerConfig converts settings to a ControllerConfig.
func (settings Settings) ControllerConfig() model.ControllerConfig {
	config := model.DefaultControllerConfig()
	if settings.TickInterval > 0 {
		config.TickInterval = settings.TickInterval
	}
	return config
}

// Clone returns a copy that does not share the suggestions slice.
func (settings Settings) Clone() Settings {
	settings.TaskSuggestions = append([]string(nil), settings.TaskSuggestions...)
	return settings
}

// ParseSuggestions splits text into trimmed, de-duplicated task suggestions.
func ParseSuggestions(text string) []string {
	var suggestions []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		line = model.NormalizeTask(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		suggestions = append(suggestions, line)
	}
	return suggestions
}
