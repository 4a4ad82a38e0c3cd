package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focuscycle/internal/core/model"
	"focuscycle/internal/settings"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DefaultMinutes  int      `yaml:"default_minutes"`
	MinutesStep     int      `yaml:"minutes_step"`
	TickIntervalMS  int      `yaml:"tick_interval_ms"`
	TaskSuggestions []string `yaml:"task_suggestions"`
	LogLevel        string   `yaml:"log_level"`
}

// LoadSettingsFile reads user preferences from configPath.
func LoadSettingsFile(configPath string) (settings.Settings, error) {
	prefs := settings.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return prefs, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&prefs, fileData)
	return prefs, nil
}

// SaveSettingsFile writes user preferences to configPath.
func SaveSettingsFile(configPath string, prefs settings.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DefaultMinutes:  prefs.DefaultMinutes,
		MinutesStep:     prefs.MinutesStep,
		TickIntervalMS:  int(prefs.TickInterval / time.Millisecond),
		TaskSuggestions: prefs.TaskSuggestions,
		LogLevel:        prefs.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(prefs *settings.Settings, fileData yamlSettings) {
	if fileData.DefaultMinutes >= model.MinMinutes && fileData.DefaultMinutes <= model.MaxMinutes {
		prefs.DefaultMinutes = fileData.DefaultMinutes
	}
	if fileData.MinutesStep > 0 && fileData.MinutesStep <= model.MaxMinutes {
		prefs.MinutesStep = fileData.MinutesStep
	}
	if fileData.TickIntervalMS >= 50 && fileData.TickIntervalMS <= 60_000 {
		prefs.TickInterval = time.Duration(fileData.TickIntervalMS) * time.Millisecond
	}
	if fileData.TaskSuggestions != nil {
		prefs.TaskSuggestions = nil
		for _, suggestion := range fileData.TaskSuggestions {
			suggestion = model.NormalizeTask(suggestion)
			if suggestion != "" {
				prefs.TaskSuggestions = append(prefs.TaskSuggestions, suggestion)
			}
		}
	}

	switch level := strings.ToLower(strings.TrimSpace(fileData.LogLevel)); level {
	case "debug", "info", "warn", "error":
		prefs.LogLevel = level
	}
}
