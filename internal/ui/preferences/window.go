package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"focuscycle/internal/core/model"
	"focuscycle/internal/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    settings.Settings
	onSave      func(settings.Settings)
	minutes     *widget.Entry
	step        *widget.Entry
	tickMillis  *widget.Entry
	suggestions *widget.Entry
	logLevel    *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, current settings.Settings, onSave func(settings.Settings)) *Window {
	window := app.NewWindow("FocusCycle Settings")

	minutes := widget.NewEntry()
	step := widget.NewEntry()
	tickMillis := widget.NewEntry()
	suggestions := widget.NewMultiLineEntry()
	suggestions.SetMinRowsVisible(4)
	logLevel := widget.NewSelect(logLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default duration"), minutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Minutes step"), step, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Refresh every"), tickMillis, widget.NewLabel("ms")),
		widget.NewLabel("Task suggestions (one per line)"),
		suggestions,
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		minutes:     minutes,
		step:        step,
		tickMillis:  tickMillis,
		suggestions: suggestions,
		logLevel:    logLevel,
	}
	prefs.UpdateSettings(current)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(current settings.Settings) {
	prefs.settings = current.Clone()
	prefs.minutes.SetText(strconv.Itoa(current.DefaultMinutes))
	prefs.step.SetText(strconv.Itoa(current.MinutesStep))
	prefs.tickMillis.SetText(fmt.Sprintf("%d", current.TickInterval.Milliseconds()))
	prefs.suggestions.SetText(strings.Join(current.TaskSuggestions, "\n"))
	prefs.logLevel.SetSelected(current.LogLevel)
}

func (prefs *Window) handleSave() {
	updated := prefs.settings.Clone()

	if minutes, ok := parsePositiveInt(prefs.minutes.Text); ok && minutes <= model.MaxMinutes {
		updated.DefaultMinutes = minutes
	}
	if step, ok := parsePositiveInt(prefs.step.Text); ok && step <= model.MaxMinutes {
		updated.MinutesStep = step
	}
	if millis, ok := parsePositiveInt(prefs.tickMillis.Text); ok {
		updated.TickInterval = time.Duration(millis) * time.Millisecond
	}
	updated.TaskSuggestions = settings.ParseSuggestions(prefs.suggestions.Text)
	if prefs.logLevel.Selected != "" {
		updated.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = updated
	if prefs.onSave != nil {
		prefs.onSave(updated.Clone())
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
