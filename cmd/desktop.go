package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"focuscycle/internal/core/cycle"
	"focuscycle/internal/logging"
	"focuscycle/internal/platform"
	"focuscycle/internal/settings"
	"focuscycle/internal/storage"
	"focuscycle/internal/ui/countdown"
	"focuscycle/internal/ui/form"
	"focuscycle/internal/ui/preferences"
	"focuscycle/internal/ui/tray"
	"focuscycle/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// desktopShell wires the controller to the fyne windows and tray.
type desktopShell struct {
	app         fyne.App
	desktopApp  desktop.App
	controller  *cycle.Controller
	logger      *slog.Logger
	countdown   *countdown.Window
	preferences *preferences.Window
	tray        *tray.Manager
	idleIcon    fyne.Resource
	activeIcon  fyne.Resource
}

func runDesktop(opts *rootOptions) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return platform.NotifyRunning(appName)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	prefs, settingsPath, loadErr := opts.loadSettings()
	logger := logging.New(prefs.LogLevel, os.Stderr)
	if loadErr != nil {
		logger.Warn("load settings, using defaults", "error", loadErr)
	}

	shell := &desktopShell{
		app:        app.NewWithID("com.focuscycle.app"),
		logger:     logger,
		idleIcon:   resources.MustIcon("idle.svg"),
		activeIcon: resources.MustIcon("active.svg"),
	}
	shell.app.SetIcon(shell.idleIcon)
	shell.controller = cycle.New(prefs.ControllerConfig(), cycle.Options{Logger: logger})
	defer shell.controller.Close()

	shell.countdown = countdown.New(shell.app, countdownConfig(prefs), countdown.Callbacks{
		OnStart: func(input form.Input) error {
			_, err := shell.controller.Create(input.Task, input.MinutesAmount)
			return err
		},
		OnInterrupt: shell.controller.Interrupt,
	})

	shell.preferences = preferences.New(shell.app, prefs, func(updated settings.Settings) {
		if settingsPath != "" {
			if err := storage.SaveSettingsFile(settingsPath, updated); err != nil {
				logger.Warn("save settings", "path", settingsPath, "error", err)
			}
		}
		shell.applySettings(updated)
	})

	if desktopApp, ok := shell.app.(desktop.App); ok {
		shell.desktopApp = desktopApp
		shell.tray = tray.New(desktopApp, tray.Callbacks{
			OnShow:        shell.countdown.Show,
			OnPreferences: shell.preferences.Show,
			OnInterrupt: func() {
				if err := shell.controller.Interrupt(); err != nil {
					logger.Debug("interrupt from tray", "error", err)
				}
			},
			OnQuit: shell.quit,
		})
		desktopApp.SetSystemTrayIcon(shell.idleIcon)
		shell.countdown.Window().SetCloseIntercept(func() {
			shell.countdown.Window().Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		shell.countdown.Window().SetMaster()
	}

	events := shell.controller.Subscribe(64)
	go func() {
		for event := range events {
			fyne.Do(func() {
				shell.handleEvent(event)
			})
		}
	}()

	go guard.Serve(func() {
		fyne.Do(shell.countdown.Show)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if settingsPath != "" {
		go shell.watchSettings(ctx, settingsPath)
	}

	shell.countdown.Show()
	shell.app.Run()
	return nil
}

func (shell *desktopShell) handleEvent(event cycle.Event) {
	shell.countdown.Render(event.View, event.Title)

	switch event.Type {
	case cycle.EventCycleFinished:
		shell.app.SendNotification(fyne.NewNotification("Cycle finished", event.Task))
		shell.countdown.SetFeedback("Finished: " + event.Task)
	case cycle.EventCycleInterrupted:
		shell.countdown.SetFeedback("Interrupted: " + event.Task)
	case cycle.EventCycleStarted:
		shell.countdown.SetFeedback("")
	}

	if shell.tray == nil {
		return
	}
	if event.View.HasActiveCycle {
		shell.tray.SetStatus(tray.StatusLine(event.Title, event.Task))
		if event.Type == cycle.EventCycleStarted {
			shell.tray.SetActive(true)
			shell.desktopApp.SetSystemTrayIcon(shell.activeIcon)
		}
		return
	}
	shell.tray.SetStatus("idle")
	shell.tray.SetActive(false)
	shell.tray.SetHistory(shell.controller.Snapshot().Cycles)
	shell.desktopApp.SetSystemTrayIcon(shell.idleIcon)
}

func (shell *desktopShell) applySettings(updated settings.Settings) {
	shell.controller.UpdateConfig(updated.ControllerConfig())
	shell.countdown.UpdateConfig(countdownConfig(updated))
}

func (shell *desktopShell) watchSettings(ctx context.Context, settingsPath string) {
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		shell.logger.Warn("create settings dir", "error", err)
		return
	}
	err := storage.WatchSettingsFile(ctx, settingsPath, shell.logger, func(updated settings.Settings) {
		fyne.Do(func() {
			shell.preferences.UpdateSettings(updated)
			shell.applySettings(updated)
		})
	})
	if err != nil {
		shell.logger.Warn("watch settings", "error", err)
	}
}

func (shell *desktopShell) quit() {
	shell.controller.Close()
	shell.app.Quit()
}

func countdownConfig(prefs settings.Settings) countdown.Config {
	return countdown.Config{
		DefaultMinutes: prefs.DefaultMinutes,
		MinutesStep:    prefs.MinutesStep,
		Suggestions:    prefs.TaskSuggestions,
	}
}
