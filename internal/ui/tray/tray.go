package tray

import (
	"fmt"

	"focuscycle/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	menuTitle     = "FocusCycle"
	historyLength = 5
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnInterrupt   func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	interruptItem *fyne.MenuItem
	historyItem   *fyne.MenuItem
	callbacks     Callbacks
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.interruptItem = fyne.NewMenuItem("Interrupt cycle", func() {
		if manager.callbacks.OnInterrupt != nil {
			manager.callbacks.OnInterrupt()
		}
	})
	manager.interruptItem.Disabled = true

	manager.historyItem = fyne.NewMenuItem("Recent cycles", nil)
	manager.historyItem.ChildMenu = fyne.NewMenu("")
	manager.historyItem.Disabled = true

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetActive toggles cycle-related menu items.
func (manager *Manager) SetActive(active bool) {
	manager.interruptItem.Disabled = !active
	manager.refreshMenu()
}

// SetHistory lists the most recent cycles, newest first.
func (manager *Manager) SetHistory(cycles []model.Cycle) {
	items := make([]*fyne.MenuItem, 0, historyLength)
	for i := len(cycles) - 1; i >= 0 && len(items) < historyLength; i-- {
		item := fyne.NewMenuItem(HistoryLabel(cycles[i]), nil)
		item.Disabled = true
		items = append(items, item)
	}
	manager.historyItem.ChildMenu = fyne.NewMenu("", items...)
	manager.historyItem.Disabled = len(items) == 0
	manager.refreshMenu()
}

// StatusLine formats the tray status for an active countdown.
func StatusLine(clock, task string) string {
	return fmt.Sprintf("%s - %s", clock, task)
}

// HistoryLabel formats one cycle for the history submenu.
func HistoryLabel(cycle model.Cycle) string {
	return fmt.Sprintf("%s %s (%d min, %s)", cycle.StartDate.Format("15:04"), cycle.Task, cycle.MinutesAmount, cycle.Status())
}

// Status returns the current status text.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.interruptItem,
		manager.historyItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
