package cycle

import "time"

// EventType defines the type of controller event.
type EventType string

const (
	EventCycleStarted     EventType = "cycle_started"
	EventTick             EventType = "tick"
	EventCycleFinished    EventType = "cycle_finished"
	EventCycleInterrupted EventType = "cycle_interrupted"
)

// Event represents a controller update for observers.
//
// Title carries the "MM:SS" countdown while a cycle is active and is empty
// once none is, at which point observers restore their default title.
type Event struct {
	Type    EventType
	CycleID string
	Task    string
	View    View
	Title   string
	At      time.Time
}
