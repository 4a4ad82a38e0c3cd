package cycle

import "errors"

var (
	// ErrCycleAlreadyActive is returned when a cycle is created while another one is counting down.
	ErrCycleAlreadyActive = errors.New("cycle already active")
	// ErrNoActiveCycle is returned when interrupting or completing with no cycle counting down.
	ErrNoActiveCycle = errors.New("no active cycle")
	// ErrCycleTerminal is returned when a terminal timestamp would be written twice.
	ErrCycleTerminal = errors.New("cycle already finished or interrupted")
	// ErrCycleNotFound is returned when a cycle id is unknown to the store.
	ErrCycleNotFound = errors.New("cycle not found")
	// ErrClosed is returned by a controller after Close.
	ErrClosed = errors.New("controller closed")
)
