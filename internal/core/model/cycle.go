package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Input bounds shared by the form layer and the controller.
const (
	MinMinutes    = 1
	MaxMinutes    = 60
	MaxTaskLength = 120
)

// ErrInvalidInput indicates a task name or duration outside the accepted bounds.
var ErrInvalidInput = errors.New("invalid input")

// Status describes where a Cycle is in its lifecycle.
type Status string

const (
	StatusActive      Status = "active"
	StatusFinished    Status = "finished"
	StatusInterrupted Status = "interrupted"
)

// Cycle is one countdown attempt for a task.
type Cycle struct {
	ID              string
	Task            string
	MinutesAmount   int
	StartDate       time.Time
	FinishedDate    *time.Time
	InterruptedDate *time.Time
}

// Status reports the cycle state derived from its terminal timestamps.
func (cycle Cycle) Status() Status {
	switch {
	case cycle.FinishedDate != nil:
		return StatusFinished
	case cycle.InterruptedDate != nil:
		return StatusInterrupted
	default:
		return StatusActive
	}
}

// Terminal reports whether the cycle has reached finished or interrupted.
func (cycle Cycle) Terminal() bool {
	return cycle.FinishedDate != nil || cycle.InterruptedDate != nil
}

// TotalSeconds returns the target duration in seconds.
func (cycle Cycle) TotalSeconds() int {
	return cycle.MinutesAmount * 60
}

// Clone returns a copy that shares no pointers with the receiver.
func (cycle Cycle) Clone() Cycle {
	clone := cycle
	if cycle.FinishedDate != nil {
		finished := *cycle.FinishedDate
		clone.FinishedDate = &finished
	}
	if cycle.InterruptedDate != nil {
		interrupted := *cycle.InterruptedDate
		clone.InterruptedDate = &interrupted
	}
	return clone
}

// NormalizeTask trims surrounding whitespace from a task name.
func NormalizeTask(task string) string {
	return strings.TrimSpace(task)
}

// ValidateInput checks a task name and duration against the accepted bounds.
// The task is expected to be normalized already.
func ValidateInput(task string, minutesAmount int) error {
	if task == "" {
		return fmt.Errorf("%w: task is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(task) > MaxTaskLength {
		return fmt.Errorf("%w: task longer than %d characters", ErrInvalidInput, MaxTaskLength)
	}
	if minutesAmount < MinMinutes || minutesAmount > MaxMinutes {
		return fmt.Errorf("%w: minutes must be between %d and %d, got %d", ErrInvalidInput, MinMinutes, MaxMinutes, minutesAmount)
	}
	return nil
}
