// Package form turns the text typed into the new-cycle form into validated input.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"focuscycle/internal/core/model"
)

// Input is a validated new-cycle request.
type Input struct {
	Task          string
	MinutesAmount int
}

// Parse validates the staged task and minutes text.
func Parse(task, minutesText string) (Input, error) {
	task = model.NormalizeTask(task)
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil {
		return Input{}, fmt.Errorf("%w: minutes must be a whole number", model.ErrInvalidInput)
	}
	if err := model.ValidateInput(task, minutes); err != nil {
		return Input{}, err
	}
	return Input{Task: task, MinutesAmount: minutes}, nil
}

// CanSubmit reports whether the start action is available.
func CanSubmit(hasActiveCycle bool, stagedTask string) bool {
	return !hasActiveCycle && model.NormalizeTask(stagedTask) != ""
}

// StepMinutes moves minutes by delta and clamps to the accepted range.
func StepMinutes(minutes, delta int) int {
	minutes += delta
	if minutes < model.MinMinutes {
		return model.MinMinutes
	}
	if minutes > model.MaxMinutes {
		return model.MaxMinutes
	}
	return minutes
}

// Message returns user-facing feedback for a parse or create error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	if index := strings.LastIndex(text, ": "); index >= 0 {
		text = text[index+2:]
	}
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
