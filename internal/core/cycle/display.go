package cycle

import (
	"fmt"
	"strings"
)

// View is the read-only state the presentation layer renders.
type View struct {
	HasActiveCycle   bool
	MinutesDigits    [2]rune
	SecondsDigits    [2]rune
	CanSubmit        bool
	RemainingSeconds int
}

// Text returns the countdown as "MM:SS".
func (view View) Text() string {
	return string(view.MinutesDigits[:]) + ":" + string(view.SecondsDigits[:])
}

// RemainingSeconds returns total minus passed, never negative.
func RemainingSeconds(totalSeconds, secondsPassed int) int {
	remaining := totalSeconds - secondsPassed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatClock renders seconds as zero-padded minutes and seconds.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// NewView builds a View. totalSeconds is 0 when no cycle is active.
func NewView(hasActive bool, totalSeconds, secondsPassed int, stagedTask string) View {
	current := 0
	if hasActive {
		current = RemainingSeconds(totalSeconds, secondsPassed)
	}
	clock := FormatClock(current)
	minutes, seconds, _ := strings.Cut(clock, ":")
	view := View{
		HasActiveCycle:   hasActive,
		CanSubmit:        !hasActive && strings.TrimSpace(stagedTask) != "",
		RemainingSeconds: current,
	}
	// Durations are capped at MaxMinutes, so both halves are two digits.
	copy(view.MinutesDigits[:], []rune(minutes))
	copy(view.SecondsDigits[:], []rune(seconds))
	return view
}
