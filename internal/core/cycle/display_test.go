package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewView(t *testing.T) {
	tests := []struct {
		name          string
		hasActive     bool
		total         int
		passed        int
		staged        string
		wantText      string
		wantCanSubmit bool
	}{
		{name: "idle without task", wantText: "00:00"},
		{name: "idle with task", staged: "Write report", wantText: "00:00", wantCanSubmit: true},
		{name: "fresh cycle", hasActive: true, total: 1500, wantText: "25:00"},
		{name: "mid cycle", hasActive: true, total: 1500, passed: 1441, wantText: "00:59"},
		{name: "full hour", hasActive: true, total: 3600, wantText: "60:00"},
		{name: "overshoot clamps", hasActive: true, total: 60, passed: 75, wantText: "00:00"},
		{name: "active blocks submit", hasActive: true, total: 60, staged: "x", wantText: "01:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(tt.hasActive, tt.total, tt.passed, tt.staged)
			assert.Equal(t, tt.wantText, view.Text())
			assert.Equal(t, tt.hasActive, view.HasActiveCycle)
			assert.Equal(t, tt.wantCanSubmit, view.CanSubmit)
		})
	}
}

func TestViewDigits(t *testing.T) {
	view := NewView(true, 600, 1, "")
	assert.Equal(t, [2]rune{'0', '9'}, view.MinutesDigits)
	assert.Equal(t, [2]rune{'5', '9'}, view.SecondsDigits)
	assert.Equal(t, 599, view.RemainingSeconds)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(-1))
	assert.Equal(t, "01:05", FormatClock(65))
	assert.Equal(t, "25:00", FormatClock(1500))
}
