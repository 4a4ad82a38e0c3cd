package cycle

import (
	"testing"
	"time"

	"focuscycle/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCycle(id string) model.Cycle {
	return model.Cycle{ID: id, Task: "Task " + id, MinutesAmount: 5, StartDate: baseTime}
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Append(newCycle("a")))
	store.SetSecondsPassed(12)
	require.NoError(t, store.Interrupt("a", baseTime.Add(time.Minute)))
	require.NoError(t, store.Append(newCycle("b")))

	cycles := store.Cycles()
	require.Len(t, cycles, 2)
	assert.Equal(t, "a", cycles[0].ID)
	assert.Equal(t, "b", cycles[1].ID)
	assert.Equal(t, "b", store.ActiveID())
	assert.Equal(t, 0, store.SecondsPassed())
	assert.Equal(t, 2, store.Len())
}

func TestStoreAppendRejectsBadIDs(t *testing.T) {
	store := NewStore()

	require.Error(t, store.Append(model.Cycle{}))
	require.NoError(t, store.Append(newCycle("a")))
	require.Error(t, store.Append(newCycle("a")))
	assert.Equal(t, 1, store.Len())
}

func TestStoreTerminalWritesOnce(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Append(newCycle("a")))

	finishedAt := baseTime.Add(5 * time.Minute)
	require.NoError(t, store.Finish("a", finishedAt))
	assert.Equal(t, "", store.ActiveID())

	require.ErrorIs(t, store.Finish("a", finishedAt.Add(time.Hour)), ErrCycleTerminal)
	require.ErrorIs(t, store.Interrupt("a", finishedAt.Add(time.Hour)), ErrCycleTerminal)

	cycle, ok := store.Find("a")
	require.True(t, ok)
	assert.Equal(t, finishedAt, *cycle.FinishedDate)
	assert.Nil(t, cycle.InterruptedDate)
}

func TestStoreUnknownCycle(t *testing.T) {
	store := NewStore()

	require.ErrorIs(t, store.Finish("missing", baseTime), ErrCycleNotFound)
	require.ErrorIs(t, store.Interrupt("missing", baseTime), ErrCycleNotFound)
	_, ok := store.Find("missing")
	assert.False(t, ok)
	_, ok = store.Active()
	assert.False(t, ok)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Append(newCycle("a")))
	require.NoError(t, store.Finish("a", baseTime))

	cycles := store.Cycles()
	*cycles[0].FinishedDate = baseTime.Add(time.Hour)
	cycles[0].Task = "changed"

	cycle, _ := store.Find("a")
	assert.Equal(t, baseTime, *cycle.FinishedDate)
	assert.Equal(t, "Task a", cycle.Task)
}

func TestStoreSecondsPassedClamp(t *testing.T) {
	store := NewStore()
	store.SetSecondsPassed(-4)
	assert.Equal(t, 0, store.SecondsPassed())
}
