package cycle

import (
	"fmt"
	"time"

	"focuscycle/internal/core/model"
)

// Store is the append-only record of cycles plus the active-cycle pointer.
// It is not safe for concurrent use; Controller serializes access to it.
type Store struct {
	cycles        []model.Cycle
	index         map[string]int
	activeCycleID string
	secondsPassed int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Append adds a cycle, makes it active and resets the elapsed counter.
func (store *Store) Append(cycle model.Cycle) error {
	if cycle.ID == "" {
		return fmt.Errorf("append cycle: empty id")
	}
	if _, exists := store.index[cycle.ID]; exists {
		return fmt.Errorf("append cycle %s: duplicate id", cycle.ID)
	}
	store.index[cycle.ID] = len(store.cycles)
	store.cycles = append(store.cycles, cycle.Clone())
	store.activeCycleID = cycle.ID
	store.secondsPassed = 0
	return nil
}

// Cycles returns copies of all cycles in insertion order.
func (store *Store) Cycles() []model.Cycle {
	cycles := make([]model.Cycle, len(store.cycles))
	for i, cycle := range store.cycles {
		cycles[i] = cycle.Clone()
	}
	return cycles
}

// Len returns the number of recorded cycles.
func (store *Store) Len() int {
	return len(store.cycles)
}

// Find returns a copy of the cycle with the given id.
func (store *Store) Find(id string) (model.Cycle, bool) {
	position, ok := store.index[id]
	if !ok {
		return model.Cycle{}, false
	}
	return store.cycles[position].Clone(), true
}

// ActiveID returns the active-cycle pointer, or "" when none is set.
func (store *Store) ActiveID() string {
	return store.activeCycleID
}

// Active returns the active cycle. A pointer aimed at a cycle that already
// carries a terminal timestamp does not count as active.
func (store *Store) Active() (model.Cycle, bool) {
	if store.activeCycleID == "" {
		return model.Cycle{}, false
	}
	cycle, ok := store.Find(store.activeCycleID)
	if !ok || cycle.Terminal() {
		return model.Cycle{}, false
	}
	return cycle, true
}

// SecondsPassed returns elapsed seconds for the active cycle.
func (store *Store) SecondsPassed() int {
	return store.secondsPassed
}

// SetSecondsPassed records elapsed seconds for the active cycle, clamped at zero.
func (store *Store) SetSecondsPassed(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	store.secondsPassed = seconds
}

// Finish writes the finished timestamp once and clears the active pointer.
func (store *Store) Finish(id string, at time.Time) error {
	cycle, err := store.terminalTarget(id)
	if err != nil {
		return fmt.Errorf("finish cycle: %w", err)
	}
	cycle.FinishedDate = &at
	store.releaseActive(id)
	return nil
}

// Interrupt writes the interrupted timestamp once and clears the active pointer.
func (store *Store) Interrupt(id string, at time.Time) error {
	cycle, err := store.terminalTarget(id)
	if err != nil {
		return fmt.Errorf("interrupt cycle: %w", err)
	}
	cycle.InterruptedDate = &at
	store.releaseActive(id)
	return nil
}

func (store *Store) terminalTarget(id string) (*model.Cycle, error) {
	position, ok := store.index[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrCycleNotFound)
	}
	cycle := &store.cycles[position]
	if cycle.Terminal() {
		return nil, fmt.Errorf("%s: %w", id, ErrCycleTerminal)
	}
	return cycle, nil
}

func (store *Store) releaseActive(id string) {
	if store.activeCycleID == id {
		store.activeCycleID = ""
	}
}
