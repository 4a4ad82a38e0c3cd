package cycle

import (
	"fmt"
	"sync"
	"time"

	"focuscycle/internal/core/model"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: baseTime}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
	return clock.now
}

type scheduledTask struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

// manualScheduler records scheduled tasks and fires them only on demand.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*scheduledTask
}

func (scheduler *manualScheduler) Schedule(interval time.Duration, fn func()) CancelFunc {
	task := &scheduledTask{interval: interval, fn: fn}
	scheduler.mu.Lock()
	scheduler.tasks = append(scheduler.tasks, task)
	scheduler.mu.Unlock()
	return func() {
		scheduler.mu.Lock()
		task.cancelled = true
		scheduler.mu.Unlock()
	}
}

// Fire runs every task that has not been cancelled.
func (scheduler *manualScheduler) Fire() {
	for _, task := range scheduler.live() {
		task.fn()
	}
}

// FireAll also runs cancelled tasks, simulating a tick that was already in
// flight when its task was cancelled.
func (scheduler *manualScheduler) FireAll() {
	scheduler.mu.Lock()
	tasks := append([]*scheduledTask(nil), scheduler.tasks...)
	scheduler.mu.Unlock()
	for _, task := range tasks {
		task.fn()
	}
}

func (scheduler *manualScheduler) live() []*scheduledTask {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var live []*scheduledTask
	for _, task := range scheduler.tasks {
		if !task.cancelled {
			live = append(live, task)
		}
	}
	return live
}

func (scheduler *manualScheduler) LiveCount() int {
	return len(scheduler.live())
}

type harness struct {
	clock      *fakeClock
	scheduler  *manualScheduler
	controller *Controller
}

func newHarness() *harness {
	clock := newFakeClock()
	scheduler := &manualScheduler{}
	counter := 0
	controller := New(model.DefaultControllerConfig(), Options{
		Clock:     clock,
		Scheduler: scheduler,
		NewID: func() string {
			counter++
			return fmt.Sprintf("cycle-%d", counter)
		},
	})
	return &harness{clock: clock, scheduler: scheduler, controller: controller}
}

// advance moves the clock forward one second at a time, ticking after each step.
func (h *harness) advance(seconds int) {
	for i := 0; i < seconds; i++ {
		h.clock.Advance(time.Second)
		h.scheduler.Fire()
	}
}

// checkInvariants verifies the active-cycle invariants hold for the store.
func checkInvariants(state State) error {
	open := 0
	for _, cycle := range state.Cycles {
		if cycle.FinishedDate != nil && cycle.InterruptedDate != nil {
			return fmt.Errorf("cycle %s has both terminal timestamps", cycle.ID)
		}
		if !cycle.Terminal() {
			open++
		}
	}
	if open > 1 {
		return fmt.Errorf("%d cycles without a terminal timestamp", open)
	}
	if state.Active != nil && state.Active.Terminal() {
		return fmt.Errorf("active cycle %s is terminal", state.Active.ID)
	}
	if state.Active == nil && open != 0 {
		return fmt.Errorf("open cycle without active pointer")
	}
	if state.SecondsPassed < 0 {
		return fmt.Errorf("negative seconds passed: %d", state.SecondsPassed)
	}
	return nil
}
