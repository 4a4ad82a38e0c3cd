package cycle

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"focuscycle/internal/core/model"

	"github.com/google/uuid"
)

// Options contains collaborators for a Controller. Zero values select the
// wall clock, a time.Ticker scheduler, uuid ids and a silent logger.
type Options struct {
	Clock     Clock
	Scheduler Scheduler
	Logger    *slog.Logger
	NewID     func() string
}

// State is a point-in-time copy of the store.
type State struct {
	Cycles        []model.Cycle
	Active        *model.Cycle
	SecondsPassed int
}

// Controller is the cycle state machine. It creates, completes and
// interrupts cycles and guarantees at most one is active at a time.
type Controller struct {
	mu     sync.Mutex
	config model.ControllerConfig
	store  *Store
	ticker *Ticker
	clock  Clock
	logger *slog.Logger
	newID  func() string
	events []chan Event
	closed bool
}

// New creates a Controller with the provided configuration.
func New(config model.ControllerConfig, options Options) *Controller {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.NewID == nil {
		options.NewID = uuid.NewString
	}

	return &Controller{
		config: config,
		store:  NewStore(),
		ticker: NewTicker(options.Scheduler, config.TickInterval),
		clock:  options.Clock,
		logger: options.Logger,
		newID:  options.NewID,
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Create starts a new cycle for task lasting minutesAmount minutes.
func (controller *Controller) Create(task string, minutesAmount int) (model.Cycle, error) {
	task = model.NormalizeTask(task)
	if err := model.ValidateInput(task, minutesAmount); err != nil {
		return model.Cycle{}, fmt.Errorf("create cycle: %w", err)
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return model.Cycle{}, ErrClosed
	}
	if active, ok := controller.store.Active(); ok {
		return model.Cycle{}, fmt.Errorf("create cycle: %w (%s)", ErrCycleAlreadyActive, active.ID)
	}

	cycle := model.Cycle{
		ID:            controller.newID(),
		Task:          task,
		MinutesAmount: minutesAmount,
		StartDate:     controller.clock.Now(),
	}
	if err := controller.store.Append(cycle); err != nil {
		return model.Cycle{}, fmt.Errorf("create cycle: %w", err)
	}
	controller.ticker.Start(cycle.ID, controller.tick)

	controller.logger.Info("cycle started", "cycle", cycle.ID, "task", cycle.Task, "minutes", cycle.MinutesAmount)
	controller.emitLocked(EventCycleStarted, cycle, cycle.StartDate)
	return cycle.Clone(), nil
}

// Interrupt stops the active cycle before it completes. The ticker is
// cancelled before Interrupt returns so no later tick can finish the cycle.
func (controller *Controller) Interrupt() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return ErrClosed
	}
	active, ok := controller.store.Active()
	if !ok {
		return fmt.Errorf("interrupt cycle: %w", ErrNoActiveCycle)
	}

	controller.ticker.Stop()
	now := controller.clock.Now()
	if err := controller.store.Interrupt(active.ID, now); err != nil {
		return err
	}

	controller.logger.Info("cycle interrupted", "cycle", active.ID, "seconds_passed", controller.store.SecondsPassed())
	controller.emitLocked(EventCycleInterrupted, active, now)
	return nil
}

// Complete finishes the active cycle. The ticker calls it once the target
// duration has elapsed; calling it again for the same cycle returns
// ErrNoActiveCycle and leaves FinishedDate untouched.
func (controller *Controller) Complete() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return ErrClosed
	}
	return controller.completeLocked(controller.clock.Now())
}

// UpdateConfig replaces runtime configuration. A new tick interval applies
// from the next created cycle.
func (controller *Controller) UpdateConfig(config model.ControllerConfig) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	controller.config = config
	controller.ticker.SetInterval(config.TickInterval)
}

// Snapshot returns a copy of the current state.
func (controller *Controller) Snapshot() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	state := State{
		Cycles:        controller.store.Cycles(),
		SecondsPassed: controller.store.SecondsPassed(),
	}
	if active, ok := controller.store.Active(); ok {
		state.Active = &active
	}
	return state
}

// View returns the display values for the current state. stagedTask is the
// task text currently typed into the form.
func (controller *Controller) View(stagedTask string) View {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.viewLocked(stagedTask)
}

// Title returns the "MM:SS" countdown and true while a cycle is active.
func (controller *Controller) Title() (string, bool) {
	view := controller.View("")
	if !view.HasActiveCycle {
		return "", false
	}
	return view.Text(), true
}

// Close cancels the ticker and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.ticker.Stop()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) tick(cycleID string) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}

	active, ok := controller.store.Active()
	if !ok || active.ID != cycleID {
		controller.logger.Debug("stale tick ignored", "cycle", cycleID)
		return
	}

	now := controller.clock.Now()
	elapsed := elapsedSeconds(active.StartDate, now)
	if elapsed < active.TotalSeconds() {
		controller.store.SetSecondsPassed(elapsed)
		controller.emitLocked(EventTick, active, now)
		return
	}

	if err := controller.completeLocked(now); err != nil {
		controller.logger.Warn("complete cycle from tick", "cycle", cycleID, "error", err)
	}
}

func (controller *Controller) completeLocked(now time.Time) error {
	active, ok := controller.store.Active()
	if !ok {
		return fmt.Errorf("complete cycle: %w", ErrNoActiveCycle)
	}

	controller.ticker.Stop()
	if err := controller.store.Finish(active.ID, now); err != nil {
		return err
	}
	controller.store.SetSecondsPassed(active.TotalSeconds())

	controller.logger.Info("cycle finished", "cycle", active.ID, "task", active.Task)
	controller.emitLocked(EventCycleFinished, active, now)
	return nil
}

func (controller *Controller) viewLocked(stagedTask string) View {
	active, ok := controller.store.Active()
	if !ok {
		return NewView(false, 0, 0, stagedTask)
	}
	return NewView(true, active.TotalSeconds(), controller.store.SecondsPassed(), stagedTask)
}

func (controller *Controller) emitLocked(eventType EventType, cycle model.Cycle, at time.Time) {
	view := controller.viewLocked("")
	event := Event{
		Type:    eventType,
		CycleID: cycle.ID,
		Task:    cycle.Task,
		View:    view,
		At:      at,
	}
	if view.HasActiveCycle {
		event.Title = view.Text()
	}

	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// elapsedSeconds truncates to whole seconds and treats a clock that moved
// backwards as no time elapsed.
func elapsedSeconds(start, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}
