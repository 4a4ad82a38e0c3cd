package cycle

import (
	"sync"
	"time"
)

// Clock provides wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// CancelFunc stops a scheduled task. It is safe to call more than once and
// never blocks on the task's callback.
type CancelFunc func()

// Scheduler runs a callback roughly once per interval until cancelled.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) CancelFunc
}

// IntervalScheduler drives callbacks from a time.Ticker goroutine.
type IntervalScheduler struct{}

// NewIntervalScheduler returns a Scheduler backed by time.Ticker.
func NewIntervalScheduler() *IntervalScheduler {
	return &IntervalScheduler{}
}

// Schedule starts a ticking goroutine for fn.
func (scheduler *IntervalScheduler) Schedule(interval time.Duration, fn func()) CancelFunc {
	if interval <= 0 {
		interval = time.Second
	}
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case <-stopCh:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}

// Ticker owns the scheduled sampling task of the active cycle. Only one
// cycle is ticked at a time; starting a new one cancels the previous task.
type Ticker struct {
	scheduler Scheduler
	interval  time.Duration
	cycleID   string
	cancel    CancelFunc
}

// NewTicker creates a Ticker that samples every interval.
func NewTicker(scheduler Scheduler, interval time.Duration) *Ticker {
	if scheduler == nil {
		scheduler = NewIntervalScheduler()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{scheduler: scheduler, interval: interval}
}

// Start schedules fn for cycleID. Every invocation receives the id the task
// was scheduled for so the receiver can discard ticks for a stale cycle.
func (ticker *Ticker) Start(cycleID string, fn func(cycleID string)) {
	ticker.Stop()
	ticker.cycleID = cycleID
	ticker.cancel = ticker.scheduler.Schedule(ticker.interval, func() {
		fn(cycleID)
	})
}

// SetInterval changes the interval used by the next Start.
func (ticker *Ticker) SetInterval(interval time.Duration) {
	if interval > 0 {
		ticker.interval = interval
	}
}

// Stop cancels the current task, if any.
func (ticker *Ticker) Stop() {
	if ticker.cancel != nil {
		ticker.cancel()
	}
	ticker.cancel = nil
	ticker.cycleID = ""
}

// CycleID returns the cycle currently being ticked, or "".
func (ticker *Ticker) CycleID() string {
	return ticker.cycleID
}

// Running reports whether a task is scheduled.
func (ticker *Ticker) Running() bool {
	return ticker.cancel != nil
}
