package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"focuscycle/internal/core/cycle"
	"focuscycle/internal/core/model"
	"focuscycle/internal/logging"
	"focuscycle/internal/ui/form"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var task string
	var minutes int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cycle in the terminal; Ctrl-C interrupts it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, _, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") {
				minutes = prefs.DefaultMinutes
			}
			input, err := form.Parse(task, strconv.Itoa(minutes))
			if err != nil {
				return err
			}

			logger := logging.New(prefs.LogLevel, cmd.ErrOrStderr())
			controller := cycle.New(prefs.ControllerConfig(), cycle.Options{Logger: logger})
			defer controller.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			result, err := runCountdown(ctx, controller, input, newLineRenderer(out, isTerminal(out)))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, summary(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "task to work on (required)")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "cycle length in minutes, 1-60 (default from settings)")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

// terminalPollInterval is how often the runner re-reads the store in case a
// full subscriber buffer dropped the terminal event.
const terminalPollInterval = time.Second

// runCountdown starts a cycle and renders its events until it finishes or
// is interrupted. Cancelling ctx interrupts the cycle.
func runCountdown(ctx context.Context, controller *cycle.Controller, input form.Input, renderer *lineRenderer) (model.Cycle, error) {
	events := controller.Subscribe(64)
	created, err := controller.Create(input.Task, input.MinutesAmount)
	if err != nil {
		return model.Cycle{}, err
	}

	poll := time.NewTicker(terminalPollInterval)
	defer poll.Stop()
	return awaitCycle(ctx, controller, created.ID, events, poll.C, renderer)
}

// awaitCycle renders events for cycleID until the cycle is terminal. Every
// poll signal checks the store directly.
func awaitCycle(ctx context.Context, controller *cycle.Controller, cycleID string, events <-chan cycle.Event, poll <-chan time.Time, renderer *lineRenderer) (model.Cycle, error) {
	done := ctx.Done()
	for {
		select {
		case <-done:
			done = nil
			err := controller.Interrupt()
			if errors.Is(err, cycle.ErrNoActiveCycle) {
				return recordedCycle(controller, cycleID)
			}
			if err != nil {
				return model.Cycle{}, err
			}
		case <-poll:
			recorded, err := recordedCycle(controller, cycleID)
			if err != nil {
				return model.Cycle{}, err
			}
			if recorded.Terminal() {
				renderer.clear()
				return recorded, nil
			}
		case event, ok := <-events:
			if !ok {
				return model.Cycle{}, cycle.ErrClosed
			}
			if event.CycleID != cycleID {
				continue
			}
			renderer.Render(event)
			if event.Type == cycle.EventCycleFinished || event.Type == cycle.EventCycleInterrupted {
				return recordedCycle(controller, cycleID)
			}
		}
	}
}

func recordedCycle(controller *cycle.Controller, cycleID string) (model.Cycle, error) {
	for _, candidate := range controller.Snapshot().Cycles {
		if candidate.ID == cycleID {
			return candidate, nil
		}
	}
	return model.Cycle{}, fmt.Errorf("cycle %s: %w", cycleID, cycle.ErrCycleNotFound)
}

var (
	clockStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00B37E"))
	taskStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C4C4CC"))
	finishedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00B37E"))
	interruptedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F75A68"))
)

// lineRenderer prints controller events. On a terminal it redraws a single
// line every tick; otherwise it prints one line per remaining minute.
type lineRenderer struct {
	out  io.Writer
	live bool
}

func newLineRenderer(out io.Writer, live bool) *lineRenderer {
	return &lineRenderer{out: out, live: live}
}

func (renderer *lineRenderer) Render(event cycle.Event) {
	switch event.Type {
	case cycle.EventCycleStarted, cycle.EventTick:
		line := clockStyle.Render(event.Title) + "  " + taskStyle.Render(event.Task)
		if renderer.live {
			fmt.Fprint(renderer.out, "\r\033[K"+line)
			return
		}
		if event.Type == cycle.EventCycleStarted || event.View.RemainingSeconds%60 == 0 {
			fmt.Fprintln(renderer.out, line)
		}
	case cycle.EventCycleFinished, cycle.EventCycleInterrupted:
		renderer.clear()
	}
}

func (renderer *lineRenderer) clear() {
	if renderer.live {
		fmt.Fprint(renderer.out, "\r\033[K")
	}
}

func summary(result model.Cycle) string {
	switch result.Status() {
	case model.StatusFinished:
		return fmt.Sprintf("%s %s (%d min)", finishedStyle.Render("finished"), result.Task, result.MinutesAmount)
	case model.StatusInterrupted:
		elapsed := int(result.InterruptedDate.Sub(result.StartDate).Seconds())
		return fmt.Sprintf("%s %s after %s", interruptedStyle.Render("interrupted"), result.Task, cycle.FormatClock(elapsed))
	default:
		return fmt.Sprintf("%s %s", result.Status(), result.Task)
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
