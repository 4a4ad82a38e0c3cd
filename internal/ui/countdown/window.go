package countdown

import (
	"image/color"
	"strconv"

	"focuscycle/internal/core/cycle"
	"focuscycle/internal/ui/form"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// DefaultTitle is shown while no cycle is counting down.
const DefaultTitle = "FocusCycle"

// Config defines the form defaults.
type Config struct {
	DefaultMinutes int
	MinutesStep    int
	Suggestions    []string
}

// Callbacks defines window action handlers.
type Callbacks struct {
	OnStart     func(form.Input) error
	OnInterrupt func() error
}

// Window manages the countdown UI: the new-cycle form, the MM:SS digits and
// the start/interrupt button. It must only be touched from the fyne thread.
type Window struct {
	window      fyne.Window
	config      Config
	callbacks   Callbacks
	task        *widget.SelectEntry
	minutes     *widget.Entry
	minusButton *widget.Button
	plusButton  *widget.Button
	digits      [4]*canvas.Text
	separator   *canvas.Text
	startButton *widget.Button
	stopButton  *widget.Button
	feedback    *widget.Label
	active      bool
}

var (
	digitColor   = color.NRGBA{R: 225, G: 225, B: 230, A: 255}
	digitSurface = color.NRGBA{R: 41, G: 41, B: 46, A: 255}
	accentColor  = color.NRGBA{R: 0, G: 179, B: 126, A: 255}
)

const digitTextSize = 96

// New creates the countdown window.
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	window := app.NewWindow(DefaultTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	countdown := &Window{
		window:    window,
		callbacks: callbacks,
		task:      widget.NewSelectEntry(nil),
		minutes:   widget.NewEntry(),
		feedback:  widget.NewLabel(""),
	}
	countdown.task.SetPlaceHolder("Give your project a name")
	countdown.task.OnChanged = func(string) {
		countdown.refreshSubmit()
	}
	countdown.task.OnSubmitted = func(string) {
		countdown.submit()
	}
	countdown.minutes.SetPlaceHolder("00")
	countdown.minutes.OnSubmitted = func(string) {
		countdown.submit()
	}
	countdown.minusButton = widget.NewButton("-", func() {
		countdown.stepMinutes(-1)
	})
	countdown.plusButton = widget.NewButton("+", func() {
		countdown.stepMinutes(1)
	})

	for i := range countdown.digits {
		countdown.digits[i] = newDigit("0")
	}
	countdown.separator = canvas.NewText(":", accentColor)
	countdown.separator.TextSize = digitTextSize
	countdown.separator.TextStyle = fyne.TextStyle{Bold: true}

	countdown.startButton = widget.NewButton("Start", countdown.submit)
	countdown.startButton.Importance = widget.HighImportance
	countdown.stopButton = widget.NewButton("Interrupt", countdown.interrupt)
	countdown.stopButton.Importance = widget.DangerImportance

	formRow := container.NewBorder(nil, nil, widget.NewLabel("I will work on"), nil, countdown.task)
	minutesRow := container.NewHBox(
		widget.NewLabel("for"),
		countdown.minusButton,
		container.NewGridWrap(fyne.NewSize(64, countdown.minutes.MinSize().Height), countdown.minutes),
		countdown.plusButton,
		widget.NewLabel("minutes."),
	)
	clock := container.NewHBox(
		layout.NewSpacer(),
		digitCell(countdown.digits[0]),
		digitCell(countdown.digits[1]),
		countdown.separator,
		digitCell(countdown.digits[2]),
		digitCell(countdown.digits[3]),
		layout.NewSpacer(),
	)
	buttons := container.NewStack(countdown.startButton, countdown.stopButton)

	window.SetContent(container.NewPadded(container.NewVBox(
		formRow,
		minutesRow,
		layout.NewSpacer(),
		clock,
		layout.NewSpacer(),
		countdown.feedback,
		buttons,
	)))
	window.Resize(fyne.NewSize(640, 420))

	countdown.UpdateConfig(config)
	countdown.Render(cycle.NewView(false, 0, 0, ""), "")
	return countdown
}

// Window returns the underlying fyne window.
func (countdown *Window) Window() fyne.Window {
	return countdown.window
}

// Show displays the countdown window.
func (countdown *Window) Show() {
	countdown.window.Show()
	countdown.window.RequestFocus()
}

// UpdateConfig replaces form defaults. The minutes entry keeps a value the
// user already typed while no cycle is active.
func (countdown *Window) UpdateConfig(config Config) {
	if config.MinutesStep <= 0 {
		config.MinutesStep = 1
	}
	countdown.config = config
	countdown.task.SetOptions(config.Suggestions)
	if countdown.minutes.Text == "" && config.DefaultMinutes > 0 {
		countdown.minutes.SetText(strconv.Itoa(config.DefaultMinutes))
	}
}

// Render applies a controller view and title. An empty title restores the
// default window title.
func (countdown *Window) Render(view cycle.View, title string) {
	wasActive := countdown.active
	countdown.active = view.HasActiveCycle

	countdown.setDigit(0, view.MinutesDigits[0])
	countdown.setDigit(1, view.MinutesDigits[1])
	countdown.setDigit(2, view.SecondsDigits[0])
	countdown.setDigit(3, view.SecondsDigits[1])

	if title == "" {
		title = DefaultTitle
	}
	countdown.window.SetTitle(title)

	if view.HasActiveCycle {
		countdown.task.Disable()
		countdown.minutes.Disable()
		countdown.minusButton.Disable()
		countdown.plusButton.Disable()
		countdown.startButton.Hide()
		countdown.stopButton.Show()
	} else {
		countdown.task.Enable()
		countdown.minutes.Enable()
		countdown.minusButton.Enable()
		countdown.plusButton.Enable()
		countdown.stopButton.Hide()
		countdown.startButton.Show()
		if wasActive {
			countdown.task.SetText("")
			countdown.minutes.SetText(strconv.Itoa(countdown.config.DefaultMinutes))
		}
	}
	countdown.refreshSubmit()
}

// SetFeedback shows a message under the clock.
func (countdown *Window) SetFeedback(message string) {
	countdown.feedback.SetText(message)
}

func (countdown *Window) submit() {
	if !form.CanSubmit(countdown.active, countdown.task.Text) {
		return
	}
	input, err := form.Parse(countdown.task.Text, countdown.minutes.Text)
	if err != nil {
		countdown.SetFeedback(form.Message(err))
		return
	}
	if countdown.callbacks.OnStart == nil {
		return
	}
	if err := countdown.callbacks.OnStart(input); err != nil {
		countdown.SetFeedback(form.Message(err))
		return
	}
	countdown.SetFeedback("")
}

func (countdown *Window) interrupt() {
	if countdown.callbacks.OnInterrupt == nil {
		return
	}
	if err := countdown.callbacks.OnInterrupt(); err != nil {
		countdown.SetFeedback(form.Message(err))
	}
}

func (countdown *Window) stepMinutes(direction int) {
	current, err := strconv.Atoi(countdown.minutes.Text)
	if err != nil {
		current = 0
	}
	countdown.minutes.SetText(strconv.Itoa(form.StepMinutes(current, direction*countdown.config.MinutesStep)))
}

func (countdown *Window) refreshSubmit() {
	if form.CanSubmit(countdown.active, countdown.task.Text) {
		countdown.startButton.Enable()
		return
	}
	countdown.startButton.Disable()
}

func (countdown *Window) setDigit(index int, digit rune) {
	text := string(digit)
	if countdown.digits[index].Text == text {
		return
	}
	countdown.digits[index].Text = text
	countdown.digits[index].Refresh()
}

func newDigit(text string) *canvas.Text {
	digit := canvas.NewText(text, digitColor)
	digit.TextSize = digitTextSize
	digit.TextStyle = fyne.TextStyle{Monospace: true}
	digit.Alignment = fyne.TextAlignCenter
	return digit
}

func digitCell(digit *canvas.Text) fyne.CanvasObject {
	background := canvas.NewRectangle(digitSurface)
	background.CornerRadius = 8
	return container.NewStack(background, container.NewPadded(digit))
}
