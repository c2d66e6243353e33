package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cubetimer/internal/commands"
	"github.com/jask/cubetimer/internal/graphics"
	"github.com/jask/cubetimer/internal/service"
)

var _ commands.Session = (*service.SessionService)(nil)

// Options configures the timer app.
type Options struct {
	Session  *service.SessionService
	Commands *commands.Interpreter
	// Startup lines run once a session is open.
	Startup []string
	// SessionName skips the name prompt when set.
	SessionName string

	Tick        time.Duration
	HoldTicks   int
	BlinkTicks  int
	CursorGlyph rune
	Logger      *slog.Logger
	// Now is the monotonic clock solves are timed with; time.Now when nil.
	Now func() time.Time
}

type screen string

const (
	screenTitle      screen = "title"
	screenPrompt     screen = "prompt"
	screenDisclaimer screen = "disclaimer"
	screenTimer      screen = "timer"
	screenCommand    screen = "command"
	screenPage       screen = "page"
	screenConfirm    screen = "confirm"
)

type timerState int

const (
	timerIdle timerState = iota
	// armed: space is held; the clock starts once it is released.
	timerArmed
	timerRunning
)

const (
	defaultHeight = 23
	defaultWidth  = 80
	statsX        = 51
	sessionPrompt = "session name: "
	commandPrompt = ": "
)

// App is the bubbletea model driving one canvas.
type App struct {
	ctx    context.Context
	opts   Options
	keys   keyMap
	logger *slog.Logger
	now    func() time.Time
	pacer  *pacer

	canvas *graphics.Canvas
	width  int

	screen  screen
	name    *graphics.CoverImage
	scr     *graphics.WrapImage
	frame   *graphics.Image
	clock   *graphics.Clock
	stats   []*graphics.CoverImage
	input   *graphics.InputLine
	cursor  *graphics.Cursor
	page     *graphics.Image
	pageText string
	confirm  *commands.Confirm

	timer     timerState
	ticks     int
	lastSpace int
	started   time.Time

	status       string
	statusFailed bool
	quitting     bool
}

type tickMsg time.Time
type errMsg struct{ error }

func New(ctx context.Context, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.BlinkTicks <= 0 {
		opts.BlinkTicks = 50
	}
	if opts.HoldTicks < 0 {
		opts.HoldTicks = 0
	}
	if opts.Commands == nil {
		opts.Commands = commands.New(opts.Session, nil)
	}
	a := &App{
		ctx:    ctx,
		opts:   opts,
		keys:   defaultKeys(),
		logger: opts.Logger,
		now:    opts.Now,
		pacer:  newPacer(opts.Tick),
	}
	a.layout(defaultHeight, defaultWidth)
	a.show(screenTitle)
	return a
}

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.pacer.wait(a.now()), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// layout builds the entities for a canvas of the given size.
func (a *App) layout(height, width int) {
	a.canvas = graphics.NewCanvas(height, width)
	a.width = width
	top := height - 1

	a.name = graphics.NewCoverImage(a.canvas, 0, top-1, nil)
	a.scr = graphics.NewWrapImage(a.canvas, 0, top-2, nil)
	a.frame = graphics.NewImage(a.canvas, 0, top-7, graphics.CellsFromString(graphics.TimerBackground))
	a.clock = graphics.NewClock(a.canvas, 2, top-9)
	a.stats = make([]*graphics.CoverImage, 8)
	for i := range a.stats {
		a.stats[i] = graphics.NewCoverImage(a.canvas, statsX, top-7-i, nil)
	}
	a.cursor = graphics.NewCursor(a.canvas, a.opts.CursorGlyph, graphics.Blank)
	a.input = nil
	a.refresh()
}

// refresh copies session state into the entities.
func (a *App) refresh() {
	s := a.opts.Session
	if s == nil || s.Current().ID == "" {
		return
	}
	a.name.SetCells(graphics.CellsFromString(s.Name()))
	if a.scr.Text() != s.Scramble() {
		a.scr.SetText(s.Scramble())
	}
	for i, line := range s.Summary().Lines() {
		if i < len(a.stats) {
			a.stats[i].SetCells(graphics.CellsFromString(line))
		}
	}
}

// show switches screens and redraws from a blank canvas.
func (a *App) show(sc screen) {
	a.screen = sc
	a.canvas.Clear()
	top := a.canvas.Height() - 1
	switch sc {
	case screenTitle:
		a.page = graphics.NewImage(a.canvas, 0, top, graphics.CellsFromString(strings.TrimPrefix(graphics.Title, "\n")))
	case screenDisclaimer:
		a.page = graphics.NewImage(a.canvas, 0, top, graphics.CellsFromString(graphics.Disclaimer))
	case screenPrompt:
		a.openInput(sessionPrompt)
	case screenCommand:
		a.openInput(commandPrompt)
	case screenConfirm:
		a.openInput(a.confirm.Prompt + " ")
	case screenTimer:
		a.input = nil
	}
	a.draw()
}

func (a *App) openInput(prompt string) {
	a.input = graphics.NewInputLine(a.canvas, prompt)
	a.cursor.Show()
	a.cursor.Move(a.input.CursorIndex(), a.input.Row())
}

// draw renders the current screen in z-order.
func (a *App) draw() {
	switch a.screen {
	case screenTitle, screenDisclaimer, screenPage:
		a.page.Render()
		return
	case screenPrompt:
		a.drawInput()
		return
	}
	a.name.Render()
	a.scr.Render()
	a.frame.Render()
	a.clock.Render()
	for _, st := range a.stats {
		st.Render()
	}
	a.drawInput()
}

func (a *App) drawInput() {
	if a.input == nil {
		return
	}
	a.input.Render()
	if a.cursor.State() == graphics.BlinkShown {
		a.cursor.Render()
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		height := m.Height - 1
		if height < 1 || m.Width < 1 {
			return a, nil
		}
		prompt := ""
		if a.input != nil {
			prompt = a.input.Prompt()
		}
		a.layout(height, m.Width)
		switch a.screen {
		case screenPage:
			a.page = a.textPage(a.pageText)
		case screenTitle, screenDisclaimer:
			a.page = graphics.NewImage(a.canvas, 0, height-1, a.page.Cells())
		}
		a.canvas.Clear()
		if prompt != "" {
			a.openInput(prompt)
		}
		a.draw()
	case tickMsg:
		return a, a.onTick()
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		return a, a.onKey(m)
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
		a.logger.Error("timer", "err", m.error)
	}
	return a, nil
}

func (a *App) setStatus(s string, failed bool) {
	a.status, a.statusFailed = s, failed
}

func (a *App) onTick() tea.Cmd {
	if a.quitting {
		return nil
	}
	a.ticks++
	switch a.timer {
	case timerArmed:
		if a.ticks-a.lastSpace >= a.opts.HoldTicks {
			a.timer = timerRunning
			a.started = a.now()
			a.setStatus("", false)
		}
	case timerRunning:
		a.clock.SetTime(a.now().Sub(a.started).Seconds())
		a.clock.Update()
	}
	if a.input != nil && a.ticks%a.opts.BlinkTicks == 0 {
		a.cursor.ToggleBlink()
	}
	a.draw()
	return a.tick()
}

func (a *App) onKey(m tea.KeyMsg) tea.Cmd {
	switch a.screen {
	case screenTitle:
		if a.opts.SessionName != "" {
			return a.openSession(a.opts.SessionName)
		}
		a.show(screenPrompt)
	case screenDisclaimer, screenPage:
		a.show(screenTimer)
	case screenPrompt:
		if key.Matches(m, a.keys.Cancel) {
			a.quitting = true
			return tea.Quit
		}
		if a.edit(m) {
			name := a.input.Value()
			if !commands.ValidSessionName(name) {
				a.setStatus("session names must be printable", true)
				a.show(screenPrompt)
				return nil
			}
			return a.openSession(name)
		}
	case screenCommand:
		if key.Matches(m, a.keys.Cancel) {
			a.show(screenTimer)
			return nil
		}
		if a.edit(m) {
			return a.runCommand(a.input.Value())
		}
	case screenConfirm:
		switch {
		case key.Matches(m, a.keys.Yes):
			return a.apply(a.confirm.Answer(a.ctx, true))
		case key.Matches(m, a.keys.No):
			return a.apply(a.confirm.Answer(a.ctx, false))
		}
	case screenTimer:
		return a.timerKey(m)
	}
	return nil
}

// edit feeds a key to the input line and reports whether it was submitted.
func (a *App) edit(m tea.KeyMsg) bool {
	for _, ev := range a.keys.events(m) {
		a.input.Dispatch(ev)
	}
	a.cursor.Move(a.input.CursorIndex(), a.input.Row())
	a.cursor.Show()
	if a.input.Submitted() {
		return true
	}
	a.draw()
	return false
}

func (a *App) timerKey(m tea.KeyMsg) tea.Cmd {
	isSpace := key.Matches(m, a.keys.Timer)
	switch a.timer {
	case timerIdle:
		switch {
		case isSpace:
			a.timer = timerArmed
			a.lastSpace = a.ticks
			a.clock.Reset()
			a.setStatus("release to start", false)
			a.draw()
		case key.Matches(m, a.keys.Command):
			a.show(screenCommand)
		}
	case timerArmed:
		if isSpace {
			a.lastSpace = a.ticks
		}
	case timerRunning:
		if isSpace {
			return a.stop()
		}
	}
	return nil
}

// stop records the running solve.
func (a *App) stop() tea.Cmd {
	elapsed := a.now().Sub(a.started)
	centis := int64((elapsed + 5*time.Millisecond) / (10 * time.Millisecond))
	a.timer = timerIdle
	a.clock.SetTime(float64(centis) / 100)
	a.clock.Update()
	if _, err := a.opts.Session.AddSolve(a.ctx, centis); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	a.refresh()
	a.draw()
	return nil
}

func (a *App) openSession(name string) tea.Cmd {
	if err := a.opts.Session.Open(a.ctx, name); err != nil {
		a.show(screenPrompt)
		return func() tea.Msg { return errMsg{err} }
	}
	for _, failed := range a.opts.Commands.RunStartup(a.ctx, a.opts.Startup) {
		a.logger.Warn("startup command failed", "status", failed)
	}
	a.logger.Info("session opened", "name", name)
	a.clock.Reset()
	a.refresh()
	a.show(screenDisclaimer)
	return nil
}

// textPage lays out a command's page, wrapping lines wider than the canvas.
func (a *App) textPage(text string) *graphics.Image {
	cells := graphics.CellsFromString(graphics.WrapPage(text, a.canvas.Width()))
	return graphics.NewImage(a.canvas, 0, a.canvas.Height()-1, cells)
}

func (a *App) runCommand(line string) tea.Cmd {
	a.logger.Debug("command", "line", line)
	return a.apply(a.opts.Commands.Run(a.ctx, line))
}

// apply carries out what a command asked for.
func (a *App) apply(out commands.Outcome) tea.Cmd {
	a.setStatus(out.Status, out.Failed)
	if out.Failed {
		a.logger.Warn("command failed", "status", out.Status)
	}
	a.confirm = nil
	if out.Quit {
		a.quitting = true
		return tea.Quit
	}
	a.refresh()
	switch {
	case out.Confirm != nil:
		a.confirm = out.Confirm
		a.show(screenConfirm)
	case out.Page != "":
		a.pageText = out.Page
		a.page = a.textPage(out.Page)
		a.show(screenPage)
	default:
		a.show(screenTimer)
	}
	return nil
}
