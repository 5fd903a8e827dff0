package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/herald/internal/mainloop"
	"github.com/five82/herald/internal/state"
)

// Actions are the device operations the dashboard can trigger.
type Actions interface {
	RefreshVersion() error
	SyncTime() error
	Notify(title, content string) error
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Loop    *mainloop.Loop
	Store   *state.Store
	Actions Actions
	Refresh time.Duration // redraw interval; zero uses one second
}

const (
	defaultRefresh = time.Second
	fieldTitle     = 0
	fieldContent   = 1
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	loop    *mainloop.Loop
	store   *state.Store
	actions Actions
	refresh time.Duration
	now     func() time.Time

	// UI state
	styles  Styles
	keys    keyMap
	width   int
	spinner spinner.Model
	flash   string

	// Data state
	snapshot state.Snapshot

	// Compose state
	composing bool
	inputs    [2]textinput.Model
	focusIdx  int
}

// New creates a new dashboard model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	var inputs [2]textinput.Model
	for i, placeholder := range []string{"Title", "Content"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		in.CharLimit = 256
		inputs[i] = in
	}

	m := Model{
		ctx:     ctx,
		loop:    opts.Loop,
		store:   opts.Store,
		actions: opts.Actions,
		refresh: refresh,
		now:     time.Now,
		styles:  defaultTheme.Styles(),
		keys:    defaultKeyMap(),
		spinner: spin,
		inputs:  inputs,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refresh),
		m.spinner.Tick,
	}
	if m.loop != nil {
		cmds = append(cmds, waitForCallback(m.ctx, m.loop))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg()
		m.syncSnapshot()
		return m, waitForCallback(m.ctx, m.loop)

	case tickMsg:
		m.syncSnapshot()
		return m, tickCmd(m.refresh)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.composing {
			return m.handleComposeKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) syncSnapshot() {
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
}

// act runs a device action and reflects an immediate refusal in the flash line.
func (m *Model) act(label string, fn func() error) {
	if m.actions == nil {
		return
	}
	if err := fn(); err != nil {
		m.flash = fmt.Sprintf("%s: %v", label, err)
	} else {
		m.flash = ""
	}
	m.syncSnapshot()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if m.composing {
		b.WriteString(m.renderCompose())
		b.WriteString("\n")
	}
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// Messages

type tickMsg time.Time

// callbackMsg carries a device callback to the Update goroutine.
type callbackMsg func()

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForCallback blocks on the loop and delivers the next callback. Only
// one is outstanding at a time, so callbacks run in queue order.
func waitForCallback(ctx context.Context, loop *mainloop.Loop) tea.Cmd {
	return func() tea.Msg {
		fn, ok := loop.Next(ctx)
		if !ok {
			return nil
		}
		return callbackMsg(fn)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
