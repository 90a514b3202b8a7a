package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/define/internal/audio"
)

// Styles for the indicator
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current state of the indicator.
type State int

const (
	StatePlaying State = iota
	StateDone
	StateInterrupted
)

// Model is the Bubble Tea model shown while a clip plays.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	label    string

	// timeout is the playback budget; elapsed is measured against it.
	timeout time.Duration
	elapsed time.Duration
}

// NewModel creates an indicator for a clip labelled label that may play for
// at most timeout.
func NewModel(label string, timeout time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 20

	return Model{
		state:    StatePlaying,
		spinner:  sp,
		progress: prog,
		label:    label,
		timeout:  timeout,
	}
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// Init starts the spinner and the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickElapsed())
}

// Messages
type (
	// PlaybackDoneMsg is sent when the player exits.
	PlaybackDoneMsg struct{}

	// TickMsg advances the elapsed time.
	TickMsg struct {
		Elapsed time.Duration
	}
)

const tickInterval = 100 * time.Millisecond

func tickElapsed() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{Elapsed: tickInterval}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.state = StateInterrupted
			return m, tea.Quit
		}

	case PlaybackDoneMsg:
		m.state = StateDone
		return m, tea.Quit

	case TickMsg:
		if m.state != StatePlaying {
			return m, nil
		}
		m.elapsed += msg.Elapsed
		return m, tickElapsed()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the indicator. It is empty once playback has ended so the
// line is cleared from the terminal.
func (m Model) View() string {
	if m.state != StatePlaying {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Playing %s", m.label)))
	b.WriteString(" ")
	b.WriteString(m.progress.ViewAs(m.fraction()))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render("(esc to stop)"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) fraction() float64 {
	if m.timeout <= 0 {
		return 0
	}
	f := float64(m.elapsed) / float64(m.timeout)
	if f > 1 {
		return 1
	}
	return f
}

// Indicator runs the Model as a Bubble Tea program for the length of one
// playback. It implements audio.Indicator.
type Indicator struct {
	in      io.Reader
	out     io.Writer
	label   string
	timeout time.Duration
}

// NewIndicator creates an Indicator that reads keys from in and draws to
// out, usually os.Stdin and os.Stderr.
func NewIndicator(in io.Reader, out io.Writer, label string, timeout time.Duration) *Indicator {
	return &Indicator{in: in, out: out, label: label, timeout: timeout}
}

// Wait shows the indicator until done is closed, the user presses esc or
// ctrl+c, or ctx ends.
func (i *Indicator) Wait(ctx context.Context, done <-chan struct{}) error {
	p := tea.NewProgram(NewModel(i.label, i.timeout),
		tea.WithContext(ctx),
		tea.WithInput(i.in),
		tea.WithOutput(i.out),
	)

	go func() {
		select {
		case <-done:
			p.Send(PlaybackDoneMsg{})
		case <-ctx.Done():
		}
	}()

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(Model); ok && m.state == StateInterrupted {
		return audio.ErrInterrupted
	}
	return nil
}
