package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/render"
	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

var playDelay time.Duration

var playCmd = &cobra.Command{
	Use:   "play <moves>",
	Short: "Animate a move sequence one move at a time",
	Long: `Animate a move sequence on a solved cube, applying one move per step.

Keyboard shortcuts:
  space   - Pause / resume
  n       - Apply the next move while paused
  r       - Reset to the solved cube
  q/Esc   - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "Delay between moves (default: play.delay)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type playKeyMap struct {
	Pause key.Binding
	Step  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultPlayKeys() playKeyMap {
	return playKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// applyMoveMsg asks the model to apply its next move. gen ties the
// message to one run so requests scheduled before a reset are dropped.
type applyMoveMsg struct{ gen int }

// moveAppliedMsg confirms that a move finished applying.
type moveAppliedMsg struct {
	gen   int
	event rubik.Event
}

// playModel animates a move sequence. The cube is only touched inside
// Update; each move is confirmed before the next one is scheduled.
type playModel struct {
	session  *rubik.Session
	moves    []rubik.Move
	next     int
	delay    time.Duration
	paused   bool
	pending  bool
	gen      int
	last     *rubik.Event
	keys     playKeyMap
	quitting bool
}

func newPlayModel(moves []rubik.Move, delay time.Duration) *playModel {
	return &playModel{
		session: rubik.NewSession(),
		moves:   moves,
		delay:   delay,
		keys:    defaultPlayKeys(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.schedule()
}

// schedule requests the next move after the configured delay.
func (m *playModel) schedule() tea.Cmd {
	if m.pending || m.paused || m.done() {
		return nil
	}
	m.pending = true
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return applyMoveMsg{gen: gen}
	})
}

// step applies the next move and returns its confirmation.
func (m *playModel) step() tea.Cmd {
	if m.done() {
		return nil
	}
	ev, err := m.session.Step(m.moves[m.next])
	m.next++
	if err != nil {
		// Parsed moves always name a valid face; skip anything else
		return m.schedule()
	}
	gen := m.gen
	return func() tea.Msg {
		return moveAppliedMsg{gen: gen, event: ev}
	}
}

func (m *playModel) done() bool {
	return m.next >= len(m.moves)
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, m.schedule()

		case key.Matches(msg, m.keys.Step):
			if m.paused {
				return m, m.step()
			}

		case key.Matches(msg, m.keys.Reset):
			m.session.Reset()
			m.next = 0
			m.last = nil
			m.gen++
			m.pending = false
			return m, m.schedule()
		}

	case applyMoveMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		if m.paused {
			return m, nil
		}
		return m, m.step()

	case moveAppliedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		ev := msg.event
		m.last = &ev
		return m, m.schedule()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rubik's Cube"))
	b.WriteString("\n\n")

	c := m.session.Cube()
	if plain {
		b.WriteString(render.Plain(c))
	} else {
		b.WriteString(render.Net(c))
	}
	b.WriteString("\n")

	b.WriteString(render.MoveLine(m.moves, m.next-1))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Move %d/%d", m.next, len(m.moves))
	if m.paused {
		status += " (paused)"
	}
	b.WriteString(statusStyle.Render(status))
	if m.last != nil && m.last.Solved {
		b.WriteString("  ")
		b.WriteString(solvedStyle.Render("SOLVED!"))
	} else {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(c.Phase().DisplayName()))
	}
	b.WriteString("\n\n")

	help := []string{}
	for _, k := range []key.Binding{m.keys.Pause, m.keys.Step, m.keys.Reset, m.keys.Quit} {
		h := k.Help()
		help = append(help, h.Key+"="+h.Desc)
	}
	b.WriteString(helpStyle.Render("Keys: " + strings.Join(help, "  ")))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	moves, err := rubik.ParseMoves(joinMoves(args))
	reportSkipped(err)
	if len(moves) == 0 {
		return fmt.Errorf("no moves to play")
	}

	delay := playDelay
	if delay <= 0 {
		delay, err = cfg.PlayDelay()
		if err != nil {
			return err
		}
	}

	model := newPlayModel(moves, delay)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Played %d/%d moves\n", model.next, len(moves))
	return record(out, storage.SourcePlay, "", model.session)
}
