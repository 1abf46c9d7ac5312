package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/games/fishgrab"
	"github.com/vovakirdan/fishgrab/internal/maze"
	"github.com/vovakirdan/fishgrab/internal/storage"
)

// Layout rows around the board.
const (
	titleRows  = 2 // Title + blank line
	footerRows = 3 // Status, stats, help
)

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options configures a game model.
type Options struct {
	Config      core.RuntimeConfig
	Store       RunRecorder // nil disables run recording
	Logger      *log.Logger
	Player      string
	BeadWidth   int
	ASCIIGlyphs bool
	Bell        io.Writer // nil mutes sound cues
	Clock       func() time.Time
}

// Model is the Bubble Tea model for one Fish Grab session.
// The game is event driven: it only changes on key presses.
type Model struct {
	game    *fishgrab.Game
	board   *Board
	screen  *core.Screen
	store   RunRecorder
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	player  string
	clock   func() time.Time
	run     uuid.UUID
	started time.Time
	// finished is set when the run ends so that time stops and the run
	// is recorded once.
	finished time.Duration
	saved    bool
	quitting bool
}

// NewModel creates a model and initializes the first game.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	board := NewBoard(maze.Width, maze.Height, cfg.Seed, BoardOptions{
		BeadWidth:   opts.BeadWidth,
		ASCIIGlyphs: opts.ASCIIGlyphs,
		Bell:        opts.Bell,
	}, opts.Logger)

	m := Model{
		game:   fishgrab.New(board),
		board:  board,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:  opts.Store,
		logger: opts.Logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		player: opts.Player,
		clock:  opts.Clock,
	}
	m.help.Width = cfg.ScreenW

	if err := m.game.Initialize(); err != nil {
		return Model{}, fmt.Errorf("tui: start game: %w", err)
	}
	m.beginRun()
	return m, nil
}

func (m *Model) beginRun() {
	m.run = uuid.New()
	m.started = m.clock()
	m.finished = 0
	m.saved = false
	m.logger.Info("game started", "run", m.run, "player", m.player, "seed", m.config.Seed)
}

// Init implements tea.Model. The game is already on the board.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("game quit", "run", m.run, "state", m.game.State().Status)
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionRestart:
		return m.restart()
	}

	dx, dy, ok := action.Delta()
	if !ok {
		return m, nil
	}
	mv := m.game.HandleDirection(dx, dy)
	if mv.Blocked() {
		return m, nil
	}
	m.logger.Debug("move", "outcome", mv.Outcome, "from", mv.From, "to", mv.To, "score", mv.After.Score)
	if mv.Outcome == fishgrab.OutcomeWon {
		m.finish()
	}
	return m, nil
}

// restart starts a new game once the current one is won.
// Restarting mid-run is ignored so a run cannot be abandoned by accident.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.game.State().Won() {
		return m, nil
	}
	if err := m.game.Restart(); err != nil {
		// The default layout always has room; this only fires on a broken build.
		m.logger.Error("restart failed", "error", err)
		return m, tea.Quit
	}
	m.beginRun()
	return m, nil
}

// finish stops the clock and records the run. Saving is best effort.
func (m *Model) finish() {
	m.finished = m.elapsed()
	st := m.game.State()
	m.logger.Info("game won", "run", m.run, "score", st.Score, "moves", st.Moves, "duration", m.finished)
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	_, err := m.store.SaveRun(storage.Run{
		RunID:    m.run,
		Player:   m.player,
		Score:    st.Score,
		Moves:    st.Moves,
		Duration: m.finished,
	})
	if err != nil {
		m.logger.Warn("could not save run", "run", m.run, "error", err)
	}
}

func (m Model) elapsed() time.Duration {
	if m.finished > 0 {
		return m.finished
	}
	return m.clock().Sub(m.started).Truncate(time.Millisecond)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// Game returns the running game.
func (m Model) Game() *fishgrab.Game { return m.game }

// Board returns the host board.
func (m Model) Board() *Board { return m.board }

// RunID returns the ID of the current run.
func (m Model) RunID() uuid.UUID { return m.run }

// Saved reports whether the current run has been recorded.
func (m Model) Saved() bool { return m.saved }

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	boardW := m.board.DrawWidth()
	needW := boardW + 2
	needH := titleRows + m.board.Height() + 2 + footerRows - 1
	if s.Width() < needW || s.Height() < needH {
		s.DrawTextCentered(s.Height()/2-1, "Window too small")
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d",
			needW, needH+1, m.config.ScreenW, m.config.ScreenH))
		return RenderScreen(s)
	}

	x0 := (s.Width() - needW) / 2
	s.DrawBox(core.NewRect(x0, titleRows, needW, m.board.Height()+2))
	m.board.Draw(s, x0+1, titleRows+1)

	y := titleRows + m.board.Height() + 2
	s.DrawTextCentered(y, m.board.Status())

	st := m.game.State()
	elapsed := m.elapsed()
	stats := fmt.Sprintf("Fish %d/%d   Moves %d   Time %d:%02d",
		st.Collected, fishgrab.ItemMax, st.Moves, int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	if st.Won() {
		stats += "   [r] play again"
	}
	s.DrawTextColor((s.Width()-len([]rune(stats)))/2, y+1, stats, core.ColorGray)

	title := "FISH GRAB"
	s.DrawTextColor((s.Width()-len(title))/2, 0, title, core.ColorAmber)

	return RenderScreen(s) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program on the terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
