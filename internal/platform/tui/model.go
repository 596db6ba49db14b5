package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/engine"
	"github.com/vovakirdan/termpong/internal/storage"
)

// paddleStep is how far one key press moves the paddle, in canvas units.
const paddleStep = 10.0

// playfieldHeight leaves one row for the help line.
func playfieldHeight(terminalHeight int) int {
	if terminalHeight <= 1 {
		return 1
	}
	return terminalHeight - 1
}

// Model is the Bubble Tea model driving a match. It is the engine's
// event source: key presses fold PaddleMove events on arrival, each tick
// folds one ComputerPaddleMove and one BallTick, and event delivery stops
// once the state is terminal.
type Model struct {
	state       engine.State
	rng         *engine.RNG
	store       *storage.Store
	screen      *Screen
	keys        KeyMap
	help        help.Model
	tickRate    int
	startedAt   time.Time
	resultSaved bool
	quitting    bool
}

// NewModel creates a model for a fresh match. One terminal row is kept
// for the help line below the playfield.
func NewModel(store *storage.Store, tickRate int, seed int64, width, height int) Model {
	return Model{
		state:     engine.NewState(),
		rng:       engine.NewRNG(seed),
		store:     store,
		screen:    NewScreen(width, playfieldHeight(height)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		tickRate:  tickRate,
		startedAt: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Paddle moves are edge-triggered:
// one key press folds exactly one event, in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.fold(engine.PaddleMove{Delta: engine.Vec{Y: -paddleStep}})
	case key.Matches(msg, m.keys.Down):
		m.fold(engine.PaddleMove{Delta: engine.Vec{Y: paddleStep}})
	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.restart()
		}
	}
	return m, nil
}

// handleTick folds one computer-paddle step and one ball step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.fold(engine.ComputerPaddleMove{})
	m.fold(engine.BallTick{})

	if m.state.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// fold delivers one event to the reducer. Once the state is terminal no
// further events are delivered; restart is the only way out.
func (m *Model) fold(ev engine.Event) {
	if m.state.GameOver {
		return
	}
	m.state = engine.Reduce(m.state, ev, m.rng)
}

// restart re-creates the initial state with a fresh seed.
func (m *Model) restart() {
	m.state = engine.NewState()
	m.rng = engine.NewRNG(time.Now().UnixNano())
	m.startedAt = time.Now()
	m.resultSaved = false
}

// saveResult records the finished match, best effort.
func (m Model) saveResult() {
	if m.store == nil {
		return
	}

	winner := storage.WinnerCPU
	if m.state.UserScore > m.state.CPUScore {
		winner = storage.WinnerPlayer
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveMatch(storage.MatchResult{
		UserScore:    m.state.UserScore,
		CPUScore:     m.state.CPUScore,
		Winner:       winner,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawState(m.screen, m.state)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local match.
func Run(store *storage.Store, tickRate int, seed int64, width, height int) error {
	model := NewModel(store, tickRate, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
