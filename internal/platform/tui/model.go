package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// sessionInfo is implemented by games that expose lives and level for run
// history records.
type sessionInfo interface {
	Lives() int
	Level() int
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	// lastFrame timestamps the previous FrameMsg; the gap between frames
	// is the real delta fed into the simulation.
	lastFrame time.Time

	// runStart marks when the current play session entered play state.
	runStart time.Time

	quitting bool
	runSaved bool // score and run saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.saveQuitRun()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// All other keys go through the action map; the game decides what a
	// confirm or a quit means in its current state.
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse forwards mouse presses as pointer input, which the title
// screen hit-tests against its start control.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetPointer(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new dimensions unless the session already ended.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleFrame runs one frame: measure real elapsed time, advance the game,
// react to its signals, persist results.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.FrameRate)
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	wasPlaying := m.gameState.Playing

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Quit {
		m.saveQuitRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.Playing && !wasPlaying {
		m.runStart = time.Now()
		m.runSaved = false
	}

	if m.gameState.GameOver && !m.runSaved {
		m.persistRun(storage.EndReasonGameOver)
		m.runSaved = true
	}

	return m, frameCmd(m.config.FrameRate)
}

// saveQuitRun records an aborted play session, if one is in progress.
func (m *Model) saveQuitRun() {
	if m.gameState.Playing {
		m.persistRun(storage.EndReasonQuit)
	}
}

// persistRun saves the score plus a run history record, best effort.
func (m *Model) persistRun(reason string) {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	run := storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		EndReason: reason,
	}
	if info, ok := m.game.(sessionInfo); ok {
		run.LevelReached = info.Level()
		run.LivesLeft = info.Lives()
	}
	if !m.runStart.IsZero() {
		run.Duration = int(time.Since(m.runStart).Seconds())
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chomp", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer input for the start control
	)

	_, err := p.Run()
	return err
}
