package chase

import (
	"github.com/vovakirdan/tui-chomp/internal/config"
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

// Machine states.
const (
	StateTitle    = "title"
	StatePlay     = "play"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir optionally replaces the embedded boards with a directory of
// level files.
var levelsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLevelsDir points the game at a custom level directory.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Game runs the chase loop: a fixed-rate simulation fed by real frame
// deltas, collision checks against the ghosts, and the title/play/gameover
// machine around it.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ChompConfig
	library *engine.Library

	// newWorld builds a fresh level instance; swapped out in tests.
	newWorld func(level int) World
	world    World

	state string
	score int
	lives int
	level int

	// accum is real time not yet consumed by a tick, in seconds.
	accum   float64
	tickDur float64

	// per-tick position snapshot, reused across ticks
	prevPlayer point
	prevGhosts []ghostSample

	// startButton is the screen-space hit area of the title start control,
	// recomputed on every title render.
	startButton core.Rect

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new chase game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "chomp" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Chomp" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultChompConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.tickDur = 1.0 / float64(cfg.Simulation.TickHz)

	g.library = loadLibrary()
	if g.newWorld == nil {
		g.newWorld = g.engineWorld
	}

	g.minScreenW = 30
	g.minScreenH = 23
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.resetSession()
}

func loadLibrary() *engine.Library {
	if levelsDir != "" {
		if lib, err := engine.LoadDir(levelsDir); err == nil {
			return lib
		}
	}
	lib, err := engine.DefaultLibrary()
	if err != nil {
		// The embedded boards are validated at build time; failing to load
		// them means a broken binary.
		panic(err)
	}
	return lib
}

// engineWorld is the production world factory.
func (g *Game) engineWorld(level int) World {
	return engine.New(g.library.Get(level), engine.Options{
		Seed:      g.runtime.Seed + int64(level),
		ChaseBias: g.cfg.Ghosts.ChaseBias,
	})
}

// resetSession wipes score, lives and level and returns to the title.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.state = StateTitle
	g.installWorld()
}

// installWorld replaces the current level instance with a fresh one for the
// current level number and zeroes the time budget, so a respawn never opens
// with a burst of deferred ticks.
func (g *Game) installWorld() {
	g.world = g.newWorld(g.level)
	g.world.Player().Active = true
	g.prevGhosts = make([]ghostSample, len(g.world.Ghosts()))
	g.accum = 0
}

// Step consumes one frame of input plus the real seconds elapsed since the
// previous frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateTitle:
		if g.startPressed(in) {
			g.state = StatePlay
			g.accum = 0
		}

	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || in.PointerPressed {
			g.resetSession()
		}

	case StatePlay:
		if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
			return core.StepResult{State: g.State(), Quit: true}
		}
		g.applyDirection(in)
		g.advance(dt)
	}

	return core.StepResult{State: g.State()}
}

// startPressed reports a confirm key or a pointer press inside the start
// control.
func (g *Game) startPressed(in core.InputFrame) bool {
	if in.Has(core.ActionConfirm) {
		return true
	}
	return in.PointerPressed && g.startButton.Contains(in.PointerX, in.PointerY)
}

// applyDirection forwards the player's requested direction to the engine.
// The engine applies it at the next tile center, so holding a key ahead of
// a junction buffers the turn.
func (g *Game) applyDirection(in core.InputFrame) {
	p := g.world.Player()
	switch {
	case in.Has(core.ActionUp):
		p.NextDir = engine.DirUp
	case in.Has(core.ActionDown):
		p.NextDir = engine.DirDown
	case in.Has(core.ActionLeft):
		p.NextDir = engine.DirLeft
	case in.Has(core.ActionRight):
		p.NextDir = engine.DirRight
	}
}

// loseLife handles a catch: decrement lives, and either end the game or
// respawn on a fresh instance of the same level.
func (g *Game) loseLife() {
	g.lives--
	if g.lives < 0 {
		g.state = StateGameOver
		return
	}
	g.installWorld()
}

// advanceLevel moves to the next board, wrapping past the last one back to
// the first. Score and lives carry over.
func (g *Game) advanceLevel() {
	g.level++
	if g.level > g.library.Count() {
		g.level = 1
	}
	g.installWorld()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Playing:  g.state == StatePlay,
	}
}

// Lives returns the remaining lives for HUD display.
func (g *Game) Lives() int { return g.lives }

// Level returns the 1-based level number for HUD display.
func (g *Game) Level() int { return g.level }

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
}
