package chase

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

func confirmFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func TestStartsOnTitle(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	if g.state != StateTitle {
		t.Errorf("state = %q, want title", g.state)
	}
	st := g.State()
	if st.Playing || st.GameOver || st.Score != 0 {
		t.Errorf("initial state = %+v", st)
	}
}

func TestTitleToPlayOnConfirm(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	res := g.Step(confirmFrame(), 0.016)
	if g.state != StatePlay || !res.State.Playing {
		t.Errorf("state = %q after confirm, want play", g.state)
	}
}

func TestTitleToPlayOnStartButtonPress(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	// the start control's bounds are computed during render
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, cy := g.startButton.Center()
	in := core.NewInputFrame()
	in.SetPointer(cx, cy)
	g.Step(in, 0.016)
	if g.state != StatePlay {
		t.Errorf("state = %q after pressing the start control, want play", g.state)
	}
}

func TestTitleIgnoresPressOutsideStartButton(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.Render(core.NewScreen(80, 24))

	in := core.NewInputFrame()
	in.SetPointer(0, 0)
	g.Step(in, 0.016)
	if g.state != StateTitle {
		t.Errorf("state = %q, want title to stay", g.state)
	}
}

func TestTitleSwallowsOtherInput(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRestart} {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in, 0.016)
		if g.state != StateTitle {
			t.Fatalf("state = %q after %v on title, want title", g.state, a)
		}
	}
}

func TestQuitSignalDuringPlayOnly(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	if res := g.Step(in, 0.016); res.Quit {
		t.Error("quit signaled from the title screen")
	}

	g.Step(confirmFrame(), 0)
	if res := g.Step(in, 0.016); !res.Quit {
		t.Error("quit not signaled during play")
	}
}

func TestLifeLossKeepsSessionGameOverEndsIt(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	w.onTick = func(fw *fakeWorld) {
		fw.ghosts[0].X = fw.player.X
		fw.ghosts[0].Y = fw.player.Y
	}
	respawn := newFakeWorld()
	respawn.addPellet(1, 1)
	respawn.onTick = w.onTick
	g, _ := newFakeGame(t, w, respawn)
	g.score = 70
	g.lives = 1

	g.advance(g.tickDur)
	if g.lives != 0 {
		t.Fatalf("lives = %d after first catch, want 0", g.lives)
	}
	if g.state != StatePlay {
		t.Fatalf("state = %q with a life left, want play", g.state)
	}
	if g.score != 70 || g.level != 1 {
		t.Errorf("score/level = %d/%d after respawn, want 70/1", g.score, g.level)
	}

	g.advance(g.tickDur)
	if g.lives != -1 {
		t.Fatalf("lives = %d after final catch, want -1", g.lives)
	}
	if g.state != StateGameOver {
		t.Fatalf("state = %q, want gameover", g.state)
	}
	if !g.State().GameOver {
		t.Error("GameOver flag not exposed")
	}
	// session state is preserved for display
	if g.score != 70 {
		t.Errorf("score = %d on the gameover screen, want 70", g.score)
	}
}

func TestGameOverSuppressesSimulation(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	g, _ := newFakeGame(t, w)
	g.state = StateGameOver

	ticksBefore := w.ticks
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in, 1.0)
	if w.ticks != ticksBefore {
		t.Errorf("simulation advanced during gameover: %d ticks", w.ticks-ticksBefore)
	}
}

func TestGameOverRestartResetsEverything(t *testing.T) {
	triggers := []struct {
		name string
		in   func() core.InputFrame
	}{
		{"confirm", confirmFrame},
		{"restart key", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Set(core.ActionRestart)
			return in
		}},
		{"pointer press", func() core.InputFrame {
			in := core.NewInputFrame()
			in.SetPointer(5, 5)
			return in
		}},
	}

	for _, tt := range triggers {
		t.Run(tt.name, func(t *testing.T) {
			w := newFakeWorld()
			w.addPellet(1, 1)
			fresh := newFakeWorld()
			fresh.addPellet(1, 1)
			g, _ := newFakeGame(t, w, fresh)
			g.score = 120
			g.lives = -1
			g.level = 2
			g.state = StateGameOver

			g.Step(tt.in(), 0.016)

			if g.state != StateTitle {
				t.Fatalf("state = %q, want title", g.state)
			}
			if g.score != 0 || g.level != 1 {
				t.Errorf("score/level = %d/%d, want 0/1", g.score, g.level)
			}
			if g.lives != g.cfg.Gameplay.Lives {
				t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
			}
			if g.State().GameOver {
				t.Error("GameOver flag still set after restart")
			}
			if g.world != World(fresh) {
				t.Error("restart did not install a fresh world")
			}
		})
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Snapshot {
		rt := core.DefaultConfig()
		rt.Seed = 1234
		g := New()
		g.Reset(rt)
		g.Step(confirmFrame(), 0)

		right := core.NewInputFrame()
		right.Set(core.ActionRight)
		for i := 0; i < 120; i++ {
			g.Step(right, 1.0/60)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestRenderStates(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if g.startButton.W == 0 {
		t.Error("title render did not place the start control")
	}

	g.Step(confirmFrame(), 0)
	g.Render(screen) // HUD + maze + agents must not panic on a real world

	g.state = StateGameOver
	g.Render(screen)
}

func TestTooSmallScreenFreezesGame(t *testing.T) {
	rt := core.DefaultConfig()
	rt.ScreenW = 10
	rt.ScreenH = 5
	g := New()
	g.Reset(rt)

	g.Step(confirmFrame(), 0.016)
	if g.state != StateTitle {
		t.Errorf("state = %q on a too-small screen, want title", g.state)
	}
	g.Render(core.NewScreen(10, 5))
}
