package catch

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-catch/internal/config"
	"github.com/vovakirdan/fruit-catch/internal/core"
	"github.com/vovakirdan/fruit-catch/internal/registry"
)

const frame = 16 * time.Millisecond

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig() config.CatchConfig {
	return config.DefaultCatchConfig()
}

// newActiveGame returns a started game with spawning stopped, so tests
// control exactly which fruit exist.
func newActiveGame(t *testing.T, cfg config.CatchConfig) *Game {
	t.Helper()
	g := New(WithConfig(cfg), WithClock(core.NewManualClock(epoch)))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	g.Start()
	g.spawnTimer.Stop()
	return g
}

func (g *Game) addFruit(name string, x, y, speed float64) {
	for i := range g.catalog {
		if g.catalog[i].Name == name {
			size := g.cfg.Fruit.Size
			g.fruits = append(g.fruits, Fruit{X: x, Y: y, W: size, H: size, Speed: speed, Type: &g.catalog[i]})
			return
		}
	}
	panic("unknown fruit " + name)
}

func runUntilEmpty(g *Game, maxTicks int) int {
	for i := 1; i <= maxTicks; i++ {
		g.Advance(frame, core.NewInputFrame())
		if len(g.fruits) == 0 {
			return i
		}
	}
	return -1
}

func TestGameStartsIdle(t *testing.T) {
	g := New(WithConfig(testConfig()))
	g.Reset(core.DefaultConfig())

	if g.session.Phase != PhaseIdle {
		t.Fatalf("expected idle after reset, got %s", g.session.Phase)
	}
	if g.spawnTimer.Running() {
		t.Error("spawn timer should not run before start")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	x := g.basket.X
	res := g.Advance(time.Second, in)
	if g.basket.X != x {
		t.Error("input while idle should be ignored")
	}
	if len(res.Events) != 0 || res.State.Started {
		t.Errorf("idle tick should not start a session: %+v", res)
	}
}

func TestBasketStartPosition(t *testing.T) {
	g := newActiveGame(t, testConfig())

	if g.basket.X != 350 || g.basket.Y != 410 {
		t.Errorf("basket at (%v, %v), expected (350, 410)", g.basket.X, g.basket.Y)
	}
}

func TestConfirmStartsSession(t *testing.T) {
	g := New(WithConfig(testConfig()))
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Advance(frame, in)

	if g.session.Phase != PhaseActive {
		t.Fatalf("expected active, got %s", g.session.Phase)
	}
	if res.Count(core.EventStart) != 1 {
		t.Errorf("expected one start event, got %d", res.Count(core.EventStart))
	}
	if !g.spawnTimer.Running() || g.spawnTimer.Period() != 2*time.Second {
		t.Errorf("spawn timer should run at 2s, running=%v period=%v", g.spawnTimer.Running(), g.spawnTimer.Period())
	}
	if res.State.Lives != 3 || res.State.Level != 1 {
		t.Errorf("unexpected initial state %+v", res.State)
	}

	// Confirm during play does not restart.
	g.session.Score = 50
	g.Advance(frame, in)
	if g.session.Score != 50 {
		t.Error("confirm while active should not restart")
	}
}

func TestBasketStaysInBounds(t *testing.T) {
	tests := []struct {
		name    string
		action  core.Action
		pointer float64
		usePtr  bool
		elapsed time.Duration
		wantX   float64
	}{
		{"far left", core.ActionLeft, 0, false, 10 * time.Second, 0},
		{"far right", core.ActionRight, 0, false, 10 * time.Second, 700},
		{"up aliases left", core.ActionUp, 0, false, 10 * time.Second, 0},
		{"down aliases right", core.ActionDown, 0, false, 10 * time.Second, 700},
		{"pointer left edge", core.ActionNone, 0, true, frame, 0},
		{"pointer right edge", core.ActionNone, 1, true, frame, 700},
		{"pointer centre", core.ActionNone, 0.5, true, frame, 350},
		{"pointer quarter", core.ActionNone, 0.25, true, frame, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Difficulty.Enabled = false
			g := newActiveGame(t, cfg)

			in := core.NewInputFrame()
			if tc.action != core.ActionNone {
				in.Set(tc.action)
			}
			if tc.usePtr {
				in.SetPointer(tc.pointer)
			}
			g.Advance(tc.elapsed, in)

			if g.basket.X != tc.wantX {
				t.Errorf("basket x = %v, expected %v", g.basket.X, tc.wantX)
			}
			if g.basket.X < 0 || g.basket.X > 800-g.basket.W {
				t.Errorf("basket x %v out of bounds", g.basket.X)
			}
		})
	}
}

func TestBasketMovesBySpeedPerFrame(t *testing.T) {
	g := newActiveGame(t, testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Advance(frame, in)
	if g.basket.X != 365 {
		t.Errorf("one frame right: x = %v, expected 365", g.basket.X)
	}

	g.Advance(2*frame, in)
	if g.basket.X != 395 {
		t.Errorf("two frames right: x = %v, expected 395", g.basket.X)
	}

	both := core.NewInputFrame()
	both.Set(core.ActionLeft)
	both.Set(core.ActionRight)
	g.Advance(frame, both)
	if g.basket.X != 395 {
		t.Errorf("opposite keys should cancel, x = %v", g.basket.X)
	}
}

func TestPointerOverridesKeys(t *testing.T) {
	g := newActiveGame(t, testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.SetPointer(0.1)
	g.Advance(frame, in)

	// 0.1 * 800 - 50
	if g.basket.X != 30 {
		t.Errorf("basket x = %v, expected 30", g.basket.X)
	}
}

func TestFruitFallsEveryTick(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.addFruit("pear", 100, -50, 1.5)
	g.addFruit("lemon", 300, -50, 7)

	prev := []float64{g.fruits[0].Y, g.fruits[1].Y}
	for range 20 {
		g.Advance(frame, core.NewInputFrame())
		for i, f := range g.fruits {
			if f.Y <= prev[i] {
				t.Fatalf("fruit %d did not fall: %v -> %v", i, prev[i], f.Y)
			}
			prev[i] = f.Y
		}
	}
	if g.fruits[0].Y != -50+20*1.5 {
		t.Errorf("pear y = %v, expected %v", g.fruits[0].Y, -50+20*1.5)
	}
}

func TestCatchScenario(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.basket.X = 0
	g.addFruit("apple", 0, -50, 5)

	ticks := runUntilEmpty(g, 500)
	if ticks < 0 {
		t.Fatal("fruit was never resolved")
	}
	// First overlap when y + 50 > 410.
	if ticks != 83 {
		t.Errorf("caught after %d ticks, expected 83", ticks)
	}

	s := g.Session()
	if s.Score != 10 || s.Lives != 3 || len(g.fruits) != 0 {
		t.Errorf("score=%d lives=%d fruits=%d, expected 10, 3, 0", s.Score, s.Lives, len(g.fruits))
	}
	if g.HUD().Score != 10 {
		t.Errorf("HUD score = %d, expected 10", g.HUD().Score)
	}
}

func TestCatchRemovesOnlyCaughtFruit(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.basket.X = 0
	g.addFruit("grapes", 0, 356, 5)
	g.addFruit("orange", 600, 0, 1)

	res := g.Advance(frame, core.NewInputFrame())

	if res.Count(core.EventCatch) != 1 {
		t.Fatalf("expected one catch, got %d", res.Count(core.EventCatch))
	}
	if g.session.Score != 25 {
		t.Errorf("score = %d, expected 25", g.session.Score)
	}
	if len(g.fruits) != 1 || g.fruits[0].Type.Name != "orange" {
		t.Errorf("expected only the orange to remain, got %+v", g.fruits)
	}
}

func TestMissScenario(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.addFruit("apple", 700, -50, 5)

	ticks := runUntilEmpty(g, 500)
	// First tick with y > 500.
	if ticks != 111 {
		t.Errorf("missed after %d ticks, expected 111", ticks)
	}

	s := g.Session()
	if s.Lives != 2 || s.Score != 0 || len(g.fruits) != 0 {
		t.Errorf("score=%d lives=%d fruits=%d, expected 0, 2, 0", s.Score, s.Lives, len(g.fruits))
	}
	if g.HUD().Lives != 2 {
		t.Errorf("HUD lives = %d, expected 2", g.HUD().Lives)
	}
}

func TestFruitAtBottomEdgeIsNotMissed(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.addFruit("apple", 700, 495, 5)

	g.Advance(frame, core.NewInputFrame())
	if len(g.fruits) != 1 || g.session.Lives != 3 {
		t.Fatalf("y == height should not be a miss: fruits=%d lives=%d", len(g.fruits), g.session.Lives)
	}

	g.Advance(frame, core.NewInputFrame())
	if len(g.fruits) != 0 || g.session.Lives != 2 {
		t.Errorf("y > height should be a miss: fruits=%d lives=%d", len(g.fruits), g.session.Lives)
	}
}

func TestCatchPrecedesMiss(t *testing.T) {
	cfg := testConfig()
	cfg.Basket.Margin = -20 // Basket bottom below the playfield
	g := newActiveGame(t, cfg)
	g.basket.X = 0
	g.addFruit("lemon", 0, 495, 10)

	res := g.Advance(frame, core.NewInputFrame())

	if res.Count(core.EventCatch) != 1 || res.Count(core.EventMiss) != 0 {
		t.Errorf("expected catch only, got %v", res.Events)
	}
	if g.session.Score != 30 || g.session.Lives != 3 {
		t.Errorf("score=%d lives=%d, expected 30, 3", g.session.Score, g.session.Lives)
	}
}

func TestTouchingEdgesDoNotCatch(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.basket.X = 100
	// Right edge of fruit touches the basket's left edge.
	g.addFruit("apple", 50, 400, 0.0001)

	g.Advance(frame, core.NewInputFrame())
	if g.session.Score != 0 || len(g.fruits) != 1 {
		t.Errorf("touching edges should not overlap: score=%d fruits=%d", g.session.Score, len(g.fruits))
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1
	g := newActiveGame(t, cfg)
	g.addFruit("apple", 600, 499, 5)
	g.addFruit("pear", 700, 499, 5)
	g.addFruit("lemon", 0, 0, 1)

	res := g.Advance(frame, core.NewInputFrame())

	if res.Count(core.EventGameOver) != 1 {
		t.Errorf("expected one game over, got %d", res.Count(core.EventGameOver))
	}
	if res.Count(core.EventMiss) != 1 {
		t.Errorf("misses after game over should be dropped, got %d misses", res.Count(core.EventMiss))
	}
	if g.session.Lives != 0 || g.session.Phase != PhaseOver {
		t.Errorf("lives=%d phase=%s, expected 0, over", g.session.Lives, g.session.Phase)
	}
	if len(g.fruits) != 1 {
		t.Errorf("expected the unresolved fruit to remain, got %d fruits", len(g.fruits))
	}
	if !res.State.GameOver || !g.HUD().GameOver {
		t.Error("state and HUD should report game over")
	}

	for range 100 {
		res = g.Advance(time.Second, core.NewInputFrame())
		if res.Count(core.EventGameOver) != 0 {
			t.Fatal("game over fired again")
		}
	}
}

func TestNoSpawnsAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1
	g := newActiveGame(t, cfg)
	g.spawnTimer.Start(g.session.SpawnPeriod)
	g.addFruit("apple", 700, 499, 5)

	g.Advance(frame, core.NewInputFrame())
	if g.session.Phase != PhaseOver {
		t.Fatalf("expected game over, got %s", g.session.Phase)
	}
	if g.spawnTimer.Running() {
		t.Error("spawn timer should be stopped after game over")
	}

	for range 50 {
		res := g.Advance(time.Second, core.NewInputFrame())
		if res.Count(core.EventSpawn) != 0 {
			t.Fatal("spawned after game over")
		}
	}
	if len(g.fruits) != 0 {
		t.Errorf("expected no fruit after game over, got %d", len(g.fruits))
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1
	g := newActiveGame(t, cfg)
	g.basket.X = 0
	g.addFruit("apple", 0, 356, 5)
	g.addFruit("pear", 700, 499, 5)
	g.Advance(frame, core.NewInputFrame())
	if g.session.Phase != PhaseOver || g.session.Score != 10 {
		t.Fatalf("setup failed: phase=%s score=%d", g.session.Phase, g.session.Score)
	}

	// Restart is ignored while active, honoured when over.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Advance(frame, in)

	if res.Count(core.EventStart) != 1 {
		t.Fatal("restart should start a new session")
	}
	s := g.Session()
	if s.Phase != PhaseActive || s.Score != 0 || s.Lives != 1 || s.Level != 1 || s.Elapsed != 0 {
		t.Errorf("session not reinitialised: %+v", s)
	}
	if g.HUD().GameOver {
		t.Error("HUD should hide game over after restart")
	}
	if len(g.fruits) != 0 {
		t.Errorf("restart should clear fruit, got %d", len(g.fruits))
	}

	g.session.Score = 99
	g.Advance(frame, in)
	if g.session.Score != 99 {
		t.Error("restart while active should be ignored")
	}
}

func TestDifficultyLevelBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1000
	g := newActiveGame(t, cfg)
	g.spawnTimer.Start(g.session.SpawnPeriod)

	g.Advance(9999*time.Millisecond, core.NewInputFrame())
	if g.session.Level != 1 {
		t.Fatalf("level at 9999ms = %d, expected 1", g.session.Level)
	}

	res := g.Advance(time.Millisecond, core.NewInputFrame())
	if g.session.Level != 2 {
		t.Fatalf("level at 10000ms = %d, expected 2", g.session.Level)
	}
	if res.Count(core.EventLevelUp) != 1 {
		t.Errorf("expected one level up event, got %d", res.Count(core.EventLevelUp))
	}
	if g.session.MaxSpeed != 2.5 || g.session.SpawnPeriod != 1850*time.Millisecond {
		t.Errorf("level 2 bands: speed=%v period=%v", g.session.MaxSpeed, g.session.SpawnPeriod)
	}
}

func TestLevelUpRestartsSpawnTimer(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1000
	g := newActiveGame(t, cfg)
	g.spawnTimer.Start(g.session.SpawnPeriod)

	// Fires at 2s, 4s, 6s and 8s; 1ms left on the countdown.
	res := g.Advance(9999*time.Millisecond, core.NewInputFrame())
	if res.Count(core.EventSpawn) != 4 {
		t.Errorf("expected 4 spawns in the first 9999ms, got %d", res.Count(core.EventSpawn))
	}
	if g.spawnTimer.Remaining() != time.Millisecond {
		t.Fatalf("remaining = %v, expected 1ms", g.spawnTimer.Remaining())
	}

	// The pending fire lands at 10s, then the level change reschedules.
	res = g.Advance(time.Millisecond, core.NewInputFrame())
	if res.Count(core.EventSpawn) != 1 {
		t.Errorf("expected the pending spawn to fire, got %d", res.Count(core.EventSpawn))
	}
	if g.spawnTimer.Period() != 1850*time.Millisecond || g.spawnTimer.Remaining() != 1850*time.Millisecond {
		t.Errorf("timer not restarted from the change: period=%v remaining=%v",
			g.spawnTimer.Period(), g.spawnTimer.Remaining())
	}

	res = g.Advance(1849*time.Millisecond, core.NewInputFrame())
	if res.Count(core.EventSpawn) != 0 {
		t.Error("spawned before the new period elapsed")
	}
	res = g.Advance(time.Millisecond, core.NewInputFrame())
	if res.Count(core.EventSpawn) != 1 {
		t.Error("expected a spawn one period after the level change")
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := testConfig()
	config.ApplyCatchPreset(&cfg, config.DifficultyFixed)
	cfg.Session.Lives = 1000
	g := newActiveGame(t, cfg)

	for range 10 {
		g.Advance(10*time.Second, core.NewInputFrame())
	}
	if g.session.Level != 1 {
		t.Errorf("fixed difficulty level = %d, expected 1", g.session.Level)
	}
}

func TestPresetStartLevel(t *testing.T) {
	cfg := testConfig()
	config.ApplyCatchPreset(&cfg, config.DifficultyHard)
	g := newActiveGame(t, cfg)

	if g.session.Level != 7 {
		t.Errorf("hard preset level = %d, expected 7", g.session.Level)
	}
	if g.session.MaxSpeed != 5 || g.session.SpawnPeriod != 1100*time.Millisecond {
		t.Errorf("level 7 bands: speed=%v period=%v", g.session.MaxSpeed, g.session.SpawnPeriod)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := New(WithConfig(testConfig()), WithClock(clock))
	g.Reset(core.DefaultConfig())
	g.Start()
	g.spawnTimer.Stop()
	g.addFruit("apple", 700, 0, 2)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	clock.Advance(frame)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	y := g.fruits[0].Y
	elapsed := g.session.Elapsed

	clock.Advance(5 * time.Second)
	g.Step(core.NewInputFrame())
	if g.fruits[0].Y != y || g.session.Elapsed != elapsed {
		t.Error("paused tick advanced the simulation")
	}

	clock.Advance(frame)
	g.Step(pause)
	if g.State().Paused {
		t.Fatal("expected unpaused")
	}
	if g.session.Elapsed != elapsed+frame {
		t.Errorf("resume should advance by one frame only, elapsed %v -> %v", elapsed, g.session.Elapsed)
	}
}

func TestStepUsesClockDelta(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := New(WithConfig(testConfig()), WithClock(clock))
	g.Reset(core.DefaultConfig())
	g.Start()
	g.spawnTimer.Stop()
	g.addFruit("orange", 700, 0, 4)

	clock.Advance(3 * frame)
	g.Step(core.NewInputFrame())

	if g.fruits[0].Y != 12 {
		t.Errorf("fruit y = %v, expected 12 after three frame units", g.fruits[0].Y)
	}
	if g.session.Elapsed != 3*frame {
		t.Errorf("elapsed = %v, expected %v", g.session.Elapsed, 3*frame)
	}
}

func TestNegativeElapsedIsIgnored(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.addFruit("apple", 700, 0, 4)

	g.Advance(-time.Second, core.NewInputFrame())
	if g.fruits[0].Y != 0 || g.session.Elapsed != 0 {
		t.Errorf("negative elapsed moved the simulation: y=%v elapsed=%v", g.fruits[0].Y, g.session.Elapsed)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (Session, []Fruit) {
		cfg := testConfig()
		cfg.Session.Lives = 20
		g := New(WithConfig(cfg), WithClock(core.NewManualClock(epoch)))
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
		g.Start()

		for i := range 3000 {
			in := core.NewInputFrame()
			switch (i / 40) % 3 {
			case 0:
				in.Set(core.ActionLeft)
			case 1:
				in.Set(core.ActionRight)
			}
			g.Advance(frame, in)
		}
		return g.Session(), append([]Fruit(nil), g.Fruits()...)
	}

	s1, f1 := run()
	s2, f2 := run()

	if s1 != s2 {
		t.Errorf("sessions differ:\n%+v\n%+v", s1, s2)
	}
	if len(f1) != len(f2) {
		t.Fatalf("fruit counts differ: %d vs %d", len(f1), len(f2))
	}
	for i := range f1 {
		a, b := f1[i], f2[i]
		if a.X != b.X || a.Y != b.Y || a.Speed != b.Speed || a.Type.Name != b.Type.Name {
			t.Errorf("fruit %d differs: %+v vs %+v", i, a, b)
		}
	}
	if s1.Caught+s1.Missed == 0 {
		t.Error("expected some fruit to be resolved during the run")
	}
}

func TestTickInvariant(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 50
	g := New(WithConfig(cfg), WithClock(core.NewManualClock(epoch)))
	g.Reset(core.RuntimeConfig{Seed: 7})
	g.Start()

	for i := range 5000 {
		in := core.NewInputFrame()
		in.SetPointer(float64(i%100) / 100)
		g.Advance(frame, in)

		basket := g.basket.Box()
		for _, f := range g.fruits {
			if f.Y > 500 {
				t.Fatalf("tick %d: fruit below playfield at y=%v", i, f.Y)
			}
			if f.Box().Intersects(basket) {
				t.Fatalf("tick %d: fruit overlaps basket", i)
			}
		}
		if g.session.Score < 0 {
			t.Fatalf("tick %d: negative score", i)
		}
	}
}

type recordingSink struct {
	calls []string
}

func (r *recordingSink) SetScore(int) { r.calls = append(r.calls, "score") }
func (r *recordingSink) SetLives(int) { r.calls = append(r.calls, "lives") }
func (r *recordingSink) ShowGameOver(int) { r.calls = append(r.calls, "over") }

func TestDisplaySinkNotifications(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Lives = 1
	sink := &recordingSink{}
	g := New(WithConfig(cfg), WithSink(sink), WithClock(core.NewManualClock(epoch)))
	g.Reset(core.DefaultConfig())
	g.Start()
	g.spawnTimer.Stop()

	g.basket.X = 0
	g.addFruit("apple", 0, 356, 5)
	g.addFruit("pear", 700, 499, 5)
	g.Advance(frame, core.NewInputFrame())

	expected := []string{"score", "lives", "score", "lives", "over"}
	if !reflect.DeepEqual(sink.calls, expected) {
		t.Errorf("sink calls = %v, expected %v", sink.calls, expected)
	}
	if hud := g.HUD(); hud.Score != 10 || hud.Lives != 0 || hud.FinalScore != 10 {
		t.Errorf("unexpected HUD %+v", hud)
	}
}

func TestRender(t *testing.T) {
	g := New(WithConfig(testConfig()), WithClock(core.NewManualClock(epoch)))
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Enter/Space to start") {
		t.Error("idle screen should show the start prompt")
	}

	g.Start()
	g.spawnTimer.Stop()
	g.addFruit("apple", 0, 200, 1)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if strings.Count(hud, "♥") != 3 {
		t.Errorf("expected 3 hearts in %q", hud)
	}
	if strings.Contains(screen.String(), "Press Enter/Space") {
		t.Error("start prompt should be hidden while active")
	}

	// Playfield row 1 maps to y 0; the apple at y=200 lands around row 10.
	found := false
	for y := 1; y < 24; y++ {
		if screen.GetCell(2, y).Color == core.ColorRed {
			found = true
		}
	}
	if !found {
		t.Error("expected the apple to be drawn in red")
	}
}

type shapeRecorder struct {
	rects, circles int
	images         map[string]bool
	drawn          []string
}

func (s *shapeRecorder) Clear() {}
func (s *shapeRecorder) DrawRect(pos, size core.Vec, c core.Color) { s.rects++ }
func (s *shapeRecorder) DrawCircle(center core.Vec, r float64, c core.Color) { s.circles++ }

func (s *shapeRecorder) DrawImage(name string, pos, size core.Vec) bool {
	if !s.images[name] {
		return false
	}
	s.drawn = append(s.drawn, name)
	return true
}

func TestDrawFallbackShapes(t *testing.T) {
	g := newActiveGame(t, testConfig())
	g.addFruit("apple", 0, 0, 1)
	g.addFruit("pear", 100, 0, 1)

	rec := &shapeRecorder{images: map[string]bool{"pear": true}}
	g.Draw(rec)

	if rec.rects != 2 {
		t.Errorf("basket fallback should draw body and handle, got %d rects", rec.rects)
	}
	if rec.circles != 1 {
		t.Errorf("apple without image should be a circle, got %d circles", rec.circles)
	}
	if !reflect.DeepEqual(rec.drawn, []string{"pear"}) {
		t.Errorf("images drawn = %v", rec.drawn)
	}

	rec = &shapeRecorder{images: map[string]bool{ImageBasket: true, "apple": true, "pear": true}}
	g.Draw(rec)
	if rec.rects != 0 || rec.circles != 0 {
		t.Errorf("no fallback expected when images load: rects=%d circles=%d", rec.rects, rec.circles)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("catch should be registered")
	}
	g, err := registry.Create(ID, registry.Options{Preset: config.DifficultyNormal})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Title() != "Fruit Catch" {
		t.Errorf("title = %q", g.Title())
	}
}
