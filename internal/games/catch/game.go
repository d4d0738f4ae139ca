// Package catch implements a fruit catching game.
// A basket moves along the bottom of the playfield and catches falling
// fruit for points. Every missed fruit costs a life and the fruit falls
// faster and more often as the session goes on.
package catch

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catch/internal/config"
	"github.com/vovakirdan/fruit-catch/internal/core"
	"github.com/vovakirdan/fruit-catch/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "catch"

// Game implements the fruit catch game logic.
// All mutable state is owned by the Game and changed only through Start,
// Restart, Step and Advance.
type Game struct {
	cfg        config.CatchConfig
	configured bool
	configPath string
	preset     config.DifficultyPreset

	clock    core.Clock
	lastTick time.Time
	hasTick  bool
	logger   *log.Logger

	hud   HUD
	extra DisplaySink
	sink  DisplaySink

	runtime    core.RuntimeConfig
	catalog    []FruitType
	difficulty *config.DifficultyController
	spawner    *Spawner
	spawnTimer SpawnTimer

	basket  Basket
	fruits  []Fruit
	session Session
	paused  bool
	events  []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used by Step.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPreset applies a difficulty preset on top of the loaded config.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// WithConfigPath sets a custom YAML config path.
func WithConfigPath(path string) Option {
	return func(g *Game) { g.configPath = path }
}

// WithConfig uses cfg as is instead of loading configuration files.
func WithConfig(cfg config.CatchConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.configured = true
	}
}

// WithSink adds a display sink notified next to the built-in HUD.
func WithSink(s DisplaySink) Option {
	return func(g *Game) { g.extra = s }
}

// New creates a new game instance. Configuration is resolved on the
// first Reset.
func New(opts ...Option) *Game {
	g := &Game{
		clock:  core.SystemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sink = &g.hud
	if g.extra != nil {
		g.sink = MultiSink{&g.hud, g.extra}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Catch"
}

// Reset initializes the game and leaves it idle, waiting for Start.
// Only the first call resolves configuration; later calls keep it.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.configured {
		g.cfg = g.loadConfig()
		g.configured = true
	}

	g.catalog = NewCatalog(g.cfg.Catalog)
	g.difficulty = config.NewDifficultyController(g.cfg.Difficulty)
	g.spawner = NewSpawner(rc.Seed, g.catalog, g.cfg.Playfield.Width, g.cfg.Fruit.Size)
	g.spawnTimer.Stop()

	g.resetSession()
	g.session.Phase = PhaseIdle
	g.hasTick = false
}

func (g *Game) loadConfig() config.CatchConfig {
	cfg, err := config.LoadCatch(g.configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultCatchConfig()
	}
	config.ApplyCatchPreset(&cfg, g.preset)
	return cfg
}

// resetSession puts every per-session value back to its initial state.
func (g *Game) resetSession() {
	g.difficulty.Reset()
	g.session = Session{
		Lives:       g.cfg.Session.Lives,
		Level:       g.difficulty.Level(),
		MaxSpeed:    g.difficulty.MaxSpeed(),
		SpawnPeriod: g.difficulty.SpawnPeriod(),
	}
	g.paused = false
	g.fruits = nil

	b := g.cfg.Basket
	g.basket = Basket{
		X:     g.cfg.Playfield.Width/2 - b.Width/2,
		Y:     g.cfg.Playfield.Height - b.Height - b.Margin,
		W:     b.Width,
		H:     b.Height,
		Speed: b.Speed,
	}

	g.hud.reset(g.session.Lives)
}

// Start begins a new session from any phase.
func (g *Game) Start() {
	if g.difficulty == nil {
		g.Reset(core.DefaultConfig())
	}
	g.resetSession()
	g.session.Phase = PhaseActive
	g.spawnTimer.Start(g.session.SpawnPeriod)

	g.sink.SetScore(0)
	g.sink.SetLives(g.session.Lives)

	g.lastTick = g.clock.Now()
	g.hasTick = true

	g.emit(core.Event{Kind: core.EventStart, Level: g.session.Level})
	g.logger.Info("session started",
		"level", g.session.Level,
		"lives", g.session.Lives,
		"spawn", g.session.SpawnPeriod,
	)
}

// Restart discards the current session and starts a fresh one.
func (g *Game) Restart() {
	g.Start()
}

// Step advances the game by the wall time since the previous Step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Now()
	var elapsed time.Duration
	if g.hasTick {
		elapsed = now.Sub(g.lastTick)
	}
	g.lastTick = now
	g.hasTick = true
	return g.Advance(elapsed, in)
}

// Advance runs one tick covering elapsed simulation time.
func (g *Game) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.events = nil
	if g.difficulty == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.handleCommands(in) {
		return g.result()
	}
	if g.session.Phase != PhaseActive || g.paused {
		return g.result()
	}

	g.tick(max(elapsed, 0), in)
	return g.result()
}

// handleCommands applies session commands. Returns true when a session
// was started, which consumes the tick.
func (g *Game) handleCommands(in core.InputFrame) bool {
	switch g.session.Phase {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.Start()
			return true
		}
	case PhaseOver:
		if in.HasAny(core.ActionConfirm, core.ActionRestart) {
			g.Restart()
			return true
		}
	case PhaseActive:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
			g.logger.Debug("pause toggled", "paused", g.paused)
		}
	}
	return false
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
	if e.Kind != core.EventSpawn {
		g.logger.Debug("event", "kind", e.Kind, "name", e.Name, "points", e.Points)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		Level:    g.session.Level,
		Started:  g.session.Phase != PhaseIdle,
		GameOver: g.session.Phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// HUD returns the display state fed by the sinks.
func (g *Game) HUD() HUD {
	return g.hud
}

// Basket returns the basket.
func (g *Game) Basket() Basket {
	return g.basket
}

// Fruits returns the active fruit. The slice must not be modified.
func (g *Game) Fruits() []Fruit {
	return g.fruits
}

// Field returns the playfield size.
func (g *Game) Field() core.Vec {
	return core.V(g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// Config returns the resolved configuration.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(opts registry.Options) registry.Game {
		return New(
			WithConfigPath(opts.ConfigPath),
			WithPreset(opts.Preset),
			WithLogger(opts.Logger),
		)
	})
}
