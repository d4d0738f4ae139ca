package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-catch/internal/core"
	"github.com/vovakirdan/fruit-catch/internal/registry"
)

// minHelpHeight is the smallest terminal that still gets a help line.
const minHelpHeight = 12

// ModelOptions tune how a Model behaves inside a larger program.
type ModelOptions struct {
	// AllowBack lets Esc/B leave the game when it is idle, paused or over.
	AllowBack bool
	// Embedded models never quit the program on back; the parent checks
	// BackToMenu instead.
	Embedded bool
	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       ModelOptions
	keyMapper  *KeyMapper
	hold       *HoldTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	pointerX   float64
	pointerOn  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldWindow),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight(cfg.ScreenH))
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.opts.AllowBack && m.canLeave() {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
	case Holdable(action):
		m.hold.Press(action, time.Now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// canLeave reports whether leaving would not abandon a running session.
func (m Model) canLeave() bool {
	s := m.gameState
	return !s.Started || s.GameOver || s.Paused
}

// handleMouse turns left button presses and drags into a pointer
// position. A click on the start or game over screen also confirms.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if w := m.screen.Width(); w > 0 {
			m.pointerX = (float64(msg.X) + 0.5) / float64(w)
			m.pointerOn = true
		}
		if msg.Action == tea.MouseActionPress && (!m.gameState.Started || m.gameState.GameOver) {
			m.inputFrame.Set(core.ActionConfirm)
		}
	case tea.MouseActionRelease:
		m.pointerOn = false
	}
	return m, nil
}

// handleResize adapts the screen. The game keeps running; it works in
// playfield units and only the mapping onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame, now)
	if m.pointerOn {
		m.inputFrame.SetPointer(m.pointerX)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Count(core.EventGameOver) > 0 {
		m.hold.Release()
		m.pointerOn = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// playHeight is the number of rows left for the game below the help line.
func (m Model) playHeight(h int) int {
	if h >= minHelpHeight {
		return h - 1
	}
	return h
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".fruitcatch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.screen.Height() < m.config.ScreenH {
		view += "\n" + m.help.View(m.keyMapper.Keys())
	}
	return view
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	_, err := Play(game, cfg, ModelOptions{})
	return err
}

// Play runs the game until the user quits or goes back.
// Returns true when the user asked for the menu.
func Play(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) (bool, error) {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
