// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruit-catch/internal/core"
	"github.com/vovakirdan/fruit-catch/internal/games/catch"
)

// Heart icon size and spacing in the HUD.
const (
	heartSize = 25.0
	heartGap  = 5.0
)

var overlayColor = color.RGBA{0, 0, 0, 160}

// Options configures the window.
type Options struct {
	Title     string
	Scale     float64 // Window size relative to the playfield
	AssetsDir string  // Directory with <name>.png images, empty for shapes
	TickRate  int
	Seed      int64
	Logger    *log.Logger
}

// App adapts a catch game to ebiten.Game.
type App struct {
	game    *catch.Game
	field   core.Vec
	surface *imageSurface
	frame   core.InputFrame
}

// heldKeys maps direction actions to the keys that hold them.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// pressKeys maps one-shot actions to their keys.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// NewApp resets the game and loads its images.
func NewApp(game *catch.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Reset resolves the config, so the playfield size is known after it.
	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: seed})

	names := []string{catch.ImageBasket, catch.ImageHeart}
	for _, ft := range game.Config().Catalog {
		names = append(names, ft.Name)
	}

	return &App{
		game:    game,
		field:   game.Field(),
		surface: &imageSurface{images: loadImages(opts.AssetsDir, names, logger)},
		frame:   core.NewInputFrame(),
	}
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	a.frame.Clear()

	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				a.frame.Set(action)
			}
		}
	}
	for action, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				a.frame.Set(action)
			}
		}
	}
	if a.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	a.readPointer()
	a.game.Step(a.frame)
	return nil
}

// readPointer centres the basket on a dragging mouse or a touch. A click
// or tap on the start and game over screens confirms.
func (a *App) readPointer() {
	x, pressed, just := 0, false, false

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ = ebiten.CursorPosition()
		pressed = true
		just = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, _ = ebiten.TouchPosition(ids[0])
		pressed = true
		just = just || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}
	if !pressed {
		return
	}

	state := a.game.State()
	if just && (!state.Started || state.GameOver) {
		a.frame.Set(core.ActionConfirm)
	}
	a.frame.SetPointer(pointerFraction(x, a.field.X))
}

func pointerFraction(x int, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return float64(x) / width
}

// Draw renders the playfield, the HUD and any overlay.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.dst = screen
	a.game.Draw(a.surface)
	a.drawHUD(screen)

	state := a.game.State()
	hud := a.game.HUD()
	switch {
	case !state.Started:
		a.drawOverlay(screen, "FRUIT CATCH", "", "Catch the fruit, don't let it drop", "Press Enter/Space or click to start")
	case hud.GameOver:
		a.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Final score: %d", hud.FinalScore), "Press R or click to restart")
	case state.Paused:
		a.drawOverlay(screen, "PAUSED", "Press P to resume")
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	hud := a.game.HUD()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", hud.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", a.game.State().Level), 10, 26)

	for i := range max(hud.Lives, 0) {
		x := a.field.X - float64((i+1)*(heartSize+heartGap))
		pos, size := core.V(x, 10), core.V(heartSize, heartSize)
		if !a.surface.DrawImage(catch.ImageHeart, pos, size) {
			a.surface.DrawCircle(core.V(x+heartSize/2, 10+heartSize/2), heartSize/2, core.ColorRed)
		}
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, lines ...string) {
	const lineHeight = 16
	w, h := float32(a.field.X), float32(a.field.Y)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	top := int(a.field.Y)/2 - len(lines)*lineHeight/2
	for i, l := range lines {
		// The debug font is 6 pixels wide.
		x := (int(a.field.X) - len(l)*6) / 2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*lineHeight)
	}
}

// Layout keeps the logical screen equal to the playfield; ebiten scales
// it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.field.X), int(a.field.Y)
}

// Run opens the window and blocks until it is closed.
func Run(game *catch.Game, opts Options) error {
	app := NewApp(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = game.Title()
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	ebiten.SetWindowSize(int(app.field.X*scale), int(app.field.Y*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
