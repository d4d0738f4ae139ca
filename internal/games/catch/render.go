package catch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/fruit-catch/internal/core"
)

// Fallback basket geometry.
const (
	handleInset  = 10
	handleHeight = 10
)

// Draw paints the playfield onto s in playfield coordinates.
// Images are used when s implements ImageDrawer and has them; otherwise
// the basket is a brown box with a handle and fruit are coloured circles.
func (g *Game) Draw(s Surface) {
	s.Clear()
	img, _ := s.(ImageDrawer)

	b := g.basket
	if img == nil || !img.DrawImage(ImageBasket, core.V(b.X, b.Y), core.V(b.W, b.H)) {
		s.DrawRect(core.V(b.X, b.Y), core.V(b.W, b.H), core.ColorBrown)
		s.DrawRect(core.V(b.X+handleInset, b.Y-handleHeight), core.V(b.W-2*handleInset, handleHeight), core.ColorBrown)
	}

	for _, f := range g.fruits {
		box := f.Box()
		if img != nil && img.DrawImage(f.Type.Name, box.Pos(), box.Size()) {
			continue
		}
		s.DrawCircle(box.Center(), f.W/2, f.Type.Color)
	}
}

// Render draws the HUD row and the playfield into a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 {
		return
	}

	g.renderHUD(dst)

	surface := core.NewCellSurface(dst, g.Field(), core.NewRect(0, 1, w, h-1))
	surface.SetSprites(Sprites)
	g.Draw(surface)

	switch {
	case g.session.Phase == PhaseIdle:
		dst.DrawMessageBox(
			"FRUIT CATCH",
			"",
			"Catch the fruit, don't let it drop",
			"Press Enter/Space to start",
		)
	case g.hud.GameOver:
		dst.DrawMessageBox(
			"GAME OVER",
			fmt.Sprintf("Final score: %d", g.hud.FinalScore),
			"Press R to restart",
		)
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.hud.Score))

	level := fmt.Sprintf("Level: %d", g.session.Level)
	dst.DrawTextCentered(0, level)

	hearts := strings.Repeat("♥", max(g.hud.Lives, 0))
	x := dst.Width() - len([]rune(hearts)) - 1
	dst.DrawTextColored(x, 0, hearts, core.ColorRed)
}
