package catch

import (
	"time"

	"github.com/vovakirdan/fruit-catch/internal/core"
)

// tick advances an active session by elapsed.
// Order: spawn fires inside the interval, difficulty update, basket move,
// fruit advance, collision and scoring.
func (g *Game) tick(elapsed time.Duration, in core.InputFrame) {
	for range g.spawnTimer.Advance(elapsed) {
		g.spawnFruit()
	}

	g.session.Elapsed += elapsed
	if g.difficulty.Update(g.session.Elapsed) {
		g.levelUp()
	}

	scale := g.frameScale(elapsed)
	g.moveBasket(scale, in)
	g.advanceFruits(scale)
	g.resolve()
}

// frameScale converts elapsed time into frame units.
func (g *Game) frameScale(elapsed time.Duration) float64 {
	unit := g.cfg.Session.FrameUnit
	if unit <= 0 {
		return 0
	}
	return float64(elapsed) / float64(unit)
}

func (g *Game) spawnFruit() {
	if g.session.Phase != PhaseActive {
		return
	}
	f := g.spawner.Spawn(g.session.MaxSpeed)
	g.fruits = append(g.fruits, f)
	g.emit(core.Event{Kind: core.EventSpawn, Name: f.Type.Name})
}

// levelUp copies the new bands into the session and restarts the spawn
// timer from the current instant.
func (g *Game) levelUp() {
	g.session.Level = g.difficulty.Level()
	g.session.MaxSpeed = g.difficulty.MaxSpeed()
	g.session.SpawnPeriod = g.difficulty.SpawnPeriod()
	g.spawnTimer.Start(g.session.SpawnPeriod)

	g.emit(core.Event{Kind: core.EventLevelUp, Level: g.session.Level})
	g.logger.Info("difficulty increased",
		"level", g.session.Level,
		"speed", g.session.MaxSpeed,
		"interval", g.session.SpawnPeriod,
	)
}

// moveBasket moves the basket from held keys or centres it on the pointer,
// then keeps it inside the playfield. Up and down alias left and right.
func (g *Game) moveBasket(scale float64, in core.InputFrame) {
	b := &g.basket
	if p, ok := in.Pointer(); ok {
		b.X = p*g.cfg.Playfield.Width - b.W/2
	} else {
		dir := 0.0
		if in.HasAny(core.ActionLeft, core.ActionUp) {
			dir--
		}
		if in.HasAny(core.ActionRight, core.ActionDown) {
			dir++
		}
		b.X += dir * b.Speed * scale
	}
	b.X = core.ClampF(b.X, 0, g.cfg.Playfield.Width-b.W)
}

func (g *Game) advanceFruits(scale float64) {
	for i := range g.fruits {
		g.fruits[i].Y += g.fruits[i].Speed * scale
	}
}

// resolve adjudicates catches and misses. A catch wins over a miss for
// the same fruit. Once the session is over, fruit that would be caught or
// missed is dropped without scoring.
func (g *Game) resolve() {
	basket := g.basket.Box()
	height := g.cfg.Playfield.Height

	kept := g.fruits[:0]
	for _, f := range g.fruits {
		caught := f.Box().Intersects(basket)
		missed := !caught && f.Y > height
		switch {
		case g.session.Phase != PhaseActive:
			if !caught && !missed {
				kept = append(kept, f)
			}
		case caught:
			g.catchFruit(f)
		case missed:
			g.missFruit(f)
		default:
			kept = append(kept, f)
		}
	}
	clear(g.fruits[len(kept):])
	g.fruits = kept
}

func (g *Game) catchFruit(f Fruit) {
	g.session.Score += f.Type.Points
	g.session.Caught++
	g.sink.SetScore(g.session.Score)
	g.emit(core.Event{Kind: core.EventCatch, Name: f.Type.Name, Points: f.Type.Points})
}

func (g *Game) missFruit(f Fruit) {
	g.session.Lives--
	g.session.Missed++
	g.sink.SetLives(g.session.Lives)
	g.emit(core.Event{Kind: core.EventMiss, Name: f.Type.Name})
	if g.session.Lives <= 0 {
		g.gameOver()
	}
}

// gameOver ends the session. It runs once per session.
func (g *Game) gameOver() {
	g.session.Phase = PhaseOver
	g.paused = false
	g.spawnTimer.Stop()
	g.sink.ShowGameOver(g.session.Score)
	g.emit(core.Event{Kind: core.EventGameOver, Points: g.session.Score})
	g.logger.Info("game over",
		"score", g.session.Score,
		"level", g.session.Level,
		"caught", g.session.Caught,
		"missed", g.session.Missed,
		"played", g.session.Elapsed.Round(time.Second),
	)
}
