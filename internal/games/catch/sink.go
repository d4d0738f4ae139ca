package catch

import "github.com/charmbracelet/log"

// DisplaySink receives score, lives and game over notifications.
type DisplaySink interface {
	SetScore(score int)
	SetLives(lives int)
	ShowGameOver(finalScore int)
}

// HUD is the in-game display state rendered by the front ends.
type HUD struct {
	Score      int
	Lives      int
	GameOver   bool
	FinalScore int
}

func (h *HUD) SetScore(score int) { h.Score = score }
func (h *HUD) SetLives(lives int) { h.Lives = lives }

func (h *HUD) ShowGameOver(finalScore int) {
	h.GameOver = true
	h.FinalScore = finalScore
}

func (h *HUD) reset(lives int) {
	*h = HUD{Lives: lives}
}

// MultiSink fans notifications out to several sinks in order.
type MultiSink []DisplaySink

func (m MultiSink) SetScore(score int) {
	for _, s := range m {
		s.SetScore(score)
	}
}

func (m MultiSink) SetLives(lives int) {
	for _, s := range m {
		s.SetLives(lives)
	}
}

func (m MultiSink) ShowGameOver(finalScore int) {
	for _, s := range m {
		s.ShowGameOver(finalScore)
	}
}

// LogSink writes notifications to a logger.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) SetScore(score int) {
	s.Logger.Debug("score changed", "score", score)
}

func (s LogSink) SetLives(lives int) {
	s.Logger.Debug("lives changed", "lives", lives)
}

func (s LogSink) ShowGameOver(finalScore int) {
	s.Logger.Info("game over", "score", finalScore)
}
