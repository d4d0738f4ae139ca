package catch

import "time"

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle   Phase = iota // Waiting for the start command
	PhaseActive              // Playing
	PhaseOver                // Lives ran out; waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session holds the per-session counters. It is reset on every start.
type Session struct {
	Phase       Phase
	Score       int
	Lives       int
	Elapsed     time.Duration // Simulation time played, pauses excluded
	Level       int
	MaxSpeed    float64
	SpawnPeriod time.Duration
	Caught      int
	Missed      int
}

// Active reports whether the session is being played.
func (s Session) Active() bool {
	return s.Phase == PhaseActive
}
