package game

import "time"

// EventSink receives the discrete events the simulation emits. The
// websocket session layer implements it; tests substitute a recorder.
// Sink methods are called from the engine goroutine only.
type EventSink interface {
	// Broadcast delivers v to every connected session.
	Broadcast(v any)
	// SendTo delivers v to one session. Unknown ids are dropped.
	SendTo(sessionID string, v any)
}

// NopSink discards everything. Useful when running headless.
type NopSink struct{}

func (NopSink) Broadcast(any)      {}
func (NopSink) SendTo(string, any) {}

// Recorder receives simulation metrics. A nil Recorder is allowed
// everywhere one is accepted.
type Recorder interface {
	ObserveTick(d time.Duration)
	SetCounts(players, food int)
	CountDeath(cause string)
}

// Death causes reported to the Recorder.
const (
	DeathCauseCollision = "collision"
	DeathCauseBoundary  = "boundary"
	DeathCauseReported  = "reported"
)
