package game

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/4cecoder/arena/config"
)

// Engine wires the world and its four components together and owns the
// single execution context everything runs on. External callers talk to
// it through Post; everything else happens on the Run goroutine.
type Engine struct {
	world    *World
	movement *MovementEngine
	collide  *CollisionDetector
	food     *FoodEconomy
	life     *LifecycleManager
	sink     EventSink
	rec      Recorder

	tick    atomic.Uint64
	intents chan Intent
	stop    chan struct{}

	timersMu sync.Mutex
	timers   map[string]*time.Timer

	// expiryWindow is InvulnerabilityWindow in production; tests shorten
	// it to exercise the timer path.
	expiryWindow time.Duration
}

// NewEngine builds a ready-to-run engine. A nil sink discards events;
// a nil rec disables metrics. The food pool is filled to target here,
// before any session can be connected.
func NewEngine(cfg config.World, sink EventSink, rec Recorder) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	w := NewWorld(cfg)
	food := NewFoodEconomy(w, sink)
	life := NewLifecycleManager(w, food, sink)
	e := &Engine{
		world:        w,
		movement:     NewMovementEngine(w),
		collide:      NewCollisionDetector(w),
		food:         food,
		life:         life,
		sink:         sink,
		rec:          rec,
		intents:      make(chan Intent, 256),
		stop:         make(chan struct{}),
		timers:       make(map[string]*time.Timer),
		expiryWindow: InvulnerabilityWindow,
	}
	life.scheduleExpiry = e.scheduleExpiry
	food.Fill()
	return e
}

// Tick returns the number of completed simulation ticks.
func (e *Engine) Tick() uint64 { return e.tick.Load() }

// Apply executes one intent against the world. It must only be called
// from the Run goroutine (or from tests driving the engine by hand);
// concurrent callers use Post.
func (e *Engine) Apply(in Intent) {
	switch v := in.(type) {
	case JoinIntent:
		e.life.Join(v.SessionID, v.Name, v.Skin)
	case LeaveIntent:
		e.cancelExpiry(v.SessionID)
		e.life.Leave(v.SessionID)
	case MoveIntent:
		if p := e.world.Player(v.SessionID); p != nil && p.Alive {
			p.Heading = v.Heading
		}
	case BoostIntent:
		p := e.world.Player(v.SessionID)
		if p == nil || !p.Alive {
			return
		}
		if v.Active && p.Score < 1 {
			return
		}
		p.Boosting = v.Active
	case RespawnIntent:
		e.life.Respawn(v.SessionID)
	case EatFoodIntent:
		e.food.Consume(v.SessionID, v.FoodID)
	case DeathReportIntent:
		if e.life.ReportDeath(v.SessionID, v.KillerID) && e.rec != nil {
			e.rec.CountDeath(DeathCauseReported)
		}
	case expireInvulnIntent:
		e.life.ExpireInvulnerability(v.SessionID)
	}
}

// StepOnce advances the simulation by exactly one tick, synchronously.
// Used by tests and replays; the server loop calls the same step.
func (e *Engine) StepOnce() uint64 {
	e.step()
	return e.tick.Load()
}

// step runs one full tick: per living player, movement then collision,
// death finalization inline; afterwards one food top-up, metrics, and
// the replication snapshot.
func (e *Engine) step() {
	start := time.Now()
	tick := e.tick.Add(1)

	for _, p := range e.world.PlayersByID() {
		if !p.Alive {
			continue
		}
		if len(p.Segments) == 0 {
			// Structural invariant violation; a logic defect upstream.
			log.Printf("invariant violation: living player %s has no segments, skipping", p.ID)
			continue
		}
		e.movement.Advance(p)
		if killer, died := e.collide.Check(p); died {
			e.life.HandleDeath(p, killer)
			if e.rec != nil {
				cause := DeathCauseCollision
				if killer == nil {
					cause = DeathCauseBoundary
				}
				e.rec.CountDeath(cause)
			}
		}
	}

	e.food.TopUp()

	if e.rec != nil {
		e.rec.SetCounts(e.world.PlayerCount(), e.world.FoodCount())
		e.rec.ObserveTick(time.Since(start))
	}
	if every := e.world.cfg.SnapshotEvery; every > 0 && tick%uint64(every) == 0 {
		e.sink.Broadcast(e.stateMsg(tick))
	}
}

// scheduleExpiry arms (or re-arms) the invulnerability timer for a
// player. The callback hops back onto the engine goroutine via Post, so
// the eventual mutation is serialized with everything else; by the time
// it runs the player may be gone, which ExpireInvulnerability tolerates.
func (e *Engine) scheduleExpiry(sessionID string) {
	e.timersMu.Lock()
	defer e.timersMu.Unlock()
	if t, ok := e.timers[sessionID]; ok {
		t.Stop()
	}
	e.timers[sessionID] = time.AfterFunc(e.expiryWindow, func() {
		e.timersMu.Lock()
		delete(e.timers, sessionID)
		e.timersMu.Unlock()
		e.Post(expireInvulnIntent{SessionID: sessionID})
	})
}

// cancelExpiry neutralizes a departing player's pending timer.
func (e *Engine) cancelExpiry(sessionID string) {
	e.timersMu.Lock()
	defer e.timersMu.Unlock()
	if t, ok := e.timers[sessionID]; ok {
		t.Stop()
		delete(e.timers, sessionID)
	}
}
