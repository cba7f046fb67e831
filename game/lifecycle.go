package game

import (
	"log"

	"github.com/4cecoder/arena/models"
)

// LifecycleManager owns the player state machine and the score/kill
// bookkeeping attached to its transitions. States are Alive (with an
// Invulnerable sub-flag) and Dead; Dead is terminal until a respawn
// request arrives.
type LifecycleManager struct {
	world *World
	food  *FoodEconomy
	sink  EventSink

	// scheduleExpiry arranges for ExpireInvulnerability(id) to run on
	// the engine goroutine after the invulnerability window. Installed
	// by the engine; tests may install their own.
	scheduleExpiry func(playerID string)
}

func NewLifecycleManager(w *World, food *FoodEconomy, sink EventSink) *LifecycleManager {
	return &LifecycleManager{
		world:          w,
		food:           food,
		sink:           sink,
		scheduleExpiry: func(string) {},
	}
}

// Join creates a living player for a new session: fresh 5-segment body
// at a random spawn, zero score and kills, not invulnerable. The joiner
// receives a welcome message and the full current food list.
func (l *LifecycleManager) Join(sessionID, name string, skin int) *models.Player {
	if name == "" {
		name = "Player"
	}
	pos := l.world.RandomPosition()
	p := &models.Player{
		ID:        sessionID,
		Name:      name,
		Skin:      skin,
		Color:     skinColors[l.world.rng.Intn(len(skinColors))],
		Segments:  freshBody(pos),
		Heading:   l.world.rng.Float64() * 360,
		BaseSpeed: DefaultBaseSpeed,
		Alive:     true,
	}
	l.world.AddPlayer(p)
	log.Printf("player %s (%s) joined at (%.0f, %.0f)", p.Name, p.ID, pos.X, pos.Y)

	l.sink.SendTo(p.ID, models.WelcomeMsg{
		Type:     models.MsgWelcome,
		ID:       p.ID,
		Position: pos,
		Color:    p.Color,
	})
	l.sink.SendTo(p.ID, models.InitialFoodsMsg{
		Type:  models.MsgInitialFoods,
		Foods: l.world.FoodList(),
	})
	return p
}

// Respawn resets a dead player in place: fresh body at a new random
// position, zeroed score and kills, and a 3000ms invulnerability window
// whose expiry is scheduled as a deferred transition. Respawn requests
// for missing or still-living players are dropped.
func (l *LifecycleManager) Respawn(sessionID string) {
	p := l.world.Player(sessionID)
	if p == nil || p.Alive {
		return
	}
	pos := l.world.RandomPosition()
	p.Segments = freshBody(pos)
	p.Heading = l.world.rng.Float64() * 360
	p.Score = 0
	p.Kills = 0
	p.Boosting = false
	p.BoostAccumMS = 0
	p.Alive = true
	p.Invulnerable = true
	l.scheduleExpiry(p.ID)
	log.Printf("player %s (%s) respawned at (%.0f, %.0f)", p.Name, p.ID, pos.X, pos.Y)
}

// ExpireInvulnerability clears the invulnerable flag. The player may
// have departed or died since the timer was scheduled; both cases are
// no-ops.
func (l *LifecycleManager) ExpireInvulnerability(sessionID string) {
	p := l.world.Player(sessionID)
	if p == nil || !p.Alive {
		return
	}
	p.Invulnerable = false
}

// HandleDeath finalizes any death transition: the victim goes Dead,
// an identified killer receives half the victim's score and one kill,
// the body converts to food, and the events are broadcast. killer may
// be nil (boundary deaths, unverified reports).
func (l *LifecycleManager) HandleDeath(victim, killer *models.Player) {
	if victim == nil || !victim.Alive {
		return
	}
	victim.Alive = false
	victim.Boosting = false
	victim.BoostAccumMS = 0

	killerID := ""
	if killer != nil {
		killer.Score += victim.Score / 2
		killer.Kills++
		killerID = killer.ID
		l.sink.Broadcast(models.PlayerKilledMsg{
			Type:     models.MsgPlayerKilled,
			VictimID: victim.ID,
			KillerID: killer.ID,
		})
	}
	l.sink.Broadcast(models.PlayerDiedMsg{
		Type:     models.MsgDeathNotice,
		VictimID: victim.ID,
		KillerID: killerID,
	})
	l.food.DropFromDeath(victim)
	log.Printf("player %s (%s) died (killer=%q)", victim.Name, victim.ID, killerID)
}

// ReportDeath applies a session-reported death, returning whether a
// death transition happened. The session layer is trusted about the
// death itself, but the claimed killer is only credited if it names an
// existing, living player other than the victim; anything else yields
// an unattributed death.
func (l *LifecycleManager) ReportDeath(sessionID, killerID string) bool {
	victim := l.world.Player(sessionID)
	if victim == nil || !victim.Alive {
		return false
	}
	var killer *models.Player
	if killerID != "" && killerID != sessionID {
		if k := l.world.Player(killerID); k != nil && k.Alive {
			killer = k
		}
	}
	l.HandleDeath(victim, killer)
	return true
}

// Leave removes a departing session's player. The engine cancels any
// pending invulnerability timer before calling this.
func (l *LifecycleManager) Leave(sessionID string) {
	if l.world.Player(sessionID) == nil {
		return
	}
	l.world.RemovePlayer(sessionID)
	log.Printf("player %s left", sessionID)
}

// freshBody builds the spawn body: SpawnSegments segments stacked on
// the spawn point. They fan out over the first ticks of movement.
func freshBody(pos models.Point) []models.Point {
	segs := make([]models.Point, SpawnSegments)
	for i := range segs {
		segs[i] = pos
	}
	return segs
}
