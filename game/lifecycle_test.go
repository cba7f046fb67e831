package game

import (
	"testing"

	"github.com/4cecoder/arena/models"
)

func TestJoinCreatesFreshPlayer(t *testing.T) {
	e, sink := newTestEngine(testConfig())

	e.Apply(JoinIntent{SessionID: "s1", Name: "alice", Skin: 3})

	p := e.world.Player("s1")
	if p == nil {
		t.Fatalf("join must create the player")
	}
	if !p.Alive || p.Invulnerable {
		t.Fatalf("joined player must be alive and not invulnerable")
	}
	if len(p.Segments) != SpawnSegments {
		t.Fatalf("expected %d spawn segments, got %d", SpawnSegments, len(p.Segments))
	}
	if p.Score != 0 || p.Kills != 0 {
		t.Fatalf("join must start with zero score and kills")
	}
	if p.Name != "alice" || p.Skin != 3 || p.Color == "" {
		t.Fatalf("join must carry name/skin and assign a color: %+v", p)
	}
	h := p.Head()
	if h.X < 0 || h.X >= 1000 || h.Y < 0 || h.Y >= 1000 {
		t.Fatalf("spawn must be inside the world, got %v", h)
	}

	msgs := sink.direct["s1"]
	if len(msgs) != 2 {
		t.Fatalf("joiner must receive welcome and initialFoods, got %d messages", len(msgs))
	}
	welcome, ok := msgs[0].(models.WelcomeMsg)
	if !ok || welcome.ID != "s1" || welcome.Color != p.Color {
		t.Fatalf("unexpected welcome: %+v", msgs[0])
	}
	foods, ok := msgs[1].(models.InitialFoodsMsg)
	if !ok || len(foods.Foods) != 10 {
		t.Fatalf("initialFoods must list the full pool, got %+v", msgs[1])
	}
}

func TestRespawnOnlyValidFromDead(t *testing.T) {
	e, _ := newTestEngine(testConfig())
	e.Apply(JoinIntent{SessionID: "s1"})
	p := e.world.Player("s1")
	p.Score = 7
	before := p.Head()

	e.Apply(RespawnIntent{SessionID: "s1"})

	if p.Score != 7 || p.Head() != before {
		t.Fatalf("respawn of a living player must be dropped")
	}
	if p.Invulnerable {
		t.Fatalf("dropped respawn must not grant invulnerability")
	}
}

func TestRespawnResetsPlayer(t *testing.T) {
	e, _ := newTestEngine(testConfig())
	e.Apply(JoinIntent{SessionID: "s1"})
	p := e.world.Player("s1")
	p.Score = 9
	p.Kills = 2
	e.life.HandleDeath(p, nil)

	e.Apply(RespawnIntent{SessionID: "s1"})

	if !p.Alive || !p.Invulnerable {
		t.Fatalf("respawn must yield a living invulnerable player")
	}
	if len(p.Segments) != SpawnSegments {
		t.Fatalf("respawn body must have %d segments, got %d", SpawnSegments, len(p.Segments))
	}
	if p.Score != 0 || p.Kills != 0 {
		t.Fatalf("respawn must zero score and kills, got %d/%d", p.Score, p.Kills)
	}

	e.Apply(expireInvulnIntent{SessionID: "s1"})
	if p.Invulnerable {
		t.Fatalf("expiry must clear invulnerability")
	}
}

func TestInvulnerabilityExpiryAfterDepartureIsNoop(t *testing.T) {
	e, _ := newTestEngine(testConfig())
	e.Apply(JoinIntent{SessionID: "s1"})
	e.life.HandleDeath(e.world.Player("s1"), nil)
	e.Apply(RespawnIntent{SessionID: "s1"})
	e.Apply(LeaveIntent{SessionID: "s1"})

	// The timer may still fire after the session departed; the
	// transition must tolerate the missing player.
	e.Apply(expireInvulnIntent{SessionID: "s1"})

	if e.world.Player("s1") != nil {
		t.Fatalf("player must stay removed")
	}
}

func TestHandleDeathTransfersScoreAndKills(t *testing.T) {
	e, sink := newTestEngine(testConfig())
	victim := placePlayer(e, "a", 500, 500, 9)
	victim.Score = 9
	killer := placePlayer(e, "b", 300, 300, 5)
	killer.Score = 4

	e.life.HandleDeath(victim, killer)

	if victim.Alive {
		t.Fatalf("victim must be dead")
	}
	if killer.Score != 8 {
		t.Fatalf("killer must gain floor(9/2)=4 score, got %d", killer.Score)
	}
	if killer.Kills != 1 {
		t.Fatalf("killer must gain exactly one kill, got %d", killer.Kills)
	}

	killed := broadcastsOf[models.PlayerKilledMsg](sink)
	if len(killed) != 1 || killed[0].VictimID != "a" || killed[0].KillerID != "b" {
		t.Fatalf("unexpected playerKilled events: %+v", killed)
	}
	died := broadcastsOf[models.PlayerDiedMsg](sink)
	if len(died) != 1 || died[0].VictimID != "a" || died[0].KillerID != "b" {
		t.Fatalf("unexpected death events: %+v", died)
	}
	if died[0].Type != "playerDied" {
		t.Fatalf("death event must go out as playerDied, got %q", died[0].Type)
	}
	if drops := broadcastsOf[models.FoodSpawnedMsg](sink); len(drops) != 3 {
		t.Fatalf("9 segments must drop 3 food items, got %d", len(drops))
	}
}

func TestHandleDeathIsIdempotent(t *testing.T) {
	e, sink := newTestEngine(testConfig())
	victim := placePlayer(e, "a", 500, 500, 5)
	killer := placePlayer(e, "b", 300, 300, 5)

	e.life.HandleDeath(victim, killer)
	e.life.HandleDeath(victim, killer)

	if killer.Kills != 1 {
		t.Fatalf("a second death of the same player must be a no-op, kills=%d", killer.Kills)
	}
	if died := broadcastsOf[models.PlayerDiedMsg](sink); len(died) != 1 {
		t.Fatalf("exactly one death event per death, got %d", len(died))
	}
}

func TestReportedDeathWithVerifiedKiller(t *testing.T) {
	e, sink := newTestEngine(testConfig())
	victim := placePlayer(e, "a", 500, 500, 5)
	victim.Score = 6
	killer := placePlayer(e, "b", 300, 300, 5)

	e.Apply(DeathReportIntent{SessionID: "a", KillerID: "b"})

	if victim.Alive {
		t.Fatalf("reported death must be applied")
	}
	if killer.Score != 3 || killer.Kills != 1 {
		t.Fatalf("verified killer must be credited, got score=%d kills=%d", killer.Score, killer.Kills)
	}
	if killed := broadcastsOf[models.PlayerKilledMsg](sink); len(killed) != 1 {
		t.Fatalf("expected one playerKilled event, got %d", len(killed))
	}
}

func TestReportedDeathRejectsBogusKillers(t *testing.T) {
	cases := []struct {
		name     string
		killerID string
		prep     func(e *Engine)
	}{
		{"unknown id", "ghost", func(*Engine) {}},
		{"self attribution", "a", func(*Engine) {}},
		{"dead killer", "b", func(e *Engine) { e.world.Player("b").Alive = false }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, sink := newTestEngine(testConfig())
			victim := placePlayer(e, "a", 500, 500, 5)
			victim.Score = 6
			other := placePlayer(e, "b", 300, 300, 5)
			tc.prep(e)

			e.Apply(DeathReportIntent{SessionID: "a", KillerID: tc.killerID})

			if victim.Alive {
				t.Fatalf("the death itself is trusted and must be applied")
			}
			if other.Kills != 0 {
				t.Fatalf("bogus attribution must not credit anyone")
			}
			if victim.Kills != 0 {
				t.Fatalf("self attribution must not credit the victim")
			}
			if killed := broadcastsOf[models.PlayerKilledMsg](sink); len(killed) != 0 {
				t.Fatalf("unattributed death must not emit playerKilled")
			}
			died := broadcastsOf[models.PlayerDiedMsg](sink)
			if len(died) != 1 || died[0].KillerID != "" {
				t.Fatalf("expected one unattributed death event, got %+v", died)
			}
		})
	}
}

func TestLeaveRemovesPlayerBeforeNextTick(t *testing.T) {
	e, _ := newTestEngine(testConfig())
	e.Apply(JoinIntent{SessionID: "s1"})
	e.Apply(LeaveIntent{SessionID: "s1"})

	if e.world.Player("s1") != nil {
		t.Fatalf("leave must remove the player immediately")
	}
	e.StepOnce() // must not touch the departed player
}
