package game

import (
	"sort"

	"github.com/4cecoder/arena/models"
)

// stateMsg builds the per-tick replication frame: a deep copy of every
// player plus the leaderboard. Food is not replicated here; joiners
// get the full list once and stay in sync through the spawn/consume
// events.
func (e *Engine) stateMsg(tick uint64) models.StateMsg {
	players := e.world.PlayersByID()
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		cp := *p
		cp.Segments = append([]models.Point(nil), p.Segments...)
		out = append(out, cp)
	}
	return models.StateMsg{
		Type:        models.MsgState,
		Tick:        tick,
		Players:     out,
		Leaderboard: e.leaderboard(),
	}
}

// leaderboard returns the top living players by score, ties broken by
// session id for stable output.
func (e *Engine) leaderboard() []models.LeaderboardEntry {
	players := e.world.PlayersByID()
	alive := players[:0]
	for _, p := range players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	sort.SliceStable(alive, func(i, j int) bool {
		if alive[i].Score != alive[j].Score {
			return alive[i].Score > alive[j].Score
		}
		return alive[i].ID < alive[j].ID
	})
	top := e.world.cfg.LeaderboardTop
	if top > 0 && len(alive) > top {
		alive = alive[:top]
	}
	entries := make([]models.LeaderboardEntry, len(alive))
	for i, p := range alive {
		entries[i] = models.LeaderboardEntry{ID: p.ID, Name: p.Name, Score: p.Score}
	}
	return entries
}
