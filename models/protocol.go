// Package models protocol.go
//
// Wire messages exchanged with clients over the websocket. Every frame
// carries a "type" discriminator so unknown messages can be routed (or
// dropped) without decoding the full payload.
package models

// Client → server message types.
const (
	MsgJoin       = "join"
	MsgMove       = "move"
	MsgBoost      = "boost"
	MsgRespawn    = "respawn"
	MsgEatFood    = "eatFood"
	MsgPlayerDied = "playerDied"
)

// Server → client message types.
const (
	MsgWelcome      = "welcome"
	MsgInitialFoods = "initialFoods"
	MsgFoodSpawned  = "foodSpawned"
	MsgFoodConsumed = "foodConsumed"
	MsgPlayerKilled = "playerKilled"
	// Same name as the inbound death report; direction disambiguates.
	MsgDeathNotice = "playerDied"
	MsgState       = "state"
)

// ClientMessage is the single decoded form of every inbound frame.
// Fields beyond Type are meaningful only for the matching message type.
type ClientMessage struct {
	Type     string  `json:"type"`
	Name     string  `json:"name,omitempty"`
	Skin     int     `json:"skin,omitempty"`
	Heading  float64 `json:"heading,omitempty"`
	Active   bool    `json:"active,omitempty"`
	FoodID   string  `json:"foodId,omitempty"`
	KillerID string  `json:"killerId,omitempty"`
}

// WelcomeMsg is sent once to a joining session.
type WelcomeMsg struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Position Point  `json:"position"`
	Color    string `json:"color"`
}

// InitialFoodsMsg gives a joining session the full current food list.
type InitialFoodsMsg struct {
	Type  string `json:"type"`
	Foods []Food `json:"foods"`
}

// FoodSpawnedMsg announces a new pellet to all sessions.
type FoodSpawnedMsg struct {
	Type string `json:"type"`
	Food Food   `json:"food"`
}

// FoodConsumedMsg announces a pellet being eaten.
type FoodConsumedMsg struct {
	Type     string `json:"type"`
	FoodID   string `json:"foodId"`
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
}

// PlayerKilledMsg names both parties of an attributed kill.
type PlayerKilledMsg struct {
	Type     string `json:"type"`
	VictimID string `json:"victimId"`
	KillerID string `json:"killerId"`
}

// PlayerDiedMsg announces any death; KillerID is empty when the death
// had no attributable killer (boundary, unverified report).
type PlayerDiedMsg struct {
	Type     string `json:"type"`
	VictimID string `json:"victimId"`
	KillerID string `json:"killerId,omitempty"`
}

// LeaderboardEntry is one row of the score table.
type LeaderboardEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// StateMsg is the per-tick replication frame sent to every session.
type StateMsg struct {
	Type        string             `json:"type"`
	Tick        uint64             `json:"tick"`
	Players     []Player           `json:"players"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}
