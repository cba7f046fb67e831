package game

// Intent is the closed set of typed commands a session (or internal
// timer) can deliver into the simulation. Each variant is handled
// exhaustively in Engine.Apply; there is no catch-all dispatch.
type Intent interface {
	isIntent()
}

// JoinIntent registers a new player for a session.
type JoinIntent struct {
	SessionID string
	Name      string
	Skin      int
}

// LeaveIntent removes a departing session's player and neutralizes any
// timers referencing it.
type LeaveIntent struct {
	SessionID string
}

// MoveIntent sets a living player's heading in degrees.
type MoveIntent struct {
	SessionID string
	Heading   float64
}

// BoostIntent toggles boosting. Activation requires a score of at
// least one; deactivation is always honored.
type BoostIntent struct {
	SessionID string
	Active    bool
}

// RespawnIntent requests the Dead → Alive transition.
type RespawnIntent struct {
	SessionID string
}

// EatFoodIntent requests consumption of one food item.
type EatFoodIntent struct {
	SessionID string
	FoodID    string
}

// DeathReportIntent is a session-reported death with an optional
// claimed killer id.
type DeathReportIntent struct {
	SessionID string
	KillerID  string
}

// expireInvulnIntent is posted by the invulnerability timer; it never
// originates from a session.
type expireInvulnIntent struct {
	SessionID string
}

func (JoinIntent) isIntent()         {}
func (LeaveIntent) isIntent()        {}
func (MoveIntent) isIntent()         {}
func (BoostIntent) isIntent()        {}
func (RespawnIntent) isIntent()      {}
func (EatFoodIntent) isIntent()      {}
func (DeathReportIntent) isIntent()  {}
func (expireInvulnIntent) isIntent() {}
