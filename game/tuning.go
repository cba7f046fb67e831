package game

import "time"

// Simulation tuning. These are gameplay constants rather than per-world
// configuration; dimensions, tick rate, topology and the food target
// live in config.World.
const (
	// Movement
	DefaultBaseSpeed      = 3.0 // world units per tick before multiplier
	NormalSpeedMultiplier = 3.0
	BoostSpeedMultiplier  = 6.0

	// Boost cost: one tail segment and one score point per interval,
	// charged only while the accumulator is running.
	BoostCostIntervalMS = 500.0

	// Body
	SpawnSegments = 5
	MinSegments   = 5 // boosting below this is refused

	// Collision radii
	HeadRadius    = 8.0
	SegmentRadius = 6.0

	// Food economy
	RareFoodChance   = 0.05
	EatTolerance     = 250.0 // generous, absorbs client prediction lag
	RareGrowSegments = 3
	DeathDropDivisor = 3
	DeathDropMax     = 20
	DeathDropJitter  = 20.0

	// Lifecycle
	InvulnerabilityWindow = 3000 * time.Millisecond
)

// Skin palette assigned round-robin-by-rng at join, same scheme the
// client uses to pick sprite colors.
var skinColors = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12", "#9b59b6",
	"#1abc9c", "#e67e22", "#e91e63", "#00bcd4", "#8bc34a",
	"#ff5722", "#607d8b", "#795548", "#673ab7", "#03a9f4",
}
