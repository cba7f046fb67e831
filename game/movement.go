package game

import (
	"math"

	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/models"
)

// MovementEngine advances living players by one tick of displacement.
type MovementEngine struct {
	world *World
}

func NewMovementEngine(w *World) *MovementEngine {
	return &MovementEngine{world: w}
}

// Advance moves p one tick along its heading and propagates the body
// behind it. Dead or bodiless players are left untouched.
//
// The body updates tail-to-head: each segment takes the position the
// segment ahead of it held before this tick, and the head moves last.
// Updating in any other order within the tick would corrupt the
// follow-the-leader chain.
func (m *MovementEngine) Advance(p *models.Player) {
	if !p.Alive || len(p.Segments) == 0 {
		return
	}

	rad := p.Heading * math.Pi / 180
	mult := NormalSpeedMultiplier
	if p.Boosting {
		mult = BoostSpeedMultiplier
	}
	speed := p.BaseSpeed * mult

	head := p.Segments[0]
	nx := head.X + speed*math.Cos(rad)
	ny := head.Y + speed*math.Sin(rad)
	if m.world.cfg.Topology == config.TopologyWrap {
		nx = wrapCoord(nx, m.world.cfg.Width)
		ny = wrapCoord(ny, m.world.cfg.Height)
	}

	for i := len(p.Segments) - 1; i >= 1; i-- {
		p.Segments[i] = p.Segments[i-1]
	}
	p.Segments[0] = models.Point{X: nx, Y: ny}

	m.chargeBoost(p)
}

// chargeBoost accumulates boost time and charges one segment and one
// score point per cost interval. Players at the minimum body length
// have boost forced off instead of being charged.
func (m *MovementEngine) chargeBoost(p *models.Player) {
	if !p.Boosting {
		p.BoostAccumMS = 0
		return
	}
	p.BoostAccumMS += float64(m.world.cfg.TickInterval.Milliseconds())
	if p.BoostAccumMS < BoostCostIntervalMS {
		return
	}
	p.BoostAccumMS = 0
	if len(p.Segments) > MinSegments {
		p.Segments = p.Segments[:len(p.Segments)-1]
		if p.Score > 0 {
			p.Score--
		}
	} else {
		p.Boosting = false
	}
}

// wrapCoord maps v into [0, dim) with floored modulo, so negative
// coordinates wrap to the far edge.
func wrapCoord(v, dim float64) float64 {
	r := math.Mod(v, dim)
	if r < 0 {
		r += dim
	}
	return r
}
