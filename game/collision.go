package game

import (
	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/models"
)

// CollisionDetector evaluates head-vs-body and head-vs-boundary
// conditions after a player has moved.
type CollisionDetector struct {
	world *World
}

func NewCollisionDetector(w *World) *CollisionDetector {
	return &CollisionDetector{world: w}
}

// Check tests p's head against the boundary and against every other
// living player's body. It reports whether p died this tick and, for a
// body hit, which player the death is attributed to; a boundary death
// has a nil killer.
//
// Other players are visited in ascending session-id order and their
// segments from index 1 (a head never kills by itself, and a snake
// never collides with its own body). The first hit wins. Invulnerable
// players cannot be the victim of a body hit, but the boundary still
// applies to them.
func (c *CollisionDetector) Check(p *models.Player) (killer *models.Player, died bool) {
	if !p.Alive || len(p.Segments) == 0 {
		return nil, false
	}
	head := p.Head()

	if c.world.cfg.Topology == config.TopologyWalls {
		if head.X < 0 || head.X > c.world.cfg.Width || head.Y < 0 || head.Y > c.world.cfg.Height {
			return nil, true
		}
	}

	if p.Invulnerable {
		return nil, false
	}

	for _, other := range c.world.PlayersByID() {
		if other.ID == p.ID || !other.Alive {
			continue
		}
		for i := 1; i < len(other.Segments); i++ {
			if dist(head, other.Segments[i]) < HeadRadius+SegmentRadius {
				return other, true
			}
		}
	}
	return nil, false
}
