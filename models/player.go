// Package models player.go
package models

// Point is a 2D world coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Player is a snake in the arena. Segments[0] is the head; the tail
// grows at increasing index. There is no separate authoritative head
// field.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Skin         int     `json:"skin"`
	Color        string  `json:"color"`
	Segments     []Point `json:"segments"`
	Heading      float64 `json:"heading"` // degrees
	BaseSpeed    float64 `json:"-"`
	Boosting     bool    `json:"boosting"`
	BoostAccumMS float64 `json:"-"` // ms since last boost cost was charged
	Score        int     `json:"score"`
	Kills        int     `json:"kills"`
	Alive        bool    `json:"alive"`
	Invulnerable bool    `json:"invulnerable"`
}

// Head returns the head segment. Only valid while the player has a body.
func (p *Player) Head() Point {
	return p.Segments[0]
}

// Tail returns the last body segment.
func (p *Player) Tail() Point {
	return p.Segments[len(p.Segments)-1]
}
