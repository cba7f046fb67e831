package game

import (
	"time"

	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/models"
)

// testConfig returns a small deterministic world: 1000x1000 wrap
// topology, 100ms ticks (so the 500ms boost interval divides evenly),
// seeded rng.
func testConfig() config.World {
	cfg := config.DefaultWorld()
	cfg.Width = 1000
	cfg.Height = 1000
	cfg.TickInterval = 100 * time.Millisecond
	cfg.TargetFood = 10
	cfg.Seed = 1
	cfg.SnapshotEvery = 0
	return cfg
}

// captureSink records every emitted event for assertions.
type captureSink struct {
	broadcasts []any
	direct     map[string][]any
}

func newCaptureSink() *captureSink {
	return &captureSink{direct: make(map[string][]any)}
}

func (s *captureSink) Broadcast(v any) { s.broadcasts = append(s.broadcasts, v) }

func (s *captureSink) SendTo(id string, v any) { s.direct[id] = append(s.direct[id], v) }

// broadcastsOf filters recorded broadcasts by message type.
func broadcastsOf[T any](s *captureSink) []T {
	var out []T
	for _, v := range s.broadcasts {
		if m, ok := v.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

func newTestEngine(cfg config.World) (*Engine, *captureSink) {
	sink := newCaptureSink()
	return NewEngine(cfg, sink, nil), sink
}

// placePlayer inserts a living player whose segments all sit on one
// point, bypassing the join flow for precise positioning.
func placePlayer(e *Engine, id string, x, y float64, segments int) *models.Player {
	p := &models.Player{
		ID:        id,
		Name:      id,
		Segments:  make([]models.Point, segments),
		BaseSpeed: DefaultBaseSpeed,
		Alive:     true,
	}
	for i := range p.Segments {
		p.Segments[i] = models.Point{X: x, Y: y}
	}
	e.world.AddPlayer(p)
	return p
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
