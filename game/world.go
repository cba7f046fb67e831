// Package game is the authoritative arena simulation: movement
// integration, collision detection, the food economy and the player
// life-cycle. All state is in-memory and owned by a single goroutine
// (see Engine.Run); nothing here locks.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/models"
)

// World holds every player and food item of one game session.
type World struct {
	cfg config.World

	players map[string]*models.Player
	food    map[string]*models.Food

	rng        *rand.Rand
	nextFoodID uint64
}

// NewWorld creates an empty world. Seed 0 seeds from the wall clock;
// any other value makes the session's random sampling reproducible.
func NewWorld(cfg config.World) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		cfg:     cfg,
		players: make(map[string]*models.Player),
		food:    make(map[string]*models.Food),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Config returns the world tuning this session runs with.
func (w *World) Config() config.World { return w.cfg }

// Player returns the player with the given session id, or nil.
func (w *World) Player(id string) *models.Player { return w.players[id] }

// AddPlayer inserts p, replacing any previous player with the same id.
func (w *World) AddPlayer(p *models.Player) { w.players[p.ID] = p }

// RemovePlayer deletes the player with the given id, if present.
func (w *World) RemovePlayer(id string) { delete(w.players, id) }

// PlayerCount returns the number of players in the world.
func (w *World) PlayerCount() int { return len(w.players) }

// PlayersByID returns all players in ascending session-id order. The
// collision pass iterates in this order so that first-match kill
// attribution is deterministic.
func (w *World) PlayersByID() []*models.Player {
	out := make([]*models.Player, 0, len(w.players))
	for _, p := range w.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Food returns the food item with the given id, or nil.
func (w *World) Food(id string) *models.Food { return w.food[id] }

// AddFood inserts f.
func (w *World) AddFood(f *models.Food) { w.food[f.ID] = f }

// RemoveFood deletes the food item with the given id, if present.
func (w *World) RemoveFood(id string) { delete(w.food, id) }

// FoodCount returns the number of live food items.
func (w *World) FoodCount() int { return len(w.food) }

// FoodList returns a copy of all food items in ascending id order.
func (w *World) FoodList() []models.Food {
	out := make([]models.Food, 0, len(w.food))
	for _, f := range w.food {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NewFoodID mints the next food id. Ids are unique for the lifetime of
// the world; a monotonic counter cannot collide the way the old
// timestamp-plus-suffix scheme could.
func (w *World) NewFoodID() string {
	w.nextFoodID++
	return fmt.Sprintf("f%d", w.nextFoodID)
}

// RandomPosition samples a uniform position inside the world.
func (w *World) RandomPosition() models.Point {
	return models.Point{
		X: w.rng.Float64() * w.cfg.Width,
		Y: w.rng.Float64() * w.cfg.Height,
	}
}

func dist(a, b models.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
