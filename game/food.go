package game

import "github.com/4cecoder/arena/models"

// FoodEconomy creates, replenishes and removes food.
type FoodEconomy struct {
	world *World
	sink  EventSink
}

func NewFoodEconomy(w *World, sink EventSink) *FoodEconomy {
	return &FoodEconomy{world: w, sink: sink}
}

// Fill spawns food up to the target count without emitting events.
// Called once at session start, before any session is connected.
func (f *FoodEconomy) Fill() {
	for f.world.FoodCount() < f.world.cfg.TargetFood {
		f.spawnRandom(false)
	}
}

// TopUp spawns at most one food item when the pool is below target.
// Called once per tick after all players are processed, so a depleted
// pool refills at one item per tick and never overshoots the target.
func (f *FoodEconomy) TopUp() {
	if f.world.FoodCount() < f.world.cfg.TargetFood {
		f.spawnRandom(true)
	}
}

// Consume handles an eat request from a session. Requests referencing a
// missing or dead player, a missing food id, or food farther than the
// eat tolerance from the player's head are dropped silently; these are
// ordinary races between the client and authoritative state, not
// errors. Returns whether the food was eaten.
func (f *FoodEconomy) Consume(playerID, foodID string) bool {
	p := f.world.Player(playerID)
	if p == nil || !p.Alive || len(p.Segments) == 0 {
		return false
	}
	food := f.world.Food(foodID)
	if food == nil {
		return false
	}
	if dist(p.Head(), food.Position) > EatTolerance {
		return false
	}

	p.Score += food.Value
	grow := 1
	if food.Value > models.FoodValueNormal {
		grow = RareGrowSegments
	}
	tail := p.Tail()
	for i := 0; i < grow; i++ {
		p.Segments = append(p.Segments, tail)
	}

	f.world.RemoveFood(food.ID)
	f.sink.Broadcast(models.FoodConsumedMsg{
		Type:     models.MsgFoodConsumed,
		FoodID:   food.ID,
		PlayerID: p.ID,
		Value:    food.Value,
	})

	// One replacement spawn keeps the pool size stable across a meal.
	f.spawnRandom(true)
	return true
}

// DropFromDeath scatters food over a dying player's body: one value-1
// item per three segments, capped at twenty, each placed at a randomly
// chosen segment jittered by up to ±DeathDropJitter per axis.
func (f *FoodEconomy) DropFromDeath(p *models.Player) {
	if len(p.Segments) == 0 {
		return
	}
	drops := len(p.Segments) / DeathDropDivisor
	if drops > DeathDropMax {
		drops = DeathDropMax
	}
	for i := 0; i < drops; i++ {
		seg := p.Segments[f.world.rng.Intn(len(p.Segments))]
		pos := models.Point{
			X: seg.X + (f.world.rng.Float64()*2-1)*DeathDropJitter,
			Y: seg.Y + (f.world.rng.Float64()*2-1)*DeathDropJitter,
		}
		f.spawn(pos, models.FoodValueNormal, true)
	}
}

// spawnRandom places one food item at a uniform world position. Rare
// high-value food spawns with RareFoodChance probability.
func (f *FoodEconomy) spawnRandom(emit bool) *models.Food {
	value := models.FoodValueNormal
	if f.world.rng.Float64() < RareFoodChance {
		value = models.FoodValueRare
	}
	return f.spawn(f.world.RandomPosition(), value, emit)
}

func (f *FoodEconomy) spawn(pos models.Point, value int, emit bool) *models.Food {
	food := &models.Food{
		ID:       f.world.NewFoodID(),
		Position: pos,
		Value:    value,
	}
	f.world.AddFood(food)
	if emit {
		f.sink.Broadcast(models.FoodSpawnedMsg{Type: models.MsgFoodSpawned, Food: *food})
	}
	return food
}
