// Package models food.go
package models

// Food value tiers. Rare food is worth five normal pellets.
const (
	FoodValueNormal = 1
	FoodValueRare   = 5
)

// Food is a single pellet in the world.
type Food struct {
	ID       string `json:"id"`
	Position Point  `json:"position"`
	Value    int    `json:"value"`
}
