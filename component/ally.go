package component

import "github.com/lixenwraith/slime-survivor/core"

// Bat is a summoned ally that hunts the nearest enemy and bites on an interval
type Bat struct {
	Entity core.Entity

	X, Y   float64
	Speed  float64
	Radius float64

	// Owner is the slot of the summoning weapon in the player's weapon list
	Owner int
	// Target is a weak reference into the enemy pool
	Target core.Entity
	// Orbit is the idle angle around the player when no target exists
	Orbit float64

	Bite *Hazard
}

func (b *Bat) EntityID() core.Entity { return b.Entity }
