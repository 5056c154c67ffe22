package component

import "github.com/lixenwraith/slime-survivor/core"

// ExpOrb drifts toward the player and is consumed on contact
type ExpOrb struct {
	Entity core.Entity

	X, Y   float64
	Radius float64
	Speed  float64
	Value  float64

	Consumed bool
}

func (o *ExpOrb) EntityID() core.Entity { return o.Entity }
