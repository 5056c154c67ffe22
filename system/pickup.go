package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// PickupSystem draws exp orbs toward the player; collection happens in CombatSystem
type PickupSystem struct{}

func NewPickupSystem(_ *engine.World) *PickupSystem { return &PickupSystem{} }

func (s *PickupSystem) Name() string  { return "pickup" }
func (s *PickupSystem) Priority() int { return parameter.PriorityPickup }

func (s *PickupSystem) Update(w *engine.World) {
	p := w.Player
	w.Orbs.Advance(func(o *component.ExpOrb) bool {
		if o.Consumed {
			return false
		}
		dx, dy := w.Delta(o.X, o.Y, p.X, p.Y)
		dist := math.Hypot(dx, dy)
		if dist < o.Speed {
			o.X, o.Y = p.X, p.Y
			return true
		}
		o.X, o.Y = w.Wrap(o.X+dx/dist*o.Speed, o.Y+dy/dist*o.Speed)
		return true
	})
}
