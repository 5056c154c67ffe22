package component

import "github.com/lixenwraith/slime-survivor/core"

// Hazard damages qualifying entities in range at most once per Interval ticks each
type Hazard struct {
	X, Y     float64
	Radius   float64
	Damage   float64
	Interval int

	cooldowns map[core.Entity]int
}

// NewHazard creates a hazard with an empty cooldown table
func NewHazard(radius, damage float64, interval int) *Hazard {
	return &Hazard{
		Radius:    radius,
		Damage:    damage,
		Interval:  interval,
		cooldowns: make(map[core.Entity]int),
	}
}

// Tick advances every cooldown by one tick, dropping the elapsed ones
func (h *Hazard) Tick() {
	for e, cd := range h.cooldowns {
		cd--
		if cd <= 0 {
			delete(h.cooldowns, e)
			continue
		}
		h.cooldowns[e] = cd
	}
}

// Ready reports whether e may be damaged now
func (h *Hazard) Ready(e core.Entity) bool {
	_, cooling := h.cooldowns[e]
	return !cooling
}

// Arm starts e's cooldown after a hit
func (h *Hazard) Arm(e core.Entity) {
	h.cooldowns[e] = h.Interval
}

// Forget drops e's cooldown, used when e leaves the world
func (h *Hazard) Forget(e core.Entity) {
	delete(h.cooldowns, e)
}

// Cooling returns the number of entities currently on cooldown
func (h *Hazard) Cooling() int {
	return len(h.cooldowns)
}
