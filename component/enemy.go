package component

import (
	"math"

	"github.com/lixenwraith/slime-survivor/core"
)

// BossState is the extra state a boss carries on top of the enemy record
type BossState struct {
	// MinionTimer counts down to the next minion wave
	MinionTimer int

	// MinionBaseHP is the difficulty scalar captured at boss spawn, by value
	MinionBaseHP float64

	// RegenPerTick is hp restored every tick while alive
	RegenPerTick float64
}

// Enemy is the base record shared by every archetype
type Enemy struct {
	Entity core.Entity

	X, Y   float64
	Radius float64
	Speed  float64

	HP    float64
	MaxHP float64

	// Lifespan in ticks, LifespanInfinite never expires
	Lifespan int

	ContactDamage float64
	ShootTimer    int

	Archetype *Archetype
	Boss      *BossState

	// Dead is set the instant hp reaches zero; the entry stays pooled until compaction
	Dead bool
	// Expired marks a lifespan despawn, which is not a kill
	Expired bool
}

// NewEnemy sizes an enemy from the shared base hp: maxHP = ceil(base * multiplier)
func NewEnemy(id core.Entity, x, y float64, arch *Archetype, baseHP, baseRadius, baseSpeed float64) *Enemy {
	maxHP := math.Ceil(baseHP * arch.HPMultiplier)
	return &Enemy{
		Entity:        id,
		X:             x,
		Y:             y,
		Radius:        baseRadius * arch.RadiusFactor,
		Speed:         baseSpeed * arch.SpeedFactor,
		HP:            maxHP,
		MaxHP:         maxHP,
		Lifespan:      arch.Lifespan,
		ContactDamage: arch.Damage.Contact(maxHP),
		ShootTimer:    arch.ShootCooldown,
		Archetype:     arch,
	}
}

func (e *Enemy) EntityID() core.Entity { return e.Entity }

// Alive reports whether the enemy may still be targeted or damaged this tick
func (e *Enemy) Alive() bool { return !e.Dead && !e.Expired && e.HP > 0 }

// IsMinion reports whether kills of this enemy are excluded from the kill count
func (e *Enemy) IsMinion() bool { return e.Archetype != nil && e.Archetype.Minion }

// IsBoss reports whether this enemy drives the boss encounter
func (e *Enemy) IsBoss() bool { return e.Boss != nil }

// TakeDamage clamps hp at zero and marks death; returns true on the killing blow only
func (e *Enemy) TakeDamage(amount float64) bool {
	if !e.Alive() || amount <= 0 {
		return false
	}
	e.HP -= amount
	if e.HP <= 0 {
		e.HP = 0
		e.Dead = true
		return true
	}
	return false
}

// HPRatio returns remaining hp in [0,1]
func (e *Enemy) HPRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return e.HP / e.MaxHP
}
