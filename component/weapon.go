package component

import "github.com/lixenwraith/slime-survivor/core"

// WeaponKind is the closed set of player weapons
type WeaponKind uint8

const (
	WeaponDagger WeaponKind = iota
	WeaponWhip
	WeaponFlail
	WeaponBats

	WeaponKindCount
)

var weaponNames = [...]string{"dagger", "whip", "flail", "bats"}

func (k WeaponKind) String() string { return enumName(weaponNames[:], int(k)) }

// Weapon is one owned weapon instance; fields are grouped per kind and unused groups stay zero
type Weapon struct {
	Kind  WeaponKind
	Level int

	Damage   float64
	Cooldown int
	// Timer counts up to Cooldown
	Timer int

	// Dagger
	Shots int

	// Whip
	Knockback float64
	Reach     float64
	// Swing is a weak reference into the swing pool, EntityNone when idle
	Swing     core.Entity
	LastAngle float64

	// Flail
	Chain     float64
	Spin      float64
	SpinNow   float64
	HeadAngle float64
	Head      *Hazard

	// Bats
	MaxBats   int
	Lifesteal float64
}

// Stat returns the current value of a tunable stat, used to build upgrade offers
func (w *Weapon) Stat(s StatKind) float64 {
	switch s {
	case StatDamage:
		return w.Damage
	case StatCooldown:
		return float64(w.Cooldown)
	case StatShots:
		return float64(w.Shots)
	case StatKnockback:
		return w.Knockback
	case StatReach:
		return w.Reach
	case StatChain:
		return w.Chain
	case StatSpin:
		return w.Spin
	case StatMaxBats:
		return float64(w.MaxBats)
	case StatLifesteal:
		return w.Lifesteal
	}
	return 0
}

// Apply adds delta to a stat and bumps the weapon level
func (w *Weapon) Apply(s StatKind, delta float64) {
	switch s {
	case StatDamage:
		w.Damage += delta
	case StatCooldown:
		w.Cooldown += int(delta)
	case StatShots:
		w.Shots += int(delta)
	case StatKnockback:
		w.Knockback += delta
	case StatReach:
		w.Reach += delta
	case StatChain:
		w.Chain += delta
	case StatSpin:
		w.Spin += delta
	case StatMaxBats:
		w.MaxBats += int(delta)
	case StatLifesteal:
		w.Lifesteal += delta
	default:
		return
	}
	if w.Head != nil {
		w.Head.Damage = w.Damage
	}
	w.Level++
}
