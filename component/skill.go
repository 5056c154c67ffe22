package component

import "math"

// StormSkill is the special skill: a fan of piercing projectiles toward a target point
type StormSkill struct {
	Level       int
	BaseDamage  float64
	Cooldown    int
	Timer       int
	Projectiles int
}

// Ready reports whether the cooldown has elapsed
func (s *StormSkill) Ready() bool { return s.Timer >= s.Cooldown }

// ProjectileDamage splits the base damage across projectiles, rounded up
func (s *StormSkill) ProjectileDamage() float64 {
	if s.Projectiles <= 0 {
		return 0
	}
	return math.Ceil(s.BaseDamage / float64(s.Projectiles))
}

// Apply adds delta to a skill stat and bumps the skill level
func (s *StormSkill) Apply(stat StatKind, delta float64) {
	switch stat {
	case StatDamage:
		s.BaseDamage += delta
	case StatCooldown:
		s.Cooldown += int(delta)
	case StatShots:
		s.Projectiles += int(delta)
	default:
		return
	}
	s.Level++
}
