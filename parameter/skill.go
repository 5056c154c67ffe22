package parameter

import "math"

// Storm Skill
const (
	StormBaseDamage        = 60.0
	StormCooldown          = 15 * TicksPerSecond
	StormMinCooldown       = 5 * TicksPerSecond
	StormCooldownStep      = 2 * TicksPerSecond
	StormDamageStep        = 20.0
	StormSpeed             = 6.0
	StormRadius            = 40.0
	StormLifespanTicks     = 3 * TicksPerSecond
	StormInitialProjectile = 1

	// StormFanSpread is the total fan angle when more than one projectile is fired
	StormFanSpread = math.Pi
)
