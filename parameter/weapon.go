package parameter

import "math"

// Dagger Launcher
const (
	DaggerDamage        = 10.0
	DaggerCooldown      = 60
	DaggerSpeed         = 8.0
	DaggerSize          = 12.0
	DaggerLifespanTicks = 2 * TicksPerSecond
	DaggerDamageGrowth  = 1.2
	DaggerCooldownStep  = 5
	DaggerMinCooldown   = 10
	DaggerInitialShots  = 1
)

// Whip
const (
	WhipDamage         = 5.0
	WhipKnockback      = 45.0
	WhipReach          = 130.0
	WhipArcWidth       = math.Pi
	WhipCooldown       = 45
	WhipSwingTicks     = 12
	WhipBladeHalfAngle = 0.15

	// WhipTargetRangeFactor widens the auto-aim search beyond reach
	WhipTargetRangeFactor = 2.0

	WhipDamageStep    = 3.0
	WhipKnockbackStep = 12.0
	WhipReachStep     = 25.0
	WhipCooldownStep  = 6
	WhipMinCooldown   = 12
)

// Flail
const (
	FlailChainLength   = 90.0
	FlailHeadRadius    = 15.0
	FlailRotationSpeed = 0.08
	FlailDamage        = 8.0
	FlailHitInterval   = TicksPerSecond / 3
	FlailMotionFactor  = 0.005
	FlailBounceFactor  = -0.7
	FlailDamageGrowth  = 1.2
	FlailChainStep     = 10.0
	FlailRotationStep  = 0.01
)

// Bat Controller
const (
	BatDamage         = 4.0
	BatLifesteal      = 0.04
	BatMaxCount       = 2
	BatSpawnCooldown  = TicksPerSecond
	BatSpeed          = 3.5
	BatRadius         = 8.0
	BatHitInterval    = TicksPerSecond / 2
	BatOrbitRadius    = 60.0
	BatDamageGrowth   = 1.2
	BatMaxCountStep   = 1
	BatLifestealStep  = 0.02
	BatLifestealLimit = 1.0
)
