package parameter

// Slime Base Stats
const (
	// SlimeRadius is the base enemy body radius
	SlimeRadius = 20.0

	// SlimeSpeed is the base enemy chase speed per tick
	SlimeSpeed = 1.5

	// SlimeInitialBaseHP is the difficulty scalar at run start
	SlimeInitialBaseHP = 10.0

	// SlimeLifespanTicks is how long a normal enemy lives before despawning (not a kill)
	SlimeLifespanTicks = 60 * TicksPerSecond

	// SlimeContactDamageFlat is the flat part of enemy contact damage
	SlimeContactDamageFlat = 5.0

	// SlimeContactDamageMaxHPFraction scales contact damage with the enemy's own max hp
	SlimeContactDamageMaxHPFraction = 0.1
)

// Archetype Factors
const (
	MintRadiusFactor = 0.7
	MintSpeedFactor  = 1.6
	MintHPMultiplier = 0.5

	ShooterSpeedFactor   = 0.7
	ShooterHPMultiplier  = 1.0
	ShooterShootCooldown = 3 * TicksPerSecond
)

// Archetype Spawn Weights (relative)
const (
	WeightSlime   = 6
	WeightMint    = 2
	WeightShooter = 2
)

// Enemy Bullets
const (
	BulletSpeed         = 4.0
	BulletSize          = 10.0
	BulletLifespanTicks = 4 * TicksPerSecond
	BulletDamage        = 10.0
)

// Boss
const (
	BossRadiusMultiplier = 3.0
	BossSpeedMultiplier  = 0.8
	BossHPMultiplier     = 30.0
	BossContactDamage    = 30.0
	BossRegenPerSecond   = 5.0
	BossShootCooldown    = 90

	// BossSpreadAngle is the angular gap between the boss's three bullets (radians, ~4°)
	BossSpreadAngle = 0.0698

	BossMinionCooldown = 10 * TicksPerSecond
	BossMinionCount    = 5

	// BossGunnersPerWave is how many of each minion wave are ranged gunners
	BossGunnersPerWave = 1

	// BossOrbCount is the number of exp orbs scattered on boss death
	BossOrbCount = 30
)
