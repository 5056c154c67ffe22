package parameter

// Player
const (
	// PlayerSize is the player's square hitbox side
	PlayerSize = 30.0

	// PlayerSpeed is movement per tick at full input
	PlayerSpeed = 4.0

	// PlayerInitialHP is starting and initial maximum hit points
	PlayerInitialHP = 100.0

	// PlayerInitialLevel is the starting level
	PlayerInitialLevel = 1

	// PlayerInitialExpToNext is experience needed for the first level-up
	PlayerInitialExpToNext = 10.0

	// PlayerExpGrowth multiplies exp-to-next on every level-up (ceil)
	PlayerExpGrowth = 1.5

	// PlayerLevelUpHPBonus is the max hp increase per level
	PlayerLevelUpHPBonus = 10.0

	// PlayerInvincibilityTicks is the post-hit window during which damage is ignored
	PlayerInvincibilityTicks = 60

	// PlayerRegenFractionPerSecond is passive regeneration as a fraction of max hp
	PlayerRegenFractionPerSecond = 0.01

	// PlayerDamageHitboxMultiplier shrinks the contact hitbox against enemy bodies
	PlayerDamageHitboxMultiplier = 0.8

	// PlayerMaxWeaponSlots bounds the number of active weapons
	PlayerMaxWeaponSlots = 10
)

// Upgrades
const (
	// UpgradeOptionsOffered is the maximum number of options per level-up
	UpgradeOptionsOffered = 3

	// UpgradeStatOptionsPerWeapon is how many stat upgrades each owned weapon contributes to the pool
	UpgradeStatOptionsPerWeapon = 2

	// UpgradeFallbackHPBonus is offered when nothing else is available
	UpgradeFallbackHPBonus = 20.0

	// BossKillExpMultiplier compounds the player's exp gain on each boss kill
	BossKillExpMultiplier = 1.5
)
