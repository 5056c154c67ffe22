package parameter

// System Execution Priorities (lower runs first)
// Order is the fixed tick pipeline: selection input, player, spawn timers, pool advances, combat, compaction, level gating
const (
	PrioritySelection   = 5
	PriorityPlayer      = 10
	PriorityProgression = 20
	PriorityWeapon      = 30
	PriorityEnemy       = 40
	PriorityProjectile  = 50
	PriorityAlly        = 60
	PriorityPickup      = 70
	PriorityCombat      = 100
	PriorityCull        = 200
	PriorityLevel       = 300
	PriorityDiagnostics = 1000
)
