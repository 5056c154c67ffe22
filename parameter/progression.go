package parameter

// Spawning & Difficulty
const (
	// SpawnIntervalTicks is the normal enemy spawn period
	SpawnIntervalTicks = 30

	// DifficultyIntervalTicks is how often the difficulty scalar grows while spawning
	DifficultyIntervalTicks = 10 * TicksPerSecond

	// DifficultyIncrement is added to the base hp on every difficulty step
	DifficultyIncrement = 1.0

	// BossKillThreshold triggers a boss encounter on every multiple of this many kills
	BossKillThreshold = 20
)

// Experience Orbs
const (
	OrbRadius = 6.0
	OrbSpeed  = 3.0
	OrbValue  = 1.0

	// OrbExistCheckRadius suppresses a death orb when another orb is this close
	OrbExistCheckRadius = 20.0
)
