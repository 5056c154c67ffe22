package parameter

import "time"

// Simulation Timing
const (
	// TicksPerSecond is the fixed simulation rate; one tick is one rendered frame
	TicksPerSecond = 60

	// TickInterval is the wall-clock budget of a single tick
	TickInterval = time.Second / TicksPerSecond
)

// Event Queue
const (
	// EventQueueSize is the number of events held between drains
	EventQueueSize = 256
)

// LifespanInfinite is the lifespan sentinel for entities that never expire
const LifespanInfinite = -1

// GridAuditInterval is how often, in ticks, the diagnostics pass checks the grid against the enemy pool
const GridAuditInterval = 5 * TicksPerSecond
