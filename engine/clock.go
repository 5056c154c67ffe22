package engine

// SimClock counts simulation ticks
// Tick advances on every Step; Simulated only on ticks where the simulation was not paused
type SimClock struct {
	tick      uint64
	simulated uint64
	paused    bool
}

// Pause stops survival time; calling it while paused is a no-op
func (c *SimClock) Pause() { c.paused = true }

// Resume restarts survival time; calling it while running is a no-op
func (c *SimClock) Resume() { c.paused = false }

func (c *SimClock) Paused() bool { return c.paused }

// Advance closes the current tick
func (c *SimClock) Advance() {
	c.tick++
	if !c.paused {
		c.simulated++
	}
}

// Tick returns the number of completed steps
func (c *SimClock) Tick() uint64 { return c.tick }

// Simulated returns the number of completed unpaused steps
func (c *SimClock) Simulated() uint64 { return c.simulated }

// Seconds converts simulated ticks at the given rate
func (c *SimClock) Seconds(rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(c.simulated) / float64(rate)
}

// Reset zeroes the clock
func (c *SimClock) Reset() { *c = SimClock{} }
