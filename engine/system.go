package engine

// System is one stage of the tick, run in ascending Priority
type System interface {
	Name() string
	Priority() int
	Update(w *World)
}

// PauseExempt marks systems that keep running while a selection gates the simulation
type PauseExempt interface {
	RunsWhilePaused() bool
}

// Resetter is implemented by systems holding per-run state
type Resetter interface {
	Reset(w *World)
}
