package engine

// Intent is the per-tick input to the simulation, independent of the input device
type Intent struct {
	// MoveX, MoveY in [-1, 1] per axis
	MoveX, MoveY float64

	// Skill requests the special skill toward (TargetX, TargetY) in world space
	Skill            bool
	TargetX, TargetY float64

	// Select is the chosen option index while a selection is open, -1 for none
	Select int
}

// NoIntent is an idle tick
var NoIntent = Intent{Select: -1}
