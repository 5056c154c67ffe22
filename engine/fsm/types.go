package fsm

// StateID is a unique identifier for a state
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// Machine is a flat finite state machine advanced once per simulation tick
// T is the context type passed to actions and guards (e.g. *engine.World)
type Machine[T any] struct {
	nodes   map[StateID]*Node[T]
	initial StateID

	active      StateID
	timeInState int
	transitions int
}

// Node represents one state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order; the first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a guarded link between states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
