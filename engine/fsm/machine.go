package fsm

import "fmt"

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{nodes: make(map[StateID]*Node[T])}
}

// AddState registers a state; actions may be attached afterwards through the returned node
func (m *Machine[T]) AddState(id StateID, name string) (*Node[T], error) {
	if id == StateNone {
		return nil, fmt.Errorf("state %q: id %d is reserved", name, StateNone)
	}
	if _, exists := m.nodes[id]; exists {
		return nil, fmt.Errorf("state %q: id %d already registered", name, id)
	}
	n := &Node[T]{ID: id, Name: name}
	m.nodes[id] = n
	return n, nil
}

// AddTransition links from -> to under guard
func (m *Machine[T]) AddTransition(from, to StateID, guard GuardFunc[T]) error {
	src, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("transition source %d not found", from)
	}
	if _, ok := m.nodes[to]; !ok {
		return fmt.Errorf("transition target %d not found", to)
	}
	src.Transitions = append(src.Transitions, Transition[T]{TargetID: to, Guard: guard})
	return nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	m.initial = initial
	m.active = initial
	m.timeInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances the machine by one tick: OnUpdate of the active state, then the first passing transition
func (m *Machine[T]) Update(ctx T) {
	if m.active == StateNone {
		return
	}
	m.timeInState++

	node := m.nodes[m.active]
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return
		}
	}
}

func (m *Machine[T]) transition(ctx T, target StateID) {
	if m.active == target {
		return
	}
	for _, action := range m.nodes[m.active].OnExit {
		action(ctx)
	}
	m.active = target
	m.timeInState = 0
	m.transitions++
	for _, action := range m.nodes[target].OnEnter {
		action(ctx)
	}
}

// Reset exits the active state and re-enters the initial one
func (m *Machine[T]) Reset(ctx T) error {
	if m.active != StateNone {
		for _, action := range m.nodes[m.active].OnExit {
			action(ctx)
		}
	}
	m.active = StateNone
	m.transitions = 0
	return m.Init(ctx, m.initial)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID { return m.active }

// CurrentName returns the active state's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if n, ok := m.nodes[m.active]; ok {
		return n.Name
	}
	return ""
}

// TimeInState returns ticks spent in the active state
func (m *Machine[T]) TimeInState() int { return m.timeInState }

// Transitions returns the number of state changes since Init
func (m *Machine[T]) Transitions() int { return m.transitions }
