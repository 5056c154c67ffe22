package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// Projector converts a screen cell into world coordinates
type Projector interface {
	ScreenToWorld(col, row int) (float64, float64)
}

// Mapper folds tcell events between two ticks into one engine.Intent
type Mapper struct {
	table *KeyTable

	// hold counts remaining ticks per direction since its last press
	hold [dirCount]int

	skill     bool
	aimed     bool
	aimCol    int
	aimRow    int
	selection int
}

func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table, selection: -1}
}

// HandleEvent records the event; frontend actions are returned for the caller to act on
func (m *Mapper) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := m.lookup(ev)
		if !ok {
			return ActionNone
		}
		switch entry.Behavior {
		case BehaviorMove:
			m.press(entry.Direction)
		case BehaviorSelect:
			m.selection = entry.Option
		case BehaviorSkill:
			m.skill = true
			m.aimed = false
		case BehaviorSystem:
			return entry.Action
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			m.skill = true
			m.aimed = true
			m.aimCol, m.aimRow = ev.Position()
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (m *Mapper) lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := m.table.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := m.table.SpecialKeys[ev.Key()]
	return e, ok
}

// press activates d and cancels the opposite direction
func (m *Mapper) press(d Direction) {
	m.hold[d] = parameter.KeyHoldTicks
	m.hold[d^1] = 0
}

// Intent builds the intent for the next tick and ages held keys
// The skill target is the clicked cell when aimed by mouse, otherwise a point ahead of facing
func (m *Mapper) Intent(px, py, facing float64, proj Projector) engine.Intent {
	in := engine.Intent{Select: m.selection}

	axis := func(neg, pos Direction) float64 {
		v := 0.0
		if m.hold[neg] > 0 {
			v--
		}
		if m.hold[pos] > 0 {
			v++
		}
		return v
	}
	in.MoveX = axis(DirLeft, DirRight)
	in.MoveY = axis(DirUp, DirDown)
	for d := range m.hold {
		if m.hold[d] > 0 {
			m.hold[d]--
		}
	}

	if m.skill {
		in.Skill = true
		if m.aimed && proj != nil {
			in.TargetX, in.TargetY = proj.ScreenToWorld(m.aimCol, m.aimRow)
		} else {
			cx, cy := vmath.FromAngle(facing)
			in.TargetX = px + cx*parameter.SkillAimDistance
			in.TargetY = py + cy*parameter.SkillAimDistance
		}
	}

	m.skill = false
	m.aimed = false
	m.selection = -1
	return in
}

// Reset drops every pending press, used on restart
func (m *Mapper) Reset() {
	m.hold = [dirCount]int{}
	m.skill = false
	m.aimed = false
	m.selection = -1
}
