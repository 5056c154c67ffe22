package input

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/slime-survivor/parameter"
)

type fixedProjector struct{}

func (fixedProjector) ScreenToWorld(col, row int) (float64, float64) {
	return float64(col * 10), float64(row * 20)
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestMapper_IdleIntent(t *testing.T) {
	m := NewMapper(nil)
	in := m.Intent(0, 0, 0, nil)
	assert.Zero(t, in.MoveX)
	assert.Zero(t, in.MoveY)
	assert.False(t, in.Skill)
	assert.Equal(t, -1, in.Select)
}

func TestMapper_MovementHoldsThenReleases(t *testing.T) {
	m := NewMapper(nil)
	m.HandleEvent(key('d'))
	m.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	for i := 0; i < parameter.KeyHoldTicks; i++ {
		in := m.Intent(0, 0, 0, nil)
		assert.Equal(t, 1.0, in.MoveX, "tick %d", i)
		assert.Equal(t, -1.0, in.MoveY, "tick %d", i)
	}
	in := m.Intent(0, 0, 0, nil)
	assert.Zero(t, in.MoveX)
	assert.Zero(t, in.MoveY)
}

func TestMapper_OppositePressCancels(t *testing.T) {
	m := NewMapper(nil)
	m.HandleEvent(key('h'))
	m.HandleEvent(key('l'))
	assert.Equal(t, 1.0, m.Intent(0, 0, 0, nil).MoveX)
}

func TestMapper_SelectionIsOneShot(t *testing.T) {
	m := NewMapper(nil)
	m.HandleEvent(key('2'))
	assert.Equal(t, 1, m.Intent(0, 0, 0, nil).Select)
	assert.Equal(t, -1, m.Intent(0, 0, 0, nil).Select)
}

func TestMapper_SkillAim(t *testing.T) {
	m := NewMapper(nil)

	m.HandleEvent(key(' '))
	in := m.Intent(100, 100, math.Pi/2, fixedProjector{})
	assert.True(t, in.Skill)
	assert.InDelta(t, 100, in.TargetX, 1e-9)
	assert.InDelta(t, 100+parameter.SkillAimDistance, in.TargetY, 1e-9)

	m.HandleEvent(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	in = m.Intent(100, 100, 0, fixedProjector{})
	assert.True(t, in.Skill)
	assert.Equal(t, 30.0, in.TargetX)
	assert.Equal(t, 80.0, in.TargetY)

	assert.False(t, m.Intent(100, 100, 0, fixedProjector{}).Skill)
}

func TestMapper_SystemActions(t *testing.T) {
	m := NewMapper(nil)
	assert.Equal(t, ActionQuit, m.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Equal(t, ActionQuit, m.HandleEvent(key('q')))
	assert.Equal(t, ActionToggleMute, m.HandleEvent(key('m')))
	assert.Equal(t, ActionRestart, m.HandleEvent(key('r')))
	assert.Equal(t, ActionToggleDebug, m.HandleEvent(key('`')))
	assert.Equal(t, ActionToggleDebug, m.HandleEvent(tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone)))
	assert.Equal(t, ActionResize, m.HandleEvent(tcell.NewEventResize(80, 24)))
	assert.Equal(t, ActionNone, m.HandleEvent(key('z')))
}

func TestMapper_Reset(t *testing.T) {
	m := NewMapper(nil)
	m.HandleEvent(key('a'))
	m.HandleEvent(key('1'))
	m.HandleEvent(key(' '))
	m.Reset()
	in := m.Intent(0, 0, 0, nil)
	assert.Zero(t, in.MoveX)
	assert.Equal(t, -1, in.Select)
	assert.False(t, in.Skill)
}
