package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// orbitStep is the idle angular speed of a bat circling the player, radians per tick
const orbitStep = 0.05

// AllySystem steers summoned bats: hunt the nearest enemy, otherwise circle the player
type AllySystem struct{}

func NewAllySystem(_ *engine.World) *AllySystem { return &AllySystem{} }

func (s *AllySystem) Name() string  { return "ally" }
func (s *AllySystem) Priority() int { return parameter.PriorityAlly }

func (s *AllySystem) Update(w *engine.World) {
	p := w.Player
	orbit := w.Config.Weapons.Bats.OrbitRadius

	w.Bats.Advance(func(b *component.Bat) bool {
		if b.Target != core.EntityNone {
			if t, ok := w.Enemies.Get(b.Target); !ok || !t.Alive() {
				b.Target = core.EntityNone
			}
		}
		if b.Target == core.EntityNone {
			if e, ok := w.NearestEnemy(b.X, b.Y); ok {
				b.Target = e.Entity
			}
		}

		var tx, ty float64
		if t, ok := w.Enemies.Get(b.Target); ok {
			tx, ty = t.X, t.Y
		} else {
			b.Orbit = vmath.NormalizeAngle(b.Orbit + orbitStep)
			cx, cy := vmath.FromAngle(b.Orbit)
			tx, ty = p.X+cx*orbit, p.Y+cy*orbit
		}

		dx, dy := w.Delta(b.X, b.Y, tx, ty)
		if dist := math.Hypot(dx, dy); dist < b.Speed {
			b.X, b.Y = w.Wrap(tx, ty)
		} else {
			b.X, b.Y = w.Wrap(b.X+dx/dist*b.Speed, b.Y+dy/dist*b.Speed)
		}
		b.Bite.X, b.Bite.Y = b.X, b.Y
		return true
	})
}
