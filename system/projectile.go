package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// ProjectileSystem moves daggers, storm bolts and enemy bullets and ages them out
type ProjectileSystem struct{}

func NewProjectileSystem(_ *engine.World) *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Name() string  { return "projectile" }
func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Update(w *engine.World) {
	w.Daggers.Advance(func(d *component.Dagger) bool {
		return s.dagger(w, d)
	})
	w.Storms.Advance(func(st *component.Storm) bool {
		if st.Lifespan--; st.Lifespan <= 0 {
			return false
		}
		st.X, st.Y = step(w, st.X, st.Y, st.Angle, st.Speed)
		return true
	})
	w.Bullets.Advance(func(b *component.EnemyBullet) bool {
		if b.Destroyed {
			return false
		}
		if b.Lifespan--; b.Lifespan <= 0 {
			return false
		}
		b.X, b.Y = step(w, b.X, b.Y, b.Angle, b.Speed)
		return true
	})
}

// dagger homes on its target while the reference resolves; a lost target leaves it flying straight
func (s *ProjectileSystem) dagger(w *engine.World, d *component.Dagger) bool {
	if d.Spent {
		return false
	}
	if d.Lifespan--; d.Lifespan <= 0 {
		return false
	}

	if d.Target != core.EntityNone {
		t, ok := w.Enemies.Get(d.Target)
		if !ok || !t.Alive() {
			d.Target = core.EntityNone
		} else {
			dx, dy := w.Delta(d.X, d.Y, t.X, t.Y)
			if math.Hypot(dx, dy) < d.Speed {
				d.X, d.Y = t.X, t.Y
				return true
			}
			d.Angle = math.Atan2(dy, dx)
		}
	}
	d.X, d.Y = step(w, d.X, d.Y, d.Angle, d.Speed)
	return true
}

// step moves a point speed units along angle and wraps it
func step(w *engine.World, x, y, angle, speed float64) (float64, float64) {
	cx, cy := vmath.FromAngle(angle)
	return w.Wrap(x+cx*speed, y+cy*speed)
}
