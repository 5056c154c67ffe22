package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// WeaponSystem runs weapon cooldowns and spawns their attacks; hit resolution belongs to CombatSystem
type WeaponSystem struct{}

func NewWeaponSystem(_ *engine.World) *WeaponSystem { return &WeaponSystem{} }

func (s *WeaponSystem) Name() string  { return "weapon" }
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update(w *engine.World) {
	p := w.Player
	if !p.Alive() {
		return
	}

	s.updateSkill(w)

	for slot, wp := range p.Weapons {
		switch wp.Kind {
		case component.WeaponDagger:
			s.updateDagger(w, wp)
		case component.WeaponWhip:
			s.updateWhip(w, wp)
		case component.WeaponFlail:
			s.updateFlail(w, wp)
		case component.WeaponBats:
			s.updateBats(w, slot, wp)
		}
	}
}

func (s *WeaponSystem) updateSkill(w *engine.World) {
	p := w.Player
	sk := p.Skill
	if sk == nil {
		return
	}
	if sk.Timer < sk.Cooldown {
		sk.Timer++
	}
	if !w.Intent.Skill || !sk.Ready() {
		return
	}
	sk.Timer = 0

	sc := w.Config.Skill
	dx, dy := w.Delta(p.X, p.Y, w.Intent.TargetX, w.Intent.TargetY)
	center := vmath.AngleOf(dx, dy, p.Facing)

	angles := []float64{center}
	if sk.Projectiles > 1 {
		step := sc.FanSpread / float64(sk.Projectiles-1)
		start := center - sc.FanSpread/2
		angles = angles[:0]
		for i := 0; i < sk.Projectiles; i++ {
			angles = append(angles, start+float64(i)*step)
		}
	}

	dmg := sk.ProjectileDamage()
	for _, a := range angles {
		w.Storms.Add(&component.Storm{
			Entity:   w.CreateEntity(),
			X:        p.X,
			Y:        p.Y,
			Angle:    a,
			Speed:    sc.Speed,
			Radius:   sc.Radius,
			Damage:   dmg,
			Lifespan: sc.Lifespan,
			Hit:      make(map[core.Entity]struct{}),
		})
	}
	w.Emit(event.EventSkillCast, nil)
}

// updateDagger fires one homing dagger at each of the nearest Shots enemies
// With no enemy alive the launcher holds its charge
func (s *WeaponSystem) updateDagger(w *engine.World, wp *component.Weapon) {
	if wp.Timer < wp.Cooldown {
		wp.Timer++
	}
	if wp.Timer < wp.Cooldown {
		return
	}
	p := w.Player
	targets := w.NearestEnemies(p.X, p.Y, wp.Shots)
	if len(targets) == 0 {
		return
	}
	wp.Timer = 0

	dc := w.Config.Weapons.Dagger
	for _, t := range targets {
		dx, dy := w.Delta(p.X, p.Y, t.X, t.Y)
		w.Daggers.Add(&component.Dagger{
			Entity:   w.CreateEntity(),
			X:        p.X,
			Y:        p.Y,
			Angle:    vmath.AngleOf(dx, dy, 0),
			Speed:    dc.Speed,
			Size:     dc.Size,
			Damage:   wp.Damage,
			Lifespan: dc.Lifespan,
			Target:   t.Entity,
		})
	}
}

// updateWhip starts a swing once the cooldown elapsed and the previous swing finished
// Aim: nearest enemy within the targeting range, else movement direction, else the last swing's centre
func (s *WeaponSystem) updateWhip(w *engine.World, wp *component.Weapon) {
	if wp.Swing != core.EntityNone && !w.Swings.Alive(wp.Swing) {
		wp.Swing = core.EntityNone
	}
	wp.Timer++
	if wp.Timer < wp.Cooldown || wp.Swing != core.EntityNone {
		return
	}

	wc := w.Config.Weapons.Whip
	p := w.Player
	aim := wp.LastAngle
	mx, my := w.Delta(p.PrevX, p.PrevY, p.X, p.Y)
	if e, ok := w.NearestEnemy(p.X, p.Y); ok && w.DistSq(p.X, p.Y, e.X, e.Y) < sq(wp.Reach*wc.TargetRangeFactor) {
		dx, dy := w.Delta(p.X, p.Y, e.X, e.Y)
		aim = vmath.AngleOf(dx, dy, aim)
	} else if mx != 0 || my != 0 {
		aim = math.Atan2(my, mx)
	}

	sw := &component.Swing{
		Entity:         w.CreateEntity(),
		StartAngle:     aim - wc.ArcWidth/2,
		Width:          wc.ArcWidth,
		Reach:          wp.Reach,
		BladeHalfAngle: wc.BladeHalfAngle,
		Damage:         wp.Damage,
		Knockback:      wp.Knockback,
		Duration:       wc.SwingTicks,
		Hit:            make(map[core.Entity]struct{}),
	}
	w.Swings.Add(sw)
	wp.Swing = sw.Entity
	wp.LastAngle = aim
	wp.Timer = 0
	w.Emit(event.EventSwingStarted, nil)
}

// updateFlail spins the head around the player; player motion speeds it up
func (s *WeaponSystem) updateFlail(w *engine.World, wp *component.Weapon) {
	fc := w.Config.Weapons.Flail
	p := w.Player
	mx, my := w.Delta(p.PrevX, p.PrevY, p.X, p.Y)
	wp.SpinNow = wp.Spin
	if mx != 0 || my != 0 {
		wp.SpinNow += math.Abs(mx+my) * fc.MotionFactor
	}
	wp.HeadAngle = vmath.NormalizeAngle(wp.HeadAngle + wp.SpinNow)
	cx, cy := vmath.FromAngle(wp.HeadAngle)
	wp.Head.X, wp.Head.Y = w.Wrap(p.X+wp.Chain*cx, p.Y+wp.Chain*cy)
	wp.Head.Damage = wp.Damage
}

// updateBats summons a bat when below the cap and the summon cooldown elapsed
func (s *WeaponSystem) updateBats(w *engine.World, slot int, wp *component.Weapon) {
	wp.Timer++
	owned := 0
	w.Bats.Each(func(b *component.Bat) bool {
		if b.Owner == slot {
			owned++
		}
		return true
	})
	if owned >= wp.MaxBats || wp.Timer < wp.Cooldown {
		return
	}
	wp.Timer = 0

	bc := w.Config.Weapons.Bats
	p := w.Player
	a := w.Rand.Angle()
	d := w.Rand.Range(p.Size, p.Size+20)
	cx, cy := vmath.FromAngle(a)
	x, y := w.Wrap(p.X+d*cx, p.Y+d*cy)
	bite := component.NewHazard(bc.Radius, wp.Damage, bc.HitInterval)
	bite.X, bite.Y = x, y
	w.Bats.Add(&component.Bat{
		Entity: w.CreateEntity(),
		X:      x,
		Y:      y,
		Speed:  bc.Speed,
		Radius: bc.Radius,
		Owner:  slot,
		Orbit:  a,
		Bite:   bite,
	})
}

func sq(v float64) float64 { return v * v }
