package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/status"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// EnemySystem advances every enemy: lifespan, movement, ranged attacks and the boss's own timers
type EnemySystem struct {
	minion *component.Archetype
	gunner *component.Archetype

	expired *atomic.Int64
}

func NewEnemySystem(w *engine.World) *EnemySystem {
	ec := w.Config.Enemy
	return &EnemySystem{
		minion:  w.Config.Archetype(ec.MinionArchetype),
		gunner:  w.Config.Archetype(ec.GunnerArchetype),
		expired: w.Status.Ints.Get(status.MetricExpired),
	}
}

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update(w *engine.World) {
	expired := w.Enemies.Advance(func(e *component.Enemy) bool {
		return s.advance(w, e)
	})
	s.expired.Add(int64(len(expired)))
}

// advance runs one enemy for one tick; false despawns it as expired
func (s *EnemySystem) advance(w *engine.World, e *component.Enemy) bool {
	if !e.Alive() {
		return true
	}

	if e.Lifespan != parameter.LifespanInfinite {
		e.Lifespan--
		if e.Lifespan <= 0 {
			e.Expired = true
			return false
		}
	}

	if e.Boss != nil {
		e.HP = math.Min(e.MaxHP, e.HP+e.Boss.RegenPerTick)
		s.minionWave(w, e)
	}

	s.move(w, e)
	s.shoot(w, e)
	return true
}

// move chases the player and stops just short of contact
func (s *EnemySystem) move(w *engine.World, e *component.Enemy) {
	if e.Archetype.Movement != component.MoveChase || e.Speed <= 0 {
		return
	}
	p := w.Player
	dx, dy := w.Delta(e.X, e.Y, p.X, p.Y)
	dist := math.Hypot(dx, dy)
	if dist <= e.Speed+p.Size/2+e.Radius {
		return
	}
	w.MoveEnemy(e, e.X+dx/dist*e.Speed, e.Y+dy/dist*e.Speed)
}

// shoot counts the shooter timer down and fires at the player on expiry
func (s *EnemySystem) shoot(w *engine.World, e *component.Enemy) {
	if e.Archetype.Attack == component.AttackNone {
		return
	}
	if e.ShootTimer > 0 {
		e.ShootTimer--
		return
	}
	e.ShootTimer = e.Archetype.ShootCooldown

	p := w.Player
	dx, dy := w.Delta(e.X, e.Y, p.X, p.Y)
	aim := vmath.AngleOf(dx, dy, 0)
	if e.Archetype.Attack == component.AttackSpread {
		spread := w.Config.Enemy.BossSpread
		for _, a := range [3]float64{aim - spread, aim, aim + spread} {
			s.fire(w, e, a)
		}
		return
	}
	s.fire(w, e, aim)
}

func (s *EnemySystem) fire(w *engine.World, e *component.Enemy, angle float64) {
	ec := w.Config.Enemy
	cx, cy := vmath.FromAngle(angle)
	off := e.Radius + ec.BulletSize
	x, y := w.Wrap(e.X+cx*off, e.Y+cy*off)
	w.Bullets.Add(&component.EnemyBullet{
		Entity:   w.CreateEntity(),
		X:        x,
		Y:        y,
		Angle:    angle,
		Speed:    ec.BulletSpeed,
		Size:     ec.BulletSize,
		Damage:   ec.BulletDamage,
		Lifespan: ec.BulletLifespan,
		Boss:     e.IsBoss(),
	})
}

// minionWave summons a wave around the boss, gunners first, sized from the difficulty captured at boss spawn
func (s *EnemySystem) minionWave(w *engine.World, boss *component.Enemy) {
	bs := boss.Boss
	bs.MinionTimer--
	if bs.MinionTimer > 0 {
		return
	}
	ec := w.Config.Enemy
	bs.MinionTimer = ec.BossMinionCooldown

	for i := 0; i < ec.BossMinionCount; i++ {
		arch := s.minion
		if i < ec.BossGunners && s.gunner != nil {
			arch = s.gunner
		}
		if arch == nil {
			continue
		}
		cx, cy := vmath.FromAngle(w.Rand.Angle())
		off := boss.Radius * 0.5
		m := w.SpawnEnemy(arch, boss.X+cx*off, boss.Y+cy*off, bs.MinionBaseHP)
		if arch.Attack != component.AttackNone {
			m.ShootTimer = w.Rand.Intn(arch.ShootCooldown + 1)
		}
	}
}
