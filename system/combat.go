package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/status"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// CombatSystem resolves every interaction of the tick in a fixed order:
// player weapons vs enemies, player weapons vs bullets, bullets vs player,
// enemy contact vs player, orbs vs player. Killed enemies are only marked;
// CullSystem removes them
type CombatSystem struct {
	near []*component.Enemy
	hits []swingHit

	statHits       *atomic.Int64
	statPlayerHits *atomic.Int64
	statBullets    *atomic.Int64
}

type swingHit struct {
	e      *component.Enemy
	dx, dy float64
	dist   float64
}

func NewCombatSystem(w *engine.World) *CombatSystem {
	return &CombatSystem{
		statHits:       w.Status.Ints.Get(status.MetricCombatHits),
		statPlayerHits: w.Status.Ints.Get(status.MetricPlayerHits),
		statBullets:    w.Status.Ints.Get(status.MetricBulletsKilled),
	}
}

func (s *CombatSystem) Name() string  { return "combat" }
func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) Update(w *engine.World) {
	if !w.Player.Alive() {
		return
	}

	// Player weapons vs enemies
	w.Swings.Each(func(sw *component.Swing) bool {
		s.resolveSwing(w, sw)
		return true
	})
	w.Daggers.Each(func(d *component.Dagger) bool {
		s.resolveDagger(w, d)
		return true
	})
	w.Storms.Each(func(st *component.Storm) bool {
		s.resolveStorm(w, st)
		return true
	})
	for _, wp := range w.Player.Weapons {
		if wp.Kind == component.WeaponFlail && wp.Head != nil {
			s.resolveFlail(w, wp)
		}
	}
	s.resolveBats(w)

	// Player weapons vs enemy bullets
	s.shieldBullets(w)

	// Swings advance after both blade tests used this tick's angle
	w.Swings.Each(func(sw *component.Swing) bool {
		sw.Elapsed++
		if !sw.Active() {
			w.Swings.Kill(sw.Entity)
		}
		return true
	})

	s.bulletsVsPlayer(w)
	s.contactVsPlayer(w)
	s.collectOrbs(w)
}

// damage applies a hit and marks the enemy for removal on the killing blow
func (s *CombatSystem) damage(w *engine.World, e *component.Enemy, amount float64) bool {
	s.statHits.Add(1)
	if e.TakeDamage(amount) {
		w.Enemies.Kill(e.Entity)
		return true
	}
	return false
}

// resolveSwing tests the blade for this tick against every nearby enemy not yet struck by this swing
// All hits are gathered before any damage or knockback applies
func (s *CombatSystem) resolveSwing(w *engine.World, sw *component.Swing) {
	if !sw.Active() {
		return
	}
	p := w.Player
	bx, by := vmath.FromAngle(sw.BladeAngle())
	cosHalf := math.Cos(sw.EffectiveHalfAngle())

	s.hits = s.hits[:0]
	s.near = w.NearbyEnemies(s.near[:0], p.X, p.Y, sw.Reach)
	for _, e := range s.near {
		if _, done := sw.Hit[e.Entity]; done {
			continue
		}
		dx, dy := w.Delta(p.X, p.Y, e.X, e.Y)
		distSq := dx*dx + dy*dy
		if distSq > sq(sw.Reach+e.Radius) {
			continue
		}
		dist := math.Sqrt(distSq)
		if dist > 0 && vmath.Dot(dx/dist, dy/dist, bx, by) < cosHalf {
			continue
		}
		s.hits = append(s.hits, swingHit{e: e, dx: dx, dy: dy, dist: dist})
	}

	for _, h := range s.hits {
		sw.Hit[h.e.Entity] = struct{}{}
		if s.damage(w, h.e, sw.Damage) || sw.Knockback == 0 {
			continue
		}
		kx, ky := bx, by
		if h.dist > 0 {
			kx, ky = h.dx/h.dist, h.dy/h.dist
		}
		w.MoveEnemy(h.e, h.e.X+kx*sw.Knockback, h.e.Y+ky*sw.Knockback)
	}
}

// resolveDagger strikes the first enemy the dagger overlaps and spends it
func (s *CombatSystem) resolveDagger(w *engine.World, d *component.Dagger) {
	if d.Spent {
		return
	}
	s.near = w.NearbyEnemies(s.near[:0], d.X, d.Y, d.Size/2)
	for _, e := range s.near {
		if !e.Alive() || w.DistSq(d.X, d.Y, e.X, e.Y) >= sq(d.Size/2+e.Radius) {
			continue
		}
		s.damage(w, e, d.Damage)
		d.Spent = true
		w.Daggers.Kill(d.Entity)
		return
	}
}

// resolveStorm pierces: every overlapped enemy takes damage once per bolt
func (s *CombatSystem) resolveStorm(w *engine.World, st *component.Storm) {
	s.near = w.NearbyEnemies(s.near[:0], st.X, st.Y, st.Radius)
	for _, e := range s.near {
		if _, done := st.Hit[e.Entity]; done || !e.Alive() {
			continue
		}
		if w.DistSq(st.X, st.Y, e.X, e.Y) >= sq(st.Radius+e.Radius) {
			continue
		}
		st.Hit[e.Entity] = struct{}{}
		s.damage(w, e, st.Damage)
	}
}

// resolveFlail ticks the head's cooldowns, then lands at most one hit and bounces the head off it
func (s *CombatSystem) resolveFlail(w *engine.World, wp *component.Weapon) {
	head := wp.Head
	head.Tick()
	s.near = w.NearbyEnemies(s.near[:0], head.X, head.Y, head.Radius)
	for _, e := range s.near {
		if !e.Alive() || !head.Ready(e.Entity) {
			continue
		}
		if w.DistSq(head.X, head.Y, e.X, e.Y) >= sq(head.Radius+e.Radius) {
			continue
		}
		if s.damage(w, e, head.Damage) {
			head.Forget(e.Entity)
		} else {
			head.Arm(e.Entity)
		}
		dx, dy := w.Delta(head.X, head.Y, e.X, e.Y)
		wp.HeadAngle = vmath.NormalizeAngle(math.Atan2(dy, dx) + math.Pi)
		wp.SpinNow *= w.Config.Weapons.Flail.Bounce
		return
	}
}

// resolveBats runs each bat's bite hazard; bites heal the player by the owner's lifesteal
func (s *CombatSystem) resolveBats(w *engine.World) {
	p := w.Player
	w.Bats.Each(func(b *component.Bat) bool {
		bite := b.Bite
		bite.Tick()
		var lifesteal float64
		if b.Owner < len(p.Weapons) {
			owner := p.Weapons[b.Owner]
			bite.Damage = owner.Damage
			lifesteal = owner.Lifesteal
		}
		s.near = w.NearbyEnemies(s.near[:0], bite.X, bite.Y, bite.Radius)
		for _, e := range s.near {
			if !e.Alive() || !bite.Ready(e.Entity) {
				continue
			}
			if w.DistSq(bite.X, bite.Y, e.X, e.Y) >= sq(bite.Radius+e.Radius) {
				continue
			}
			bite.Arm(e.Entity)
			s.damage(w, e, bite.Damage)
			p.Heal(math.Ceil(bite.Damage * lifesteal))
			if b.Target == e.Entity && !e.Alive() {
				b.Target = core.EntityNone
			}
		}
		return true
	})
}

// shieldBullets lets player attacks destroy the enemy bullets they intersect
func (s *CombatSystem) shieldBullets(w *engine.World) {
	if w.Bullets.Len() == 0 {
		return
	}
	p := w.Player
	w.Bullets.Each(func(b *component.EnemyBullet) bool {
		if b.Destroyed {
			return true
		}
		hit := false

		w.Swings.Each(func(sw *component.Swing) bool {
			if !sw.Active() {
				return true
			}
			dx, dy := w.Delta(p.X, p.Y, b.X, b.Y)
			distSq := dx*dx + dy*dy
			if distSq > sq(sw.Reach+b.Size) {
				return true
			}
			bx, by := vmath.FromAngle(sw.BladeAngle())
			if dist := math.Sqrt(distSq); dist == 0 || vmath.Dot(dx/dist, dy/dist, bx, by) >= math.Cos(sw.EffectiveHalfAngle()) {
				hit = true
				return false
			}
			return true
		})

		if !hit {
			w.Daggers.Each(func(d *component.Dagger) bool {
				if d.Spent || w.DistSq(d.X, d.Y, b.X, b.Y) >= sq(d.Size/2+b.Size/2) {
					return true
				}
				d.Spent = true
				w.Daggers.Kill(d.Entity)
				hit = true
				return false
			})
		}

		if !hit {
			for _, wp := range p.Weapons {
				if wp.Head != nil && w.DistSq(wp.Head.X, wp.Head.Y, b.X, b.Y) < sq(wp.Head.Radius+b.Size) {
					hit = true
					break
				}
			}
		}

		if hit {
			b.Destroyed = true
			w.Bullets.Kill(b.Entity)
			s.statBullets.Add(1)
		}
		return true
	})
}

// bulletsVsPlayer consumes every bullet touching the player, invincible or not
func (s *CombatSystem) bulletsVsPlayer(w *engine.World) {
	p := w.Player
	window := w.Config.Player.InvincibilityTicks
	w.Bullets.Each(func(b *component.EnemyBullet) bool {
		if b.Destroyed || w.DistSq(p.X, p.Y, b.X, b.Y) >= sq(p.Size/2+b.Size/2) {
			return true
		}
		b.Destroyed = true
		w.Bullets.Kill(b.Entity)
		s.hurt(w, b.Damage, window)
		return p.Alive()
	})
}

// contactVsPlayer applies body damage from every overlapping live enemy; the invincibility
// window makes all but the first ignored
func (s *CombatSystem) contactVsPlayer(w *engine.World) {
	p := w.Player
	pc := w.Config.Player
	reach := p.Size / 2 * pc.HitboxMultiplier
	s.near = w.NearbyEnemies(s.near[:0], p.X, p.Y, reach)
	for _, e := range s.near {
		if !p.Alive() {
			return
		}
		if !e.Alive() || w.DistSq(p.X, p.Y, e.X, e.Y) >= sq(reach+e.Radius) {
			continue
		}
		s.hurt(w, e.ContactDamage, pc.InvincibilityTicks)
	}
}

func (s *CombatSystem) hurt(w *engine.World, amount float64, window int) {
	p := w.Player
	if !p.TakeDamage(amount, window) {
		return
	}
	s.statPlayerHits.Add(1)
	w.Emit(event.EventPlayerHit, &event.HitPayload{Damage: amount, HP: p.HP})
}

// collectOrbs credits exp for every orb touching the player
func (s *CombatSystem) collectOrbs(w *engine.World) {
	p := w.Player
	w.Orbs.Each(func(o *component.ExpOrb) bool {
		if o.Consumed || w.DistSq(p.X, p.Y, o.X, o.Y) >= sq(o.Radius+p.Size/2) {
			return true
		}
		o.Consumed = true
		w.Orbs.Kill(o.Entity)
		p.Exp += o.Value * p.ExpMultiplier
		w.Emit(event.EventPickupCollected, nil)
		return true
	})
}
