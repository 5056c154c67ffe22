package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/status"
)

func TestEnemy_ChaseWrapsAndStopsAtContact(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	sys := NewEnemySystem(w)
	p := w.Player
	p.X, p.Y = 10, 500

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 900, 500, 10)
	sys.Update(w)
	assert.InDelta(t, 900+e.Speed, e.X, 1e-9, "moves across the seam, not the long way")

	for i := 0; i < 500; i++ {
		sys.Update(w)
	}
	dist := math.Sqrt(w.DistSq(p.X, p.Y, e.X, e.Y))
	assert.LessOrEqual(t, dist, e.Speed+p.Size/2+e.Radius)
	assert.Greater(t, dist, p.Size/2+e.Radius-e.Speed)
	assert.Empty(t, w.ValidateGrid())
}

func TestEnemy_ExpiryIsNotAKill(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	sys := NewEnemySystem(w)
	cull := NewCullSystem(w)

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 100, 100, 10)
	e.Lifespan = 2
	sys.Update(w)
	assert.True(t, w.Enemies.Alive(e.Entity))
	sys.Update(w)
	assert.True(t, e.Expired)
	assert.False(t, w.Enemies.Alive(e.Entity))

	cull.Update(w)
	assert.False(t, w.Grid.Has(e.Entity))
	assert.Zero(t, w.Player.Kills)
	assert.Zero(t, w.Orbs.Len())
	assert.Equal(t, int64(1), w.Status.Ints.Get(status.MetricExpired).Load())
}

func TestEnemy_ExpiredEnemyIgnoredByCombatSameTick(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	enemies := NewEnemySystem(w)
	combat := NewCombatSystem(w)
	cull := NewCullSystem(w)
	p := w.Player
	hp := p.HP

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), p.X+30, p.Y, 10)
	e.Lifespan = 1
	swingAt(w, 0, 1000, 0)

	enemies.Update(w)
	require.True(t, e.Expired)
	assert.False(t, e.Alive())

	combat.Update(w)
	assert.False(t, e.Dead, "an expired enemy cannot take a killing blow")
	assert.Equal(t, hp, p.HP, "an expired enemy deals no contact damage")

	cull.Update(w)
	assert.False(t, w.Enemies.Has(e.Entity))
	assert.Zero(t, p.Kills)
	assert.Zero(t, w.Orbs.Len())
}

func TestEnemy_ShooterFiresAimedBullet(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	sys := NewEnemySystem(w)
	p := w.Player

	e := w.SpawnEnemy(archetype(w, config.ArchetypeShooter), p.X+200, p.Y, 10)
	e.ShootTimer = 0
	sys.Update(w)

	require.Equal(t, 1, w.Bullets.Len())
	w.Bullets.Each(func(b *component.EnemyBullet) bool {
		assert.InDelta(t, math.Pi, math.Abs(b.Angle), 1e-9)
		assert.InDelta(t, e.X-(e.Radius+b.Size), b.X, 1e-9)
		assert.False(t, b.Boss)
		return true
	})
	assert.Equal(t, e.Archetype.ShootCooldown, e.ShootTimer)
}

func TestEnemy_BossSpreadRegenAndMinions(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	sys := NewEnemySystem(w)
	cull := NewCullSystem(w)
	ec := w.Config.Enemy

	boss := w.SpawnEnemy(archetype(w, config.ArchetypeBoss), 200, 200, 10)
	boss.Boss = &component.BossState{MinionTimer: 1, MinionBaseHP: 4, RegenPerTick: 2}
	boss.ShootTimer = 0
	boss.HP = boss.MaxHP - 5

	sys.Update(w)
	assert.Equal(t, boss.MaxHP-3, boss.HP)
	assert.Equal(t, 3, w.Bullets.Len())
	assert.Equal(t, 1+ec.BossMinionCount, w.Enemies.Len())

	gunners, minions := 0, 0
	w.Enemies.Each(func(e *component.Enemy) bool {
		if e.IsBoss() {
			return true
		}
		assert.True(t, e.IsMinion())
		assert.Equal(t, math.Ceil(4*e.Archetype.HPMultiplier), e.MaxHP, "sized from the captured base hp")
		if e.Archetype.Attack != component.AttackNone {
			gunners++
		} else {
			minions++
		}
		return true
	})
	assert.Equal(t, ec.BossGunners, gunners)
	assert.Equal(t, ec.BossMinionCount-ec.BossGunners, minions)
	assert.Equal(t, ec.BossMinionCooldown, boss.Boss.MinionTimer)

	// Minion kills neither count nor drop orbs
	var m *component.Enemy
	w.Enemies.Each(func(e *component.Enemy) bool {
		if e.IsMinion() {
			m = e
			return false
		}
		return true
	})
	require.NotNil(t, m)
	m.TakeDamage(m.HP)
	w.Enemies.Kill(m.Entity)
	cull.Update(w)
	assert.Zero(t, w.Player.Kills)
	assert.Zero(t, w.Orbs.Len())
}

func TestEnemy_HoldArchetypeStaysPut(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, func(c *config.Config) {
		c.Archetypes[0].Movement = component.MoveHold
	})
	sys := NewEnemySystem(w)
	e := w.SpawnEnemy(&w.Config.Archetypes[0], 100, 100, 10)
	sys.Update(w)
	assert.Equal(t, 100.0, e.X)
	assert.Equal(t, 100.0, e.Y)
}
