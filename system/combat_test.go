package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
)

func TestCombat_SwingHitsStationaryEnemyOnce(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	cull := NewCullSystem(w)
	p := w.Player

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), p.X+60, p.Y, 1000)
	sw := swingAt(w, 0, 7, 0)

	for i := 0; i < sw.Duration+5; i++ {
		combat.Update(w)
		cull.Update(w)
	}

	assert.Equal(t, 993.0, e.HP)
	assert.False(t, w.Swings.Has(sw.Entity), "finished swing is compacted")
}

func TestCombat_SwingSweepsWholeArc(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	p := w.Player
	slime := archetype(w, config.ArchetypeSlime)

	// Spread enemies across the arc, one just outside it
	var inside []*component.Enemy
	for _, a := range []float64{-1.5, -0.7, 0, 0.9, 1.5} {
		inside = append(inside, w.SpawnEnemy(slime, p.X+80*math.Cos(a), p.Y+80*math.Sin(a), 100))
	}
	behind := w.SpawnEnemy(slime, p.X-80, p.Y, 100)

	sw := swingAt(w, 0, 1, 0)
	for i := 0; i < sw.Duration; i++ {
		combat.Update(w)
	}

	for _, e := range inside {
		assert.Equal(t, e.MaxHP-1, e.HP)
	}
	assert.Equal(t, behind.MaxHP, behind.HP)
}

func TestCombat_SwingKnockbackRefilesGrid(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	p := w.Player

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), p.X+90, p.Y, 1000)
	sw := swingAt(w, 0, 1, 45)
	for i := 0; i < sw.Duration; i++ {
		combat.Update(w)
	}

	assert.InDelta(t, p.X+135, e.X, 1e-9)
	assert.Empty(t, w.ValidateGrid())
}

func TestCombat_SwingKillDropsOrb(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	cull := NewCullSystem(w)
	p := w.Player

	e := w.SpawnEnemy(archetype(w, config.ArchetypeMint), p.X+50, p.Y+5, 100)
	require.Equal(t, 50.0, e.MaxHP)
	sw := swingAt(w, 0, 60, 30)

	for i := 0; i < sw.Duration && !e.Dead; i++ {
		combat.Update(w)
	}
	assert.Zero(t, e.HP)
	assert.True(t, e.Dead)
	assert.True(t, w.Enemies.Has(e.Entity), "still pooled until compaction")
	assert.False(t, w.Enemies.Alive(e.Entity))

	cull.Update(w)
	assert.False(t, w.Enemies.Has(e.Entity))
	assert.False(t, w.Grid.Has(e.Entity))
	assert.Equal(t, 1, p.Kills)
	require.Equal(t, 1, w.Orbs.Len())
	w.Orbs.Each(func(o *component.ExpOrb) bool {
		assert.Equal(t, e.X, o.X)
		assert.Equal(t, e.Y, o.Y)
		return true
	})

	var killed bool
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventEnemyKilled {
			killed = true
		}
	}
	assert.True(t, killed)
}

func TestCombat_OrbSuppressedNearExistingOrb(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	cull := NewCullSystem(w)

	dropOrb(w, 100, 100)
	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 105, 100, 1)
	e.TakeDamage(e.HP)
	w.Enemies.Kill(e.Entity)
	cull.Update(w)

	assert.Equal(t, 1, w.Orbs.Len())
	assert.Equal(t, 1, w.Player.Kills)
}

func TestCombat_FlailHazardInterval(t *testing.T) {
	for _, k := range []int{0, 1, 7} {
		w := engine.NewTestWorld(1000, 1000, nil)
		require.True(t, w.GrantWeapon(component.WeaponFlail))
		combat := NewCombatSystem(w)
		flail := w.Player.Weapons[1]
		interval := flail.Head.Interval

		// Keep the head parked on a far-away enemy so only the hazard matters
		e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 100, 100, 10000)
		flail.Head.X, flail.Head.Y = e.X, e.Y

		const n = 4
		for i := 0; i < n*interval+k; i++ {
			combat.Update(w)
		}

		hits := int(math.Round((e.MaxHP - e.HP) / flail.Damage))
		assert.GreaterOrEqual(t, hits, n, "k=%d", k)
		assert.LessOrEqual(t, hits, n+1, "k=%d", k)
	}
}

func TestCombat_FlailBouncesOffHit(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	require.True(t, w.GrantWeapon(component.WeaponFlail))
	combat := NewCombatSystem(w)
	flail := w.Player.Weapons[1]
	flail.SpinNow = 0.1

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 110, 100, 10000)
	flail.Head.X, flail.Head.Y = 100, 100

	combat.Update(w)
	assert.InDelta(t, math.Pi, flail.HeadAngle, 1e-9)
	assert.InDelta(t, 0.1*w.Config.Weapons.Flail.Bounce, flail.SpinNow, 1e-12)
	assert.Less(t, e.HP, e.MaxHP)
}

func TestCombat_DaggerSpentOnImpact(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)

	a := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 200, 200, 100)
	b := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 205, 200, 100)
	d := &component.Dagger{Entity: w.CreateEntity(), X: 202, Y: 200, Size: 12, Damage: 10, Lifespan: 10}
	w.Daggers.Add(d)

	combat.Update(w)
	assert.True(t, d.Spent)
	assert.False(t, w.Daggers.Alive(d.Entity))
	assert.Equal(t, 10.0, (a.MaxHP-a.HP)+(b.MaxHP-b.HP), "only one enemy struck")
}

func TestCombat_StormPiercesOncePerEnemy(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 200, 200, 1000)
	st := &component.Storm{Entity: w.CreateEntity(), X: 200, Y: 200, Radius: 40, Damage: 20, Lifespan: 10, Hit: make(map[core.Entity]struct{})}
	w.Storms.Add(st)

	combat.Update(w)
	combat.Update(w)
	assert.Equal(t, e.MaxHP-20, e.HP)
	assert.True(t, w.Storms.Alive(st.Entity), "storm bolts pierce")
}

func TestCombat_BulletConsumedWhileInvincible(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	p := w.Player
	p.Invincible = 30

	b := &component.EnemyBullet{Entity: w.CreateEntity(), X: p.X + 5, Y: p.Y, Size: 10, Damage: 10, Lifespan: 10}
	w.Bullets.Add(b)

	combat.Update(w)
	assert.True(t, b.Destroyed)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestCombat_InvincibilityIgnoresSimultaneousSources(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	p := w.Player
	slime := archetype(w, config.ArchetypeSlime)

	first := w.SpawnEnemy(slime, p.X+5, p.Y, 10)
	w.SpawnEnemy(slime, p.X-5, p.Y, 10)
	w.SpawnEnemy(slime, p.X, p.Y+5, 10)

	combat.Update(w)
	assert.Equal(t, p.MaxHP-first.ContactDamage, p.HP)
	assert.Equal(t, w.Config.Player.InvincibilityTicks, p.Invincible)
}

func TestCombat_DaggerDestroysBullet(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)

	b := &component.EnemyBullet{Entity: w.CreateEntity(), X: 300, Y: 300, Size: 10, Damage: 10, Lifespan: 10}
	d := &component.Dagger{Entity: w.CreateEntity(), X: 303, Y: 300, Size: 12, Damage: 10, Lifespan: 10}
	w.Bullets.Add(b)
	w.Daggers.Add(d)

	combat.Update(w)
	assert.True(t, b.Destroyed)
	assert.True(t, d.Spent)
}

func TestCombat_BatBiteHealsByLifesteal(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	require.True(t, w.GrantWeapon(component.WeaponBats))
	combat := NewCombatSystem(w)
	p := w.Player
	p.HP = 50
	bats := p.Weapons[1]
	bats.Lifesteal = 0.5

	e := w.SpawnEnemy(archetype(w, config.ArchetypeSlime), 400, 400, 1000)
	bite := component.NewHazard(8, 0, 30)
	bite.X, bite.Y = 400, 400
	w.Bats.Add(&component.Bat{Entity: w.CreateEntity(), X: 400, Y: 400, Owner: 1, Bite: bite})

	combat.Update(w)
	assert.Equal(t, e.MaxHP-bats.Damage, e.HP)
	assert.Equal(t, 50+math.Ceil(bats.Damage*0.5), p.HP)
}

func TestCombat_OrbCollectedWithMultiplier(t *testing.T) {
	w := engine.NewTestWorld(1000, 1000, nil)
	combat := NewCombatSystem(w)
	p := w.Player
	p.ExpMultiplier = 1.5

	dropOrb(w, p.X+3, p.Y)
	combat.Update(w)
	assert.Equal(t, 1.5*w.Config.Progression.OrbValue, p.Exp)
	assert.Zero(t, w.Orbs.Len())
}
