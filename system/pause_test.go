package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
)

type frozen struct {
	x, y, hp float64
	life     int
}

func capture(w *engine.World) map[core.Entity]frozen {
	out := make(map[core.Entity]frozen)
	w.Enemies.Each(func(e *component.Enemy) bool {
		out[e.Entity] = frozen{e.X, e.Y, e.HP, e.Lifespan}
		return true
	})
	w.Daggers.Each(func(d *component.Dagger) bool {
		out[d.Entity] = frozen{d.X, d.Y, d.Damage, d.Lifespan}
		return true
	})
	w.Bullets.Each(func(b *component.EnemyBullet) bool {
		out[b.Entity] = frozen{b.X, b.Y, b.Damage, b.Lifespan}
		return true
	})
	w.Orbs.Each(func(o *component.ExpOrb) bool {
		out[o.Entity] = frozen{o.X, o.Y, o.Value, 0}
		return true
	})
	w.Bats.Each(func(b *component.Bat) bool {
		out[b.Entity] = frozen{b.X, b.Y, 0, 0}
		return true
	})
	return out
}

func TestPause_SelectionFreezesPools(t *testing.T) {
	w := installedWorld(t, func(c *config.Config) {
		c.Progression.SpawnInterval = 3
	})
	require.True(t, w.GrantWeapon(component.WeaponBats))
	w.Player.HP, w.Player.MaxHP = 1e6, 1e6
	dropOrb(w, 50, 50)

	move := engine.Intent{MoveX: 1, Select: -1}
	for i := 0; i < 120; i++ {
		w.Step(move)
	}
	require.NotZero(t, w.Enemies.Len())

	w.Player.Selecting = component.SelectUpgrade
	w.Player.Options = []component.UpgradeOption{{Kind: component.UpgradeMaxHP, Delta: 1}}
	before := capture(w)
	px, py := w.Player.X, w.Player.Y
	simulated := w.Clock.Simulated()

	for i := 0; i < 60; i++ {
		w.Step(move)
	}
	assert.Equal(t, before, capture(w))
	assert.Equal(t, px, w.Player.X)
	assert.Equal(t, py, w.Player.Y)
	assert.Equal(t, simulated, w.Clock.Simulated())

	w.Step(engine.Intent{MoveX: 1, Select: 0})
	assert.False(t, w.Player.Paused())
	assert.NotEqual(t, px, w.Player.X, "the resuming tick runs the simulation")
}

func TestPause_GridInvariantOverLongRun(t *testing.T) {
	w := installedWorld(t, func(c *config.Config) {
		c.Progression.SpawnInterval = 2
		c.Progression.BossKillThreshold = 15
	})
	for _, k := range []component.WeaponKind{component.WeaponWhip, component.WeaponFlail, component.WeaponBats} {
		require.True(t, w.GrantWeapon(k))
	}
	w.Player.HP, w.Player.MaxHP = 1e9, 1e9

	for i := 0; i < 3000 && w.Session == engine.SessionPlaying; i++ {
		in := engine.Intent{
			MoveX:   float64(i/200%3 - 1),
			MoveY:   float64(i/300%3 - 1),
			Skill:   i%90 == 0,
			TargetX: 0,
			TargetY: 0,
			Select:  -1,
		}
		if w.Player.Paused() {
			in.Select = 0
		}
		w.Step(in)

		if i%50 == 0 {
			require.Empty(t, w.ValidateGrid(), "tick %d", i)
			require.Equal(t, w.Enemies.Len(), w.Grid.Len(), "tick %d", i)
		}
	}
	assert.NotZero(t, w.Player.Kills)
}
