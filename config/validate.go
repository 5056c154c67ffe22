package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-survivor/parameter"
)

// Validate reports every invalid field at once; a world must not be built from a config that fails
func (c *Config) Validate() error {
	var v validator

	v.positive("world.width", c.World.Width)
	v.positive("world.height", c.World.Height)
	v.positive("world.viewport_width", c.World.ViewportWidth)
	v.positive("world.viewport_height", c.World.ViewportHeight)
	v.nonNegative("world.spawn_edge_offset", c.World.SpawnEdgeOffset)
	v.positive("grid.cell_size", c.Grid.CellSize)
	v.positiveInt("tick.rate", c.Tick.Rate)

	p := c.Player
	v.positive("player.size", p.Size)
	v.positive("player.speed", p.Speed)
	v.positive("player.hp", p.HP)
	v.positive("player.exp_to_next", p.ExpToNext)
	v.check(p.ExpGrowth >= 1, "player.exp_growth must be >= 1")
	v.nonNegative("player.level_up_hp_bonus", p.LevelUpHPBonus)
	v.nonNegativeInt("player.invincibility_ticks", p.InvincibilityTicks)
	v.nonNegative("player.regen_per_second", p.RegenPerSecond)
	v.positive("player.hitbox_multiplier", p.HitboxMultiplier)
	v.positiveInt("player.max_weapon_slots", p.MaxWeaponSlots)
	v.positiveInt("player.options_offered", p.OptionsOffered)
	v.positiveInt("player.stat_options_per_weapon", p.StatOptions)
	v.positive("player.boss_exp_multiplier", p.BossExpMultiplier)

	e := c.Enemy
	v.positive("enemy.base_radius", e.BaseRadius)
	v.nonNegative("enemy.base_speed", e.BaseSpeed)
	v.positive("enemy.initial_base_hp", e.InitialBaseHP)
	v.nonNegative("enemy.bullet_speed", e.BulletSpeed)
	v.positive("enemy.bullet_size", e.BulletSize)
	v.positiveInt("enemy.bullet_lifespan", e.BulletLifespan)
	v.nonNegative("enemy.bullet_damage", e.BulletDamage)
	v.nonNegative("enemy.boss_regen_per_second", e.BossRegenPerSecond)
	v.positiveInt("enemy.boss_minion_cooldown", e.BossMinionCooldown)
	v.nonNegativeInt("enemy.boss_minion_count", e.BossMinionCount)
	v.nonNegativeInt("enemy.boss_gunners_per_wave", e.BossGunners)
	v.nonNegativeInt("enemy.boss_orb_count", e.BossOrbCount)

	seen := make(map[string]bool, len(c.Archetypes))
	for _, a := range c.Archetypes {
		key := "archetype." + a.Name
		v.check(a.Name != "", "archetype with empty name")
		v.check(!seen[a.Name], "duplicate archetype %q", a.Name)
		seen[a.Name] = true
		v.positive(key+".hp_multiplier", a.HPMultiplier)
		v.positive(key+".radius_factor", a.RadiusFactor)
		v.nonNegative(key+".speed_factor", a.SpeedFactor)
		v.nonNegativeInt(key+".spawn_weight", a.SpawnWeight)
		v.check(a.Lifespan > 0 || a.Lifespan == parameter.LifespanInfinite,
			"%s.lifespan must be positive or %d", key, parameter.LifespanInfinite)
		v.nonNegative(key+".damage.flat", a.Damage.Flat)
		v.nonNegative(key+".damage.max_hp_fraction", a.Damage.MaxHPFraction)
		if a.Attack != 0 {
			v.positiveInt(key+".shoot_cooldown", a.ShootCooldown)
		}
	}
	for _, name := range []string{e.BossArchetype, e.MinionArchetype, e.GunnerArchetype} {
		v.check(seen[name], "enemy references unknown archetype %q", name)
	}
	v.check(len(c.SpawnTable()) > 0, "no archetype has a positive spawn_weight")

	w := c.Weapons
	v.positive("weapons.dagger.damage", w.Dagger.Damage)
	v.positiveInt("weapons.dagger.cooldown", w.Dagger.Cooldown)
	v.positive("weapons.dagger.speed", w.Dagger.Speed)
	v.positive("weapons.dagger.size", w.Dagger.Size)
	v.positiveInt("weapons.dagger.lifespan", w.Dagger.Lifespan)
	v.positiveInt("weapons.dagger.shots", w.Dagger.Shots)
	v.positiveInt("weapons.dagger.min_cooldown", w.Dagger.MinCooldown)

	v.positive("weapons.whip.damage", w.Whip.Damage)
	v.positive("weapons.whip.reach", w.Whip.Reach)
	v.positive("weapons.whip.arc_width", w.Whip.ArcWidth)
	v.positiveInt("weapons.whip.cooldown", w.Whip.Cooldown)
	v.positiveInt("weapons.whip.swing_ticks", w.Whip.SwingTicks)
	v.positive("weapons.whip.blade_half_angle", w.Whip.BladeHalfAngle)
	v.positiveInt("weapons.whip.min_cooldown", w.Whip.MinCooldown)

	v.positive("weapons.flail.chain_length", w.Flail.ChainLength)
	v.positive("weapons.flail.head_radius", w.Flail.HeadRadius)
	v.positive("weapons.flail.damage", w.Flail.Damage)
	v.positiveInt("weapons.flail.hit_interval", w.Flail.HitInterval)

	v.positive("weapons.bats.damage", w.Bats.Damage)
	v.positiveInt("weapons.bats.max_count", w.Bats.MaxCount)
	v.positiveInt("weapons.bats.spawn_cooldown", w.Bats.SpawnCooldown)
	v.positive("weapons.bats.radius", w.Bats.Radius)
	v.positiveInt("weapons.bats.hit_interval", w.Bats.HitInterval)
	v.check(w.Bats.Lifesteal >= 0 && w.Bats.Lifesteal <= w.Bats.LifestealLimit,
		"weapons.bats.lifesteal must be within [0, lifesteal_limit]")

	s := c.Skill
	v.positive("skill.base_damage", s.BaseDamage)
	v.positiveInt("skill.cooldown", s.Cooldown)
	v.positiveInt("skill.min_cooldown", s.MinCooldown)
	v.positive("skill.speed", s.Speed)
	v.positive("skill.radius", s.Radius)
	v.positiveInt("skill.lifespan", s.Lifespan)
	v.positiveInt("skill.projectiles", s.Projectiles)

	g := c.Progression
	v.positiveInt("progression.spawn_interval", g.SpawnInterval)
	v.positiveInt("progression.difficulty_interval", g.DifficultyInterval)
	v.nonNegative("progression.difficulty_increment", g.DifficultyIncrement)
	v.positiveInt("progression.boss_kill_threshold", g.BossKillThreshold)
	v.positive("progression.orb_radius", g.OrbRadius)
	v.positive("progression.orb_speed", g.OrbSpeed)
	v.nonNegative("progression.orb_check_radius", g.OrbCheckRadius)

	v.check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1]")
	if c.Audio.Enabled {
		v.positiveInt("audio.sample_rate", c.Audio.SampleRate)
	}

	return v.err()
}

type validator struct {
	problems []string
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.problems = append(v.problems, fmt.Sprintf(format, args...))
	}
}

func (v *validator) positive(name string, f float64) {
	v.check(f > 0, "%s must be > 0, got %g", name, f)
}

func (v *validator) nonNegative(name string, f float64) {
	v.check(f >= 0, "%s must be >= 0, got %g", name, f)
}

func (v *validator) positiveInt(name string, n int) {
	v.check(n > 0, "%s must be > 0, got %d", name, n)
}

func (v *validator) nonNegativeInt(name string, n int) {
	v.check(n >= 0, "%s must be >= 0, got %d", name, n)
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return errors.Errorf("invalid config: %s", strings.Join(v.problems, "; "))
}
