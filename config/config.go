// Package config holds the runtime tuning of a run: defaults from parameter,
// optionally overlaid by a TOML file and SLIME_* environment variables
package config

import (
	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// Archetype names referenced by the boss encounter
const (
	ArchetypeSlime   = "slime"
	ArchetypeMint    = "mint"
	ArchetypeShooter = "shooter"
	ArchetypeMinion  = "minion"
	ArchetypeGunner  = "gunner"
	ArchetypeBoss    = "boss"
)

type Config struct {
	World       WorldConfig           `toml:"world"`
	Grid        GridConfig            `toml:"grid"`
	Tick        TickConfig            `toml:"tick"`
	Player      PlayerConfig          `toml:"player"`
	Enemy       EnemyConfig           `toml:"enemy"`
	Archetypes  []component.Archetype `toml:"archetype"`
	Weapons     WeaponsConfig         `toml:"weapons"`
	Skill       SkillConfig           `toml:"skill"`
	Progression ProgressionConfig     `toml:"progression"`
	Audio       AudioConfig           `toml:"audio"`
}

type WorldConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	ViewportWidth   float64 `toml:"viewport_width"`
	ViewportHeight  float64 `toml:"viewport_height"`
	SpawnEdgeOffset float64 `toml:"spawn_edge_offset"`
}

type GridConfig struct {
	CellSize float64 `toml:"cell_size"`
}

type TickConfig struct {
	Rate int `toml:"rate"`
}

type PlayerConfig struct {
	Size               float64 `toml:"size"`
	Speed              float64 `toml:"speed"`
	HP                 float64 `toml:"hp"`
	ExpToNext          float64 `toml:"exp_to_next"`
	ExpGrowth          float64 `toml:"exp_growth"`
	LevelUpHPBonus     float64 `toml:"level_up_hp_bonus"`
	InvincibilityTicks int     `toml:"invincibility_ticks"`
	RegenPerSecond     float64 `toml:"regen_per_second"`
	HitboxMultiplier   float64 `toml:"hitbox_multiplier"`
	MaxWeaponSlots     int     `toml:"max_weapon_slots"`
	OptionsOffered     int     `toml:"options_offered"`
	StatOptions        int     `toml:"stat_options_per_weapon"`
	FallbackHPBonus    float64 `toml:"fallback_hp_bonus"`
	BossExpMultiplier  float64 `toml:"boss_exp_multiplier"`
}

type EnemyConfig struct {
	BaseRadius    float64 `toml:"base_radius"`
	BaseSpeed     float64 `toml:"base_speed"`
	InitialBaseHP float64 `toml:"initial_base_hp"`

	BulletSpeed    float64 `toml:"bullet_speed"`
	BulletSize     float64 `toml:"bullet_size"`
	BulletLifespan int     `toml:"bullet_lifespan"`
	BulletDamage   float64 `toml:"bullet_damage"`

	BossArchetype      string  `toml:"boss_archetype"`
	MinionArchetype    string  `toml:"minion_archetype"`
	GunnerArchetype    string  `toml:"gunner_archetype"`
	BossRegenPerSecond float64 `toml:"boss_regen_per_second"`
	BossSpread         float64 `toml:"boss_spread"`
	BossMinionCooldown int     `toml:"boss_minion_cooldown"`
	BossMinionCount    int     `toml:"boss_minion_count"`
	BossGunners        int     `toml:"boss_gunners_per_wave"`
	BossOrbCount       int     `toml:"boss_orb_count"`
}

type WeaponsConfig struct {
	Dagger DaggerConfig `toml:"dagger"`
	Whip   WhipConfig   `toml:"whip"`
	Flail  FlailConfig  `toml:"flail"`
	Bats   BatConfig    `toml:"bats"`
}

type DaggerConfig struct {
	Damage       float64 `toml:"damage"`
	Cooldown     int     `toml:"cooldown"`
	Speed        float64 `toml:"speed"`
	Size         float64 `toml:"size"`
	Lifespan     int     `toml:"lifespan"`
	Shots        int     `toml:"shots"`
	DamageGrowth float64 `toml:"damage_growth"`
	CooldownStep int     `toml:"cooldown_step"`
	MinCooldown  int     `toml:"min_cooldown"`
}

type WhipConfig struct {
	Damage            float64 `toml:"damage"`
	Knockback         float64 `toml:"knockback"`
	Reach             float64 `toml:"reach"`
	ArcWidth          float64 `toml:"arc_width"`
	Cooldown          int     `toml:"cooldown"`
	SwingTicks        int     `toml:"swing_ticks"`
	BladeHalfAngle    float64 `toml:"blade_half_angle"`
	TargetRangeFactor float64 `toml:"target_range_factor"`
	DamageStep        float64 `toml:"damage_step"`
	KnockbackStep     float64 `toml:"knockback_step"`
	ReachStep         float64 `toml:"reach_step"`
	CooldownStep      int     `toml:"cooldown_step"`
	MinCooldown       int     `toml:"min_cooldown"`
}

type FlailConfig struct {
	ChainLength  float64 `toml:"chain_length"`
	HeadRadius   float64 `toml:"head_radius"`
	Spin         float64 `toml:"spin"`
	Damage       float64 `toml:"damage"`
	HitInterval  int     `toml:"hit_interval"`
	MotionFactor float64 `toml:"motion_factor"`
	Bounce       float64 `toml:"bounce"`
	DamageGrowth float64 `toml:"damage_growth"`
	ChainStep    float64 `toml:"chain_step"`
	SpinStep     float64 `toml:"spin_step"`
}

type BatConfig struct {
	Damage         float64 `toml:"damage"`
	Lifesteal      float64 `toml:"lifesteal"`
	MaxCount       int     `toml:"max_count"`
	SpawnCooldown  int     `toml:"spawn_cooldown"`
	Speed          float64 `toml:"speed"`
	Radius         float64 `toml:"radius"`
	HitInterval    int     `toml:"hit_interval"`
	OrbitRadius    float64 `toml:"orbit_radius"`
	DamageGrowth   float64 `toml:"damage_growth"`
	MaxCountStep   int     `toml:"max_count_step"`
	LifestealStep  float64 `toml:"lifesteal_step"`
	LifestealLimit float64 `toml:"lifesteal_limit"`
}

type SkillConfig struct {
	BaseDamage   float64 `toml:"base_damage"`
	Cooldown     int     `toml:"cooldown"`
	MinCooldown  int     `toml:"min_cooldown"`
	CooldownStep int     `toml:"cooldown_step"`
	DamageStep   float64 `toml:"damage_step"`
	Speed        float64 `toml:"speed"`
	Radius       float64 `toml:"radius"`
	Lifespan     int     `toml:"lifespan"`
	Projectiles  int     `toml:"projectiles"`
	FanSpread    float64 `toml:"fan_spread"`
}

type ProgressionConfig struct {
	SpawnInterval       int     `toml:"spawn_interval"`
	DifficultyInterval  int     `toml:"difficulty_interval"`
	DifficultyIncrement float64 `toml:"difficulty_increment"`
	BossKillThreshold   int     `toml:"boss_kill_threshold"`
	OrbRadius           float64 `toml:"orb_radius"`
	OrbSpeed            float64 `toml:"orb_speed"`
	OrbValue            float64 `toml:"orb_value"`
	OrbCheckRadius      float64 `toml:"orb_check_radius"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Default builds a config from the parameter constants
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:           parameter.MapWidth,
			Height:          parameter.MapHeight,
			ViewportWidth:   parameter.ViewportWidth,
			ViewportHeight:  parameter.ViewportHeight,
			SpawnEdgeOffset: parameter.SpawnEdgeOffset,
		},
		Grid: GridConfig{CellSize: parameter.GridCellSize},
		Tick: TickConfig{Rate: parameter.TicksPerSecond},
		Player: PlayerConfig{
			Size:               parameter.PlayerSize,
			Speed:              parameter.PlayerSpeed,
			HP:                 parameter.PlayerInitialHP,
			ExpToNext:          parameter.PlayerInitialExpToNext,
			ExpGrowth:          parameter.PlayerExpGrowth,
			LevelUpHPBonus:     parameter.PlayerLevelUpHPBonus,
			InvincibilityTicks: parameter.PlayerInvincibilityTicks,
			RegenPerSecond:     parameter.PlayerRegenFractionPerSecond,
			HitboxMultiplier:   parameter.PlayerDamageHitboxMultiplier,
			MaxWeaponSlots:     parameter.PlayerMaxWeaponSlots,
			OptionsOffered:     parameter.UpgradeOptionsOffered,
			StatOptions:        parameter.UpgradeStatOptionsPerWeapon,
			FallbackHPBonus:    parameter.UpgradeFallbackHPBonus,
			BossExpMultiplier:  parameter.BossKillExpMultiplier,
		},
		Enemy: EnemyConfig{
			BaseRadius:         parameter.SlimeRadius,
			BaseSpeed:          parameter.SlimeSpeed,
			InitialBaseHP:      parameter.SlimeInitialBaseHP,
			BulletSpeed:        parameter.BulletSpeed,
			BulletSize:         parameter.BulletSize,
			BulletLifespan:     parameter.BulletLifespanTicks,
			BulletDamage:       parameter.BulletDamage,
			BossArchetype:      ArchetypeBoss,
			MinionArchetype:    ArchetypeMinion,
			GunnerArchetype:    ArchetypeGunner,
			BossRegenPerSecond: parameter.BossRegenPerSecond,
			BossSpread:         parameter.BossSpreadAngle,
			BossMinionCooldown: parameter.BossMinionCooldown,
			BossMinionCount:    parameter.BossMinionCount,
			BossGunners:        parameter.BossGunnersPerWave,
			BossOrbCount:       parameter.BossOrbCount,
		},
		Archetypes: DefaultArchetypes(),
		Weapons: WeaponsConfig{
			Dagger: DaggerConfig{
				Damage:       parameter.DaggerDamage,
				Cooldown:     parameter.DaggerCooldown,
				Speed:        parameter.DaggerSpeed,
				Size:         parameter.DaggerSize,
				Lifespan:     parameter.DaggerLifespanTicks,
				Shots:        parameter.DaggerInitialShots,
				DamageGrowth: parameter.DaggerDamageGrowth,
				CooldownStep: parameter.DaggerCooldownStep,
				MinCooldown:  parameter.DaggerMinCooldown,
			},
			Whip: WhipConfig{
				Damage:            parameter.WhipDamage,
				Knockback:         parameter.WhipKnockback,
				Reach:             parameter.WhipReach,
				ArcWidth:          parameter.WhipArcWidth,
				Cooldown:          parameter.WhipCooldown,
				SwingTicks:        parameter.WhipSwingTicks,
				BladeHalfAngle:    parameter.WhipBladeHalfAngle,
				TargetRangeFactor: parameter.WhipTargetRangeFactor,
				DamageStep:        parameter.WhipDamageStep,
				KnockbackStep:     parameter.WhipKnockbackStep,
				ReachStep:         parameter.WhipReachStep,
				CooldownStep:      parameter.WhipCooldownStep,
				MinCooldown:       parameter.WhipMinCooldown,
			},
			Flail: FlailConfig{
				ChainLength:  parameter.FlailChainLength,
				HeadRadius:   parameter.FlailHeadRadius,
				Spin:         parameter.FlailRotationSpeed,
				Damage:       parameter.FlailDamage,
				HitInterval:  parameter.FlailHitInterval,
				MotionFactor: parameter.FlailMotionFactor,
				Bounce:       parameter.FlailBounceFactor,
				DamageGrowth: parameter.FlailDamageGrowth,
				ChainStep:    parameter.FlailChainStep,
				SpinStep:     parameter.FlailRotationStep,
			},
			Bats: BatConfig{
				Damage:         parameter.BatDamage,
				Lifesteal:      parameter.BatLifesteal,
				MaxCount:       parameter.BatMaxCount,
				SpawnCooldown:  parameter.BatSpawnCooldown,
				Speed:          parameter.BatSpeed,
				Radius:         parameter.BatRadius,
				HitInterval:    parameter.BatHitInterval,
				OrbitRadius:    parameter.BatOrbitRadius,
				DamageGrowth:   parameter.BatDamageGrowth,
				MaxCountStep:   parameter.BatMaxCountStep,
				LifestealStep:  parameter.BatLifestealStep,
				LifestealLimit: parameter.BatLifestealLimit,
			},
		},
		Skill: SkillConfig{
			BaseDamage:   parameter.StormBaseDamage,
			Cooldown:     parameter.StormCooldown,
			MinCooldown:  parameter.StormMinCooldown,
			CooldownStep: parameter.StormCooldownStep,
			DamageStep:   parameter.StormDamageStep,
			Speed:        parameter.StormSpeed,
			Radius:       parameter.StormRadius,
			Lifespan:     parameter.StormLifespanTicks,
			Projectiles:  parameter.StormInitialProjectile,
			FanSpread:    parameter.StormFanSpread,
		},
		Progression: ProgressionConfig{
			SpawnInterval:       parameter.SpawnIntervalTicks,
			DifficultyInterval:  parameter.DifficultyIntervalTicks,
			DifficultyIncrement: parameter.DifficultyIncrement,
			BossKillThreshold:   parameter.BossKillThreshold,
			OrbRadius:           parameter.OrbRadius,
			OrbSpeed:            parameter.OrbSpeed,
			OrbValue:            parameter.OrbValue,
			OrbCheckRadius:      parameter.OrbExistCheckRadius,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultArchetypes returns the built-in enemy roster
// Boss variants are composed from the same behaviour kinds as regular enemies
func DefaultArchetypes() []component.Archetype {
	slimeDamage := component.DamageFormula{
		Flat:          parameter.SlimeContactDamageFlat,
		MaxHPFraction: parameter.SlimeContactDamageMaxHPFraction,
	}
	return []component.Archetype{
		{
			Name:         ArchetypeSlime,
			HPMultiplier: 1,
			RadiusFactor: 1,
			SpeedFactor:  1,
			Movement:     component.MoveChase,
			Attack:       component.AttackNone,
			Visual:       component.VisualSlime,
			Lifespan:     parameter.SlimeLifespanTicks,
			SpawnWeight:  parameter.WeightSlime,
			Damage:       slimeDamage,
		},
		{
			Name:         ArchetypeMint,
			HPMultiplier: parameter.MintHPMultiplier,
			RadiusFactor: parameter.MintRadiusFactor,
			SpeedFactor:  parameter.MintSpeedFactor,
			Movement:     component.MoveChase,
			Attack:       component.AttackNone,
			Visual:       component.VisualMint,
			Lifespan:     parameter.SlimeLifespanTicks,
			SpawnWeight:  parameter.WeightMint,
			Damage:       slimeDamage,
		},
		{
			Name:          ArchetypeShooter,
			HPMultiplier:  parameter.ShooterHPMultiplier,
			RadiusFactor:  1,
			SpeedFactor:   parameter.ShooterSpeedFactor,
			Movement:      component.MoveChase,
			Attack:        component.AttackAimed,
			Visual:        component.VisualShooter,
			Lifespan:      parameter.SlimeLifespanTicks,
			ShootCooldown: parameter.ShooterShootCooldown,
			SpawnWeight:   parameter.WeightShooter,
			Damage:        slimeDamage,
		},
		{
			Name:         ArchetypeMinion,
			HPMultiplier: parameter.MintHPMultiplier,
			RadiusFactor: parameter.MintRadiusFactor,
			SpeedFactor:  parameter.MintSpeedFactor,
			Movement:     component.MoveChase,
			Attack:       component.AttackNone,
			Visual:       component.VisualMinion,
			Minion:       true,
			Lifespan:     parameter.SlimeLifespanTicks,
			Damage:       slimeDamage,
		},
		{
			Name:          ArchetypeGunner,
			HPMultiplier:  parameter.ShooterHPMultiplier,
			RadiusFactor:  1,
			SpeedFactor:   parameter.ShooterSpeedFactor,
			Movement:      component.MoveChase,
			Attack:        component.AttackAimed,
			Visual:        component.VisualMinion,
			Minion:        true,
			Lifespan:      parameter.SlimeLifespanTicks,
			ShootCooldown: parameter.ShooterShootCooldown,
			Damage:        slimeDamage,
		},
		{
			Name:          ArchetypeBoss,
			HPMultiplier:  parameter.BossHPMultiplier,
			RadiusFactor:  parameter.BossRadiusMultiplier,
			SpeedFactor:   parameter.BossSpeedMultiplier,
			Movement:      component.MoveChase,
			Attack:        component.AttackSpread,
			Visual:        component.VisualBoss,
			Lifespan:      parameter.LifespanInfinite,
			ShootCooldown: parameter.BossShootCooldown,
			Damage:        component.DamageFormula{Flat: parameter.BossContactDamage},
		},
	}
}

// Archetype finds an archetype by name, nil when absent
func (c *Config) Archetype(name string) *component.Archetype {
	for i := range c.Archetypes {
		if c.Archetypes[i].Name == name {
			return &c.Archetypes[i]
		}
	}
	return nil
}

// SpawnTable returns archetypes eligible for timed spawns, in declaration order
func (c *Config) SpawnTable() []*component.Archetype {
	var out []*component.Archetype
	for i := range c.Archetypes {
		a := &c.Archetypes[i]
		if a.SpawnWeight > 0 && !a.Minion {
			out = append(out, a)
		}
	}
	return out
}
