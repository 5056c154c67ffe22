package engine

import "github.com/lixenwraith/slime-survivor/component"

// Category tags an entity view for the renderer
type Category uint8

const (
	CategoryEnemy Category = iota
	CategoryDagger
	CategoryStorm
	CategoryBullet
	CategoryOrb
	CategoryBat
	CategorySwing
	CategoryFlail
)

// EntityView is the read-only shape of one pooled entity
type EntityView struct {
	Category Category
	X, Y     float64
	Radius   float64
	HPRatio  float64
	// Angle is heading for projectiles and blade direction for swings
	Angle float64
	// Arc is the swing width, zero otherwise
	Arc    float64
	Visual component.VisualTag
	Boss   bool
}

// StatView is one key stat of a weapon summary
type StatView struct {
	Name  string
	Value float64
}

// WeaponView summarizes an owned weapon
type WeaponView struct {
	Name  string
	Level int
	Stats []StatView
}

// HUD is the progression/UI surface
type HUD struct {
	Level     int
	Exp       float64
	ExpToNext float64
	HP        float64
	MaxHP     float64

	Weapons    []WeaponView
	Difficulty float64
	BaseHP     float64
	Kills      int
	BossKills  int

	Selecting component.Selection
	Options   []component.UpgradeOption

	HasSkill   bool
	SkillLevel int
	// SkillCharge in [0,1], 1 when ready
	SkillCharge float64

	Phase           string
	SurvivalSeconds float64
	Metrics         []string
}

// Snapshot is everything presentation reads after a tick
type Snapshot struct {
	Tick    uint64
	Session SessionState

	PlayerX, PlayerY float64
	PlayerSize       float64
	Facing           float64
	Invincible       bool

	Entities []EntityView
	HUD      HUD
}

// Snapshot copies the post-compaction state; the result shares nothing mutable with the world
func (w *World) Snapshot() Snapshot {
	p := w.Player
	s := Snapshot{
		Tick:       w.Clock.Tick(),
		Session:    w.Session,
		PlayerX:    p.X,
		PlayerY:    p.Y,
		PlayerSize: p.Size,
		Facing:     p.Facing,
		Invincible: p.Invincible > 0,
	}

	s.Entities = make([]EntityView, 0, w.Enemies.Len()+w.Daggers.Len()+w.Bullets.Len()+w.Orbs.Len()+8)
	w.Enemies.Each(func(e *component.Enemy) bool {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryEnemy, X: e.X, Y: e.Y, Radius: e.Radius,
			HPRatio: e.HPRatio(), Visual: e.Archetype.Visual, Boss: e.IsBoss(),
		})
		return true
	})
	w.Daggers.Each(func(d *component.Dagger) bool {
		s.Entities = append(s.Entities, EntityView{Category: CategoryDagger, X: d.X, Y: d.Y, Radius: d.Size / 2, Angle: d.Angle})
		return true
	})
	w.Storms.Each(func(st *component.Storm) bool {
		s.Entities = append(s.Entities, EntityView{Category: CategoryStorm, X: st.X, Y: st.Y, Radius: st.Radius, Angle: st.Angle})
		return true
	})
	w.Bullets.Each(func(b *component.EnemyBullet) bool {
		s.Entities = append(s.Entities, EntityView{Category: CategoryBullet, X: b.X, Y: b.Y, Radius: b.Size / 2, Angle: b.Angle, Boss: b.Boss})
		return true
	})
	w.Orbs.Each(func(o *component.ExpOrb) bool {
		s.Entities = append(s.Entities, EntityView{Category: CategoryOrb, X: o.X, Y: o.Y, Radius: o.Radius})
		return true
	})
	w.Bats.Each(func(b *component.Bat) bool {
		s.Entities = append(s.Entities, EntityView{Category: CategoryBat, X: b.X, Y: b.Y, Radius: b.Radius})
		return true
	})
	w.Swings.Each(func(sw *component.Swing) bool {
		s.Entities = append(s.Entities, EntityView{
			Category: CategorySwing, X: p.X, Y: p.Y, Radius: sw.Reach,
			Angle: sw.BladeAngle(), Arc: sw.Width,
		})
		return true
	})
	for _, wp := range p.Weapons {
		if wp.Head != nil {
			s.Entities = append(s.Entities, EntityView{Category: CategoryFlail, X: wp.Head.X, Y: wp.Head.Y, Radius: wp.Head.Radius, Angle: wp.HeadAngle})
		}
	}

	h := &s.HUD
	h.Level = p.Level
	h.Exp = p.Exp
	h.ExpToNext = p.ExpToNext
	h.HP = p.HP
	h.MaxHP = p.MaxHP
	h.Difficulty = w.Difficulty()
	h.BaseHP = w.Progress.BaseHP
	h.Kills = p.Kills
	h.BossKills = p.BossKills
	h.Selecting = p.Selecting
	h.Options = append([]component.UpgradeOption(nil), p.Options...)
	h.Phase = w.Progress.Phase.String()
	h.SurvivalSeconds = w.Clock.Seconds(w.Config.Tick.Rate)
	h.Metrics = w.Status.Lines()
	if p.Skill != nil {
		h.HasSkill = true
		h.SkillLevel = p.Skill.Level
		h.SkillCharge = min(1, float64(p.Skill.Timer)/float64(max(1, p.Skill.Cooldown)))
	}
	h.Weapons = make([]WeaponView, 0, len(p.Weapons))
	for _, wp := range p.Weapons {
		h.Weapons = append(h.Weapons, WeaponView{Name: wp.Kind.String(), Level: wp.Level, Stats: keyStats(wp)})
	}
	return s
}

func keyStats(wp *component.Weapon) []StatView {
	var stats []component.StatKind
	switch wp.Kind {
	case component.WeaponDagger:
		stats = []component.StatKind{component.StatDamage, component.StatCooldown, component.StatShots}
	case component.WeaponWhip:
		stats = []component.StatKind{component.StatDamage, component.StatReach, component.StatKnockback}
	case component.WeaponFlail:
		stats = []component.StatKind{component.StatDamage, component.StatChain, component.StatSpin}
	case component.WeaponBats:
		stats = []component.StatKind{component.StatDamage, component.StatMaxBats, component.StatLifesteal}
	}
	out := make([]StatView, len(stats))
	for i, st := range stats {
		out[i] = StatView{Name: st.String(), Value: wp.Stat(st)}
	}
	return out
}
