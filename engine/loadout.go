package engine

import "github.com/lixenwraith/slime-survivor/component"

// NewWeapon builds a level-1 weapon of kind from the configured base stats
func (w *World) NewWeapon(kind component.WeaponKind) *component.Weapon {
	wc := w.Config.Weapons
	wp := &component.Weapon{Kind: kind, Level: 1}
	switch kind {
	case component.WeaponDagger:
		wp.Damage = wc.Dagger.Damage
		wp.Cooldown = wc.Dagger.Cooldown
		wp.Shots = wc.Dagger.Shots
	case component.WeaponWhip:
		wp.Damage = wc.Whip.Damage
		wp.Cooldown = wc.Whip.Cooldown
		wp.Knockback = wc.Whip.Knockback
		wp.Reach = wc.Whip.Reach
		// First swing is available immediately
		wp.Timer = wc.Whip.Cooldown
	case component.WeaponFlail:
		wp.Damage = wc.Flail.Damage
		wp.Chain = wc.Flail.ChainLength
		wp.Spin = wc.Flail.Spin
		wp.SpinNow = wc.Flail.Spin
		wp.Head = component.NewHazard(wc.Flail.HeadRadius, wc.Flail.Damage, wc.Flail.HitInterval)
		if w.Player != nil {
			wp.Head.X, wp.Head.Y = w.Wrap(w.Player.X+wp.Chain, w.Player.Y)
		}
	case component.WeaponBats:
		wp.Damage = wc.Bats.Damage
		wp.Cooldown = wc.Bats.SpawnCooldown
		wp.MaxBats = wc.Bats.MaxCount
		wp.Lifesteal = wc.Bats.Lifesteal
	}
	return wp
}

// NewStorm builds the special skill, ready to fire
func (w *World) NewStorm() *component.StormSkill {
	sc := w.Config.Skill
	return &component.StormSkill{
		Level:       1,
		BaseDamage:  sc.BaseDamage,
		Cooldown:    sc.Cooldown,
		Timer:       sc.Cooldown,
		Projectiles: sc.Projectiles,
	}
}

// GrantWeapon adds a weapon of kind unless owned or slots are full
func (w *World) GrantWeapon(kind component.WeaponKind) bool {
	p := w.Player
	if p.HasWeapon(kind) || len(p.Weapons) >= w.Config.Player.MaxWeaponSlots {
		return false
	}
	p.Weapons = append(p.Weapons, w.NewWeapon(kind))
	return true
}
