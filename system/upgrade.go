package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
)

// OfferUpgrades builds a level-up offer: at most one unowned weapon, a random subset of stat
// upgrades per owned weapon, sampled down to the configured option count. An empty pool falls
// back to a max hp bonus
func OfferUpgrades(w *engine.World) []component.UpgradeOption {
	p := w.Player
	pc := w.Config.Player
	var pool []component.UpgradeOption

	if len(p.Weapons) < pc.MaxWeaponSlots {
		var unowned []component.WeaponKind
		for k := component.WeaponKind(0); k < component.WeaponKindCount; k++ {
			if !p.HasWeapon(k) {
				unowned = append(unowned, k)
			}
		}
		if len(unowned) > 0 {
			k := unowned[w.Rand.Intn(len(unowned))]
			pool = append(pool, component.UpgradeOption{
				Kind:   component.UpgradeNewWeapon,
				Weapon: k,
				Label:  "New weapon: " + k.String(),
			})
		}
	}

	for slot, wp := range p.Weapons {
		opts := weaponStatOptions(w, slot, wp)
		for _, i := range w.Rand.Perm(len(opts))[:min(pc.StatOptions, len(opts))] {
			pool = append(pool, opts[i])
		}
	}

	if len(pool) == 0 {
		return []component.UpgradeOption{{
			Kind:  component.UpgradeMaxHP,
			Delta: pc.FallbackHPBonus,
			Label: fmt.Sprintf("Max HP +%g", pc.FallbackHPBonus),
		}}
	}

	picked := make([]component.UpgradeOption, 0, pc.OptionsOffered)
	for _, i := range w.Rand.Perm(len(pool))[:min(pc.OptionsOffered, len(pool))] {
		picked = append(picked, pool[i])
	}
	return picked
}

// weaponStatOptions lists every non-zero stat step available to wp
func weaponStatOptions(w *engine.World, slot int, wp *component.Weapon) []component.UpgradeOption {
	wc := w.Config.Weapons
	type step struct {
		stat  component.StatKind
		delta float64
	}
	var steps []step

	switch wp.Kind {
	case component.WeaponDagger:
		steps = []step{
			{component.StatDamage, math.Ceil(wp.Damage*wc.Dagger.DamageGrowth) - wp.Damage},
			{component.StatCooldown, float64(max(wc.Dagger.MinCooldown, wp.Cooldown-wc.Dagger.CooldownStep) - wp.Cooldown)},
			{component.StatShots, 1},
		}
	case component.WeaponWhip:
		steps = []step{
			{component.StatDamage, wc.Whip.DamageStep},
			{component.StatKnockback, wc.Whip.KnockbackStep},
			{component.StatReach, wc.Whip.ReachStep},
			{component.StatCooldown, float64(max(wc.Whip.MinCooldown, wp.Cooldown-wc.Whip.CooldownStep) - wp.Cooldown)},
		}
	case component.WeaponFlail:
		steps = []step{
			{component.StatDamage, math.Ceil(wp.Damage*wc.Flail.DamageGrowth) - wp.Damage},
			{component.StatChain, wc.Flail.ChainStep},
			{component.StatSpin, wc.Flail.SpinStep},
		}
	case component.WeaponBats:
		steps = []step{
			{component.StatDamage, math.Ceil(wp.Damage*wc.Bats.DamageGrowth) - wp.Damage},
			{component.StatMaxBats, float64(wc.Bats.MaxCountStep)},
			{component.StatLifesteal, math.Min(wc.Bats.LifestealLimit, wp.Lifesteal+wc.Bats.LifestealStep) - wp.Lifesteal},
		}
	}

	out := make([]component.UpgradeOption, 0, len(steps))
	for _, st := range steps {
		if st.delta == 0 {
			continue
		}
		cur := wp.Stat(st.stat)
		out = append(out, component.UpgradeOption{
			Kind:   component.UpgradeWeaponStat,
			Weapon: wp.Kind,
			Slot:   slot,
			Stat:   st.stat,
			Delta:  st.delta,
			Label:  fmt.Sprintf("%s: %s %g -> %g", wp.Kind, st.stat, round2(cur), round2(cur+st.delta)),
		})
	}
	return out
}

// BossRewardOptions lists every storm upgrade; all of them are offered
func BossRewardOptions(w *engine.World) []component.UpgradeOption {
	s := w.Player.Skill
	if s == nil {
		return nil
	}
	sc := w.Config.Skill
	cd := float64(max(sc.MinCooldown, s.Cooldown-sc.CooldownStep) - s.Cooldown)

	opts := []component.UpgradeOption{
		{
			Kind: component.UpgradeSkillStat, Stat: component.StatShots, Delta: 1,
			Label: fmt.Sprintf("Storm: projectiles %d -> %d, damage split", s.Projectiles, s.Projectiles+1),
		},
		{
			Kind: component.UpgradeSkillStat, Stat: component.StatDamage, Delta: sc.DamageStep,
			Label: fmt.Sprintf("Storm: base damage %g -> %g", s.BaseDamage, s.BaseDamage+sc.DamageStep),
		},
	}
	if cd != 0 {
		rate := float64(w.Config.Tick.Rate)
		opts = append(opts, component.UpgradeOption{
			Kind: component.UpgradeSkillStat, Stat: component.StatCooldown, Delta: cd,
			Label: fmt.Sprintf("Storm: cooldown %.1fs -> %.1fs", float64(s.Cooldown)/rate, (float64(s.Cooldown)+cd)/rate),
		})
	}
	return opts
}

// ApplyOption applies one semantic upgrade descriptor to the player
func ApplyOption(w *engine.World, opt component.UpgradeOption) {
	p := w.Player
	switch opt.Kind {
	case component.UpgradeNewWeapon:
		w.GrantWeapon(opt.Weapon)
	case component.UpgradeWeaponStat:
		if opt.Slot >= 0 && opt.Slot < len(p.Weapons) && p.Weapons[opt.Slot].Kind == opt.Weapon {
			p.Weapons[opt.Slot].Apply(opt.Stat, opt.Delta)
		}
	case component.UpgradeMaxHP:
		p.MaxHP += opt.Delta
		p.HP = p.MaxHP
	case component.UpgradeSkillStat:
		if p.Skill != nil {
			p.Skill.Apply(opt.Stat, opt.Delta)
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
