package component

import "github.com/lixenwraith/slime-survivor/core"

// Selection is the pause gate a player can be in
type Selection uint8

const (
	SelectNone Selection = iota
	SelectUpgrade
	SelectBossReward
)

// Player is the singleton player record
type Player struct {
	Entity core.Entity

	X, Y         float64
	PrevX, PrevY float64
	Facing       float64
	Size         float64
	Speed        float64

	HP    float64
	MaxHP float64

	Level     int
	Exp       float64
	ExpToNext float64
	// ExpMultiplier grows with each boss kill
	ExpMultiplier float64

	// Invincible counts down; damage is ignored while positive
	Invincible int

	Weapons []*Weapon
	Skill   *StormSkill

	Selecting Selection
	Options   []UpgradeOption

	Kills     int
	BossKills int
}

// Paused reports whether a selection menu gates simulation
func (p *Player) Paused() bool { return p.Selecting != SelectNone }

// Alive reports whether the run continues
func (p *Player) Alive() bool { return p.HP > 0 }

// HasWeapon reports whether a weapon of kind k is owned
func (p *Player) HasWeapon(k WeaponKind) bool {
	for _, w := range p.Weapons {
		if w.Kind == k {
			return true
		}
	}
	return false
}

// TakeDamage applies damage unless invincible, then starts the invincibility window
// Returns false when the hit was ignored
func (p *Player) TakeDamage(amount float64, window int) bool {
	if p.Invincible > 0 || !p.Alive() {
		return false
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	p.Invincible = window
	return true
}

// Heal restores hp up to max
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// HPRatio returns remaining hp in [0,1]
func (p *Player) HPRatio() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return p.HP / p.MaxHP
}
