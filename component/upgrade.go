package component

// UpgradeKind classifies an offered upgrade
type UpgradeKind uint8

const (
	UpgradeNewWeapon UpgradeKind = iota
	UpgradeWeaponStat
	UpgradeMaxHP
	UpgradeSkillStat
)

// StatKind names a tunable weapon or skill stat
type StatKind uint8

const (
	StatNone StatKind = iota
	StatDamage
	StatCooldown
	StatShots
	StatKnockback
	StatReach
	StatChain
	StatSpin
	StatMaxBats
	StatLifesteal
)

var statNames = [...]string{"none", "damage", "cooldown", "shots", "knockback", "reach", "chain", "spin", "max bats", "lifesteal"}

func (s StatKind) String() string { return enumName(statNames[:], int(s)) }

// UpgradeOption is the semantic descriptor of one offered choice
// Label is presentation text; Kind, Weapon, Slot, Stat and Delta are what gets applied
type UpgradeOption struct {
	Kind   UpgradeKind
	Weapon WeaponKind
	// Slot indexes the player's weapon list for UpgradeWeaponStat
	Slot  int
	Stat  StatKind
	Delta float64
	Label string
}
