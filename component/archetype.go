package component

import "fmt"

// MovementKind selects how an enemy closes on the player
type MovementKind uint8

const (
	// MoveChase walks straight at the player along the wrapped shortest path
	MoveChase MovementKind = iota
	// MoveHold stays in place
	MoveHold
)

// AttackKind selects an enemy's ranged behaviour
type AttackKind uint8

const (
	// AttackNone relies on contact damage only
	AttackNone AttackKind = iota
	// AttackAimed fires a single bullet at the player
	AttackAimed
	// AttackSpread fires a three-bullet fan at the player
	AttackSpread
)

// VisualTag is a palette/sprite key for the rendering layer; it carries no behaviour
type VisualTag uint8

const (
	VisualSlime VisualTag = iota
	VisualMint
	VisualShooter
	VisualMinion
	VisualBoss
)

var (
	movementNames = [...]string{"chase", "hold"}
	attackNames   = [...]string{"none", "aimed", "spread"}
	visualNames   = [...]string{"slime", "mint", "shooter", "minion", "boss"}
)

func (k MovementKind) String() string { return enumName(movementNames[:], int(k)) }
func (k AttackKind) String() string   { return enumName(attackNames[:], int(k)) }
func (k VisualTag) String() string    { return enumName(visualNames[:], int(k)) }

func (k *MovementKind) UnmarshalText(b []byte) error {
	i, err := enumIndex(movementNames[:], "movement", string(b))
	*k = MovementKind(i)
	return err
}

func (k *AttackKind) UnmarshalText(b []byte) error {
	i, err := enumIndex(attackNames[:], "attack", string(b))
	*k = AttackKind(i)
	return err
}

func (k *VisualTag) UnmarshalText(b []byte) error {
	i, err := enumIndex(visualNames[:], "visual", string(b))
	*k = VisualTag(i)
	return err
}

func (k MovementKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (k AttackKind) MarshalText() ([]byte, error)   { return []byte(k.String()), nil }
func (k VisualTag) MarshalText() ([]byte, error)    { return []byte(k.String()), nil }

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func enumIndex(names []string, what, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s kind %q", what, s)
}

// DamageFormula computes contact damage as Flat + MaxHPFraction*maxHP
// Kept as data so balance can be tuned without touching the resolver
type DamageFormula struct {
	Flat          float64 `toml:"flat"`
	MaxHPFraction float64 `toml:"max_hp_fraction"`
}

// Contact returns the damage an enemy with the given max hp deals on touch
func (f DamageFormula) Contact(maxHP float64) float64 {
	return f.Flat + f.MaxHPFraction*maxHP
}

// Archetype composes an enemy from orthogonal behaviour components chosen at construction
// A boss gunner is simply {Movement: chase, Attack: aimed, Visual: minion, Minion: true}
type Archetype struct {
	Name          string        `toml:"name"`
	HPMultiplier  float64       `toml:"hp_multiplier"`
	RadiusFactor  float64       `toml:"radius_factor"`
	SpeedFactor   float64       `toml:"speed_factor"`
	Movement      MovementKind  `toml:"movement"`
	Attack        AttackKind    `toml:"attack"`
	Visual        VisualTag     `toml:"visual"`
	Minion        bool          `toml:"minion"`
	Lifespan      int           `toml:"lifespan"`
	ShootCooldown int           `toml:"shoot_cooldown"`
	SpawnWeight   int           `toml:"spawn_weight"`
	Damage        DamageFormula `toml:"damage"`
}
