package component

import "github.com/lixenwraith/slime-survivor/core"

// Dagger is a homing projectile; Target is a weak reference re-validated every tick
type Dagger struct {
	Entity core.Entity

	X, Y   float64
	Angle  float64
	Speed  float64
	Size   float64
	Damage float64

	Lifespan int
	Target   core.Entity

	// Spent is set on impact with an enemy or an enemy bullet
	Spent bool
}

func (d *Dagger) EntityID() core.Entity { return d.Entity }

// Storm is a piercing projectile that damages each enemy at most once
type Storm struct {
	Entity core.Entity

	X, Y   float64
	Angle  float64
	Speed  float64
	Radius float64
	Damage float64

	Lifespan int
	Hit      map[core.Entity]struct{}
}

func (s *Storm) EntityID() core.Entity { return s.Entity }

// EnemyBullet travels straight and damages the player on contact
type EnemyBullet struct {
	Entity core.Entity

	X, Y   float64
	Angle  float64
	Speed  float64
	Size   float64
	Damage float64

	Lifespan int
	Boss     bool

	// Destroyed is set when a player attack intersects the bullet or it reaches the player
	Destroyed bool
}

func (b *EnemyBullet) EntityID() core.Entity { return b.Entity }
