package component

import "github.com/lixenwraith/slime-survivor/core"

// Swing is one melee attack: a thin blade rotating through [StartAngle, StartAngle+Width]
// over Duration ticks around the player
type Swing struct {
	Entity core.Entity

	StartAngle     float64
	Width          float64
	Reach          float64
	BladeHalfAngle float64

	Damage    float64
	Knockback float64

	Duration int
	Elapsed  int

	// Hit is the per-swing exclusion set
	Hit map[core.Entity]struct{}
}

func (s *Swing) EntityID() core.Entity { return s.Entity }

// BladeAngle returns the sweep-line direction for the current tick
// Samples sit at the centre of each tick's slice of the arc
func (s *Swing) BladeAngle() float64 {
	if s.Duration <= 0 {
		return s.StartAngle + s.Width/2
	}
	return s.StartAngle + s.Width*(float64(s.Elapsed)+0.5)/float64(s.Duration)
}

// EffectiveHalfAngle widens the blade so consecutive tick samples cover the whole arc
func (s *Swing) EffectiveHalfAngle() float64 {
	if s.Duration <= 0 {
		return s.BladeHalfAngle
	}
	cover := s.Width / (2 * float64(s.Duration)) * 1.0001
	if cover > s.BladeHalfAngle {
		return cover
	}
	return s.BladeHalfAngle
}

// Active reports whether the swing still has ticks left
func (s *Swing) Active() bool { return s.Elapsed < s.Duration }
