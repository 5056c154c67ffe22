package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// PlayerSystem moves the player from the tick's intent and runs passive timers
type PlayerSystem struct{}

func NewPlayerSystem(_ *engine.World) *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Name() string  { return "player" }
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update(w *engine.World) {
	p := w.Player
	if !p.Alive() {
		return
	}

	p.Heal(p.MaxHP * w.Config.Player.RegenPerSecond / float64(w.Config.Tick.Rate))
	p.PrevX, p.PrevY = p.X, p.Y
	if p.Invincible > 0 {
		p.Invincible--
	}

	// Each axis moves at full speed, diagonals are faster
	dx := clampUnit(w.Intent.MoveX) * p.Speed
	dy := clampUnit(w.Intent.MoveY) * p.Speed
	if dx != 0 || dy != 0 {
		p.Facing = math.Atan2(dy, dx)
		p.X, p.Y = w.Wrap(p.X+dx, p.Y+dy)
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
