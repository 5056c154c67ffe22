package system

import (
	"math"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// LevelSystem gates level-ups: one per selection, excess exp carries into the next threshold
type LevelSystem struct{}

func NewLevelSystem(_ *engine.World) *LevelSystem { return &LevelSystem{} }

func (s *LevelSystem) Name() string  { return "level" }
func (s *LevelSystem) Priority() int { return parameter.PriorityLevel }

func (s *LevelSystem) Update(w *engine.World) {
	p := w.Player
	if p.Paused() || !p.Alive() || p.Exp < p.ExpToNext {
		return
	}
	pc := w.Config.Player

	p.Exp -= p.ExpToNext
	p.Level++
	p.ExpToNext = math.Ceil(p.ExpToNext * pc.ExpGrowth)
	p.MaxHP += pc.LevelUpHPBonus
	p.HP = p.MaxHP

	p.Options = OfferUpgrades(w)
	p.Selecting = component.SelectUpgrade
	w.Emit(event.EventPlayerLevelUp, &event.LevelPayload{Level: p.Level})
}
