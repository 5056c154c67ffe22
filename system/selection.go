package system

import (
	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// SelectionSystem applies a chosen upgrade or boss reward; it is the only stage that runs while paused
type SelectionSystem struct{}

func NewSelectionSystem(_ *engine.World) *SelectionSystem { return &SelectionSystem{} }

func (s *SelectionSystem) Name() string          { return "selection" }
func (s *SelectionSystem) Priority() int         { return parameter.PrioritySelection }
func (s *SelectionSystem) RunsWhilePaused() bool { return true }

func (s *SelectionSystem) Update(w *engine.World) {
	p := w.Player
	idx := w.Intent.Select
	if !p.Paused() || idx < 0 || idx >= len(p.Options) {
		return
	}
	ApplyOption(w, p.Options[idx])
	p.Selecting = component.SelectNone
	p.Options = nil
	w.Emit(event.EventSelectionApplied, &event.LevelPayload{Level: p.Level})
}
