package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
)

// installedWorld is a 1000x1000 test world with the full pipeline registered
func installedWorld(t *testing.T, tune func(*config.Config)) *engine.World {
	t.Helper()
	w := engine.NewTestWorld(1000, 1000, tune)
	require.NoError(t, Install(w))
	return w
}

func archetype(w *engine.World, name string) *component.Archetype {
	return w.Config.Archetype(name)
}

// swingAt builds an active swing centred on angle, registered in the swing pool
func swingAt(w *engine.World, center, damage, knockback float64) *component.Swing {
	wc := w.Config.Weapons.Whip
	sw := &component.Swing{
		Entity:         w.CreateEntity(),
		StartAngle:     center - wc.ArcWidth/2,
		Width:          wc.ArcWidth,
		Reach:          wc.Reach,
		BladeHalfAngle: wc.BladeHalfAngle,
		Damage:         damage,
		Knockback:      knockback,
		Duration:       wc.SwingTicks,
		Hit:            make(map[core.Entity]struct{}),
	}
	w.Swings.Add(sw)
	return sw
}
