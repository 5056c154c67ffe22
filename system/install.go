package system

import "github.com/lixenwraith/slime-survivor/engine"

// Install registers the full tick pipeline on w
func Install(w *engine.World) error {
	prog, err := NewProgressionSystem(w)
	if err != nil {
		return err
	}
	for _, s := range []engine.System{
		NewSelectionSystem(w),
		NewPlayerSystem(w),
		prog,
		NewWeaponSystem(w),
		NewEnemySystem(w),
		NewProjectileSystem(w),
		NewAllySystem(w),
		NewPickupSystem(w),
		NewCombatSystem(w),
		NewCullSystem(w),
		NewLevelSystem(w),
		NewDiagnosticsSystem(w),
	} {
		w.AddSystem(s)
	}
	return nil
}
