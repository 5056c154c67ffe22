package engine

import (
	"github.com/lixenwraith/slime-survivor/config"
)

// NewTestWorld creates a deterministic world on a small map for tests
// tune may adjust the default config before validation; spawning and regen are disabled
// unless tune turns them back on
func NewTestWorld(width, height float64, tune func(*config.Config)) *World {
	cfg := config.Default()
	cfg.World.Width = width
	cfg.World.Height = height
	cfg.World.ViewportWidth = width / 2
	cfg.World.ViewportHeight = height / 2
	cfg.Grid.CellSize = 100
	cfg.Player.RegenPerSecond = 0
	cfg.Progression.SpawnInterval = 1 << 30
	cfg.Progression.DifficultyInterval = 1 << 30
	if tune != nil {
		tune(cfg)
	}

	w, err := NewWorld(cfg, 1, "test")
	if err != nil {
		panic(err)
	}
	return w
}
