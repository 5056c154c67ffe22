package engine

import (
	"time"

	"github.com/google/uuid"
)

// RunSummary is the finalized record handed to persistence at game over
type RunSummary struct {
	RunID           uuid.UUID `msgpack:"run_id"`
	Name            string    `msgpack:"name"`
	Level           int       `msgpack:"level"`
	Kills           int       `msgpack:"kills"`
	BossKills       int       `msgpack:"boss_kills"`
	Difficulty      float64   `msgpack:"difficulty"`
	SurvivalSeconds float64   `msgpack:"survival_seconds"`
	EndedAt         time.Time `msgpack:"ended_at"`
}

// Difficulty is the derived score: current base hp over the starting base hp
func (w *World) Difficulty() float64 {
	initial := w.Config.Enemy.InitialBaseHP
	if initial <= 0 {
		return 0
	}
	return w.Progress.BaseHP / initial
}

// Summary finalizes the run record
func (w *World) Summary() RunSummary {
	return RunSummary{
		RunID:           w.RunID,
		Name:            w.Name,
		Level:           w.Player.Level,
		Kills:           w.Player.Kills,
		BossKills:       w.Player.BossKills,
		Difficulty:      w.Difficulty(),
		SurvivalSeconds: w.Clock.Seconds(w.Config.Tick.Rate),
		EndedAt:         time.Now(),
	}
}
