package system

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/engine/fsm"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/status"
)

const (
	StateSpawning fsm.StateID = iota + 1
	StateBossEncounter
)

// ProgressionSystem paces the run
// Spawning: timed spawns and difficulty ramp. BossEncounter: both frozen until the boss dies
type ProgressionSystem struct {
	machine *fsm.Machine[*engine.World]
	table   []*component.Archetype
	total   int

	spawned *atomic.Int64
	baseHP  *status.AtomicFloat
}

func NewProgressionSystem(w *engine.World) (*ProgressionSystem, error) {
	s := &ProgressionSystem{
		machine: fsm.NewMachine[*engine.World](),
		table:   w.Config.SpawnTable(),
		spawned: w.Status.Ints.Get(status.MetricSpawned),
		baseHP:  w.Status.Floats.Get(status.MetricBaseHP),
	}
	for _, a := range s.table {
		s.total += a.SpawnWeight
	}

	spawning, err := s.machine.AddState(StateSpawning, engine.PhaseSpawning.String())
	if err != nil {
		return nil, errors.Wrap(err, "progression machine")
	}
	boss, err := s.machine.AddState(StateBossEncounter, engine.PhaseBossEncounter.String())
	if err != nil {
		return nil, errors.Wrap(err, "progression machine")
	}

	spawning.OnEnter = append(spawning.OnEnter, s.enterSpawning)
	spawning.OnUpdate = append(spawning.OnUpdate, s.tickSpawning)
	boss.OnEnter = append(boss.OnEnter, s.enterBoss)

	if err := s.machine.AddTransition(StateSpawning, StateBossEncounter, bossDue); err != nil {
		return nil, errors.Wrap(err, "progression machine")
	}
	if err := s.machine.AddTransition(StateBossEncounter, StateSpawning, bossDefeated); err != nil {
		return nil, errors.Wrap(err, "progression machine")
	}
	if err := s.machine.Init(w, StateSpawning); err != nil {
		return nil, errors.Wrap(err, "progression machine")
	}
	return s, nil
}

func (s *ProgressionSystem) Name() string  { return "progression" }
func (s *ProgressionSystem) Priority() int { return parameter.PriorityProgression }

func (s *ProgressionSystem) Update(w *engine.World) {
	s.machine.Update(w)
	s.baseHP.Set(w.Progress.BaseHP)
}

func (s *ProgressionSystem) Reset(w *engine.World) {
	s.spawned.Store(0)
	_ = s.machine.Reset(w)
}

// State returns the machine's current state
func (s *ProgressionSystem) State() fsm.StateID { return s.machine.Current() }

// bossDue fires once the kill count reached the armed threshold and no boss is alive
func bossDue(w *engine.World) bool {
	_, alive := w.Boss()
	return !alive && w.Player.Kills >= w.Progress.NextBossAt
}

func bossDefeated(w *engine.World) bool {
	_, alive := w.Boss()
	return !alive
}

func (s *ProgressionSystem) enterSpawning(w *engine.World) {
	w.Progress.Phase = engine.PhaseSpawning
	w.Progress.Boss = core.EntityNone
}

func (s *ProgressionSystem) tickSpawning(w *engine.World) {
	pr := &w.Progress
	pc := w.Config.Progression

	pr.DifficultyTimer++
	if pr.DifficultyTimer >= pc.DifficultyInterval {
		pr.DifficultyTimer = 0
		pr.BaseHP += pc.DifficultyIncrement
	}

	pr.SpawnTimer++
	if pr.SpawnTimer >= pc.SpawnInterval {
		pr.SpawnTimer = 0
		if arch := s.pick(w); arch != nil {
			x, y := SpawnPoint(w)
			e := w.SpawnEnemy(arch, x, y, pr.BaseHP)
			if arch.Attack != component.AttackNone {
				e.ShootTimer = w.Rand.Intn(arch.ShootCooldown + 1)
			}
			s.spawned.Add(1)
		}
	}
}

// pick draws an archetype by spawn weight
func (s *ProgressionSystem) pick(w *engine.World) *component.Archetype {
	if s.total <= 0 {
		return nil
	}
	roll := w.Rand.Intn(s.total)
	for _, a := range s.table {
		if roll < a.SpawnWeight {
			return a
		}
		roll -= a.SpawnWeight
	}
	return s.table[len(s.table)-1]
}

func (s *ProgressionSystem) enterBoss(w *engine.World) {
	pr := &w.Progress
	ec := w.Config.Enemy
	pr.Phase = engine.PhaseBossEncounter

	// Arm the next threshold past the current count so a multi-kill jump never re-arms early
	for pr.NextBossAt <= w.Player.Kills {
		pr.NextBossAt += w.Config.Progression.BossKillThreshold
	}

	arch := w.Config.Archetype(ec.BossArchetype)
	x, y := SpawnPoint(w)
	boss := w.SpawnEnemy(arch, x, y, pr.BaseHP)
	boss.Boss = &component.BossState{
		MinionTimer:  ec.BossMinionCooldown,
		MinionBaseHP: pr.BaseHP,
		RegenPerTick: ec.BossRegenPerSecond / float64(w.Config.Tick.Rate),
	}
	pr.Boss = boss.Entity
	w.Emit(event.EventBossSpawned, &event.KillPayload{Entity: boss.Entity, X: boss.X, Y: boss.Y, Boss: true})
}

// SpawnPoint picks a point just outside the viewport centred on the player, on a random edge
func SpawnPoint(w *engine.World) (float64, float64) {
	wc := w.Config.World
	p := w.Player
	off := wc.SpawnEdgeOffset
	left, right := p.X-wc.ViewportWidth/2, p.X+wc.ViewportWidth/2
	top, bottom := p.Y-wc.ViewportHeight/2, p.Y+wc.ViewportHeight/2

	var x, y float64
	switch w.Rand.Intn(4) {
	case 0:
		x, y = w.Rand.Range(left-off, right+off), top-off
	case 1:
		x, y = w.Rand.Range(left-off, right+off), bottom+off
	case 2:
		x, y = left-off, w.Rand.Range(top-off, bottom+off)
	default:
		x, y = right+off, w.Rand.Range(top-off, bottom+off)
	}
	return w.Wrap(x, y)
}
