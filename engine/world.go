package engine

import (
	"log"
	"math"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/status"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// SessionState is the outer lifecycle of a run
type SessionState uint8

const (
	SessionPlaying SessionState = iota
	SessionOver
)

// Phase mirrors the progression machine's state for readers outside the system package
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseBossEncounter
)

func (p Phase) String() string {
	if p == PhaseBossEncounter {
		return "BossEncounter"
	}
	return "Spawning"
}

// Progression is the pacing state driven by the progression system
type Progression struct {
	Phase Phase

	// BaseHP is the difficulty scalar sizing every new enemy
	BaseHP float64
	// NextBossAt is the kill count that arms the next boss
	NextBossAt int

	SpawnTimer      int
	DifficultyTimer int

	// Boss is a weak reference into the enemy pool
	Boss core.Entity
}

// World is the whole simulation state of one run, owned by the driver and threaded through every system
type World struct {
	Config *config.Config
	Rand   *vmath.FastRand

	Grid *SpatialGrid

	Enemies *Pool[*component.Enemy]
	Daggers *Pool[*component.Dagger]
	Storms  *Pool[*component.Storm]
	Bullets *Pool[*component.EnemyBullet]
	Orbs    *Pool[*component.ExpOrb]
	Bats    *Pool[*component.Bat]
	Swings  *Pool[*component.Swing]

	Player   *component.Player
	Progress Progression
	Clock    SimClock
	Session  SessionState
	Intent   Intent

	Events *event.EventQueue
	Status *status.Registry

	RunID uuid.UUID
	Name  string

	seed           uint64
	nextID         core.Entity
	maxEnemyRadius float64
	systems        []System
	desynced       map[core.Entity]struct{}
	desyncMetric   *atomic.Int64
}

// NewWorld builds a world from a validated config; an invalid config is refused
func NewWorld(cfg *config.Config, seed uint64, name string) (*World, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "refusing to build world")
	}

	w := &World{
		Config: cfg,
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
		Name:   name,
		seed:   seed,
	}
	w.Grid = NewSpatialGrid(cfg.World.Width, cfg.World.Height, cfg.Grid.CellSize)
	w.Enemies = NewPool[*component.Enemy]()
	w.Daggers = NewPool[*component.Dagger]()
	w.Storms = NewPool[*component.Storm]()
	w.Bullets = NewPool[*component.EnemyBullet]()
	w.Orbs = NewPool[*component.ExpOrb]()
	w.Bats = NewPool[*component.Bat]()
	w.Swings = NewPool[*component.Swing]()
	w.Enemies.OnRemove(w.releaseEnemy)
	w.desyncMetric = w.Status.Ints.Get(status.MetricGridDesync)

	w.resetState()
	return w, nil
}

// resetState rebuilds every per-run field, keeping registered systems
func (w *World) resetState() {
	w.Enemies.Clear()
	w.Daggers.Clear()
	w.Storms.Clear()
	w.Bullets.Clear()
	w.Orbs.Clear()
	w.Bats.Clear()
	w.Swings.Clear()
	w.Grid.Clear()
	w.Events.Reset()
	w.Status.Reset()

	w.Rand = vmath.NewFastRand(w.seed)
	w.nextID = 1
	w.maxEnemyRadius = 0
	w.desynced = make(map[core.Entity]struct{})
	w.Clock.Reset()
	w.Session = SessionPlaying
	w.Intent = NoIntent
	w.RunID = uuid.New()

	w.Progress = Progression{
		Phase:      PhaseSpawning,
		BaseHP:     w.Config.Enemy.InitialBaseHP,
		NextBossAt: w.Config.Progression.BossKillThreshold,
	}
	w.Player = w.newPlayer()
}

// Reset starts a fresh run with the same config, seed and systems
func (w *World) Reset() {
	w.resetState()
	for _, s := range w.systems {
		if r, ok := s.(Resetter); ok {
			r.Reset(w)
		}
	}
}

func (w *World) newPlayer() *component.Player {
	pc := w.Config.Player
	p := &component.Player{
		Entity:        w.CreateEntity(),
		X:             w.Config.World.Width / 2,
		Y:             w.Config.World.Height / 2,
		Size:          pc.Size,
		Speed:         pc.Speed,
		HP:            pc.HP,
		MaxHP:         pc.HP,
		Level:         1,
		ExpToNext:     pc.ExpToNext,
		ExpMultiplier: 1,
	}
	p.PrevX, p.PrevY = p.X, p.Y
	p.Weapons = append(p.Weapons, w.NewWeapon(component.WeaponDagger))
	return p
}

// CreateEntity reserves a new entity ID; ids are never reused within a run
func (w *World) CreateEntity() core.Entity {
	id := w.nextID
	w.nextID++
	return id
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Paused reports whether a selection gates the simulation
func (w *World) Paused() bool { return w.Player.Paused() }

// Step runs one tick. While a selection is open only pause-exempt systems run,
// so no pooled entity changes position, hp or lifespan
func (w *World) Step(in Intent) {
	if w.Session == SessionOver {
		return
	}
	w.Intent = in

	for _, s := range w.systems {
		if w.Paused() {
			w.Clock.Pause()
			if pe, ok := s.(PauseExempt); !ok || !pe.RunsWhilePaused() {
				continue
			}
		} else {
			w.Clock.Resume()
		}
		s.Update(w)
	}
	w.Clock.Advance()

	if !w.Player.Alive() {
		w.Session = SessionOver
		w.Emit(event.EventGameOver, nil)
		log.Printf("[world] run %s over at level %d, %d kills", w.RunID, w.Player.Level, w.Player.Kills)
	}
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Tick: w.Clock.Tick(), Payload: payload})
}

// Wrap normalizes a position into the world rectangle
func (w *World) Wrap(x, y float64) (float64, float64) {
	return vmath.WrapPoint(x, y, w.Config.World.Width, w.Config.World.Height)
}

// Delta returns the shortest wrapped displacement from (x1, y1) to (x2, y2)
func (w *World) Delta(x1, y1, x2, y2 float64) (float64, float64) {
	return vmath.WrappedDelta2(x1, y1, x2, y2, w.Config.World.Width, w.Config.World.Height)
}

// DistSq returns the squared wrapped distance
func (w *World) DistSq(x1, y1, x2, y2 float64) float64 {
	return vmath.WrappedDistanceSquared(x1, y1, x2, y2, w.Config.World.Width, w.Config.World.Height)
}

// SpawnEnemy creates an enemy of arch at (x, y) sized from baseHP and indexes it
func (w *World) SpawnEnemy(arch *component.Archetype, x, y, baseHP float64) *component.Enemy {
	x, y = w.Wrap(x, y)
	ec := w.Config.Enemy
	e := component.NewEnemy(w.CreateEntity(), x, y, arch, baseHP, ec.BaseRadius, ec.BaseSpeed)
	w.Enemies.Add(e)
	w.Grid.Insert(e.Entity, e.X, e.Y)
	w.maxEnemyRadius = math.Max(w.maxEnemyRadius, e.Radius)
	return e
}

// MoveEnemy sets a new position, re-wraps it and re-files the grid entry in the same call
func (w *World) MoveEnemy(e *component.Enemy, x, y float64) {
	e.X, e.Y = w.Wrap(x, y)
	w.Grid.UpdatePosition(e.Entity, e.X, e.Y)
}

// releaseEnemy revokes everything that tracked a removed enemy
func (w *World) releaseEnemy(e *component.Enemy) {
	w.Grid.Remove(e.Entity)
	for _, wp := range w.Player.Weapons {
		if wp.Head != nil {
			wp.Head.Forget(e.Entity)
		}
	}
	w.Bats.Each(func(b *component.Bat) bool {
		b.Bite.Forget(e.Entity)
		return true
	})
	delete(w.desynced, e.Entity)
}

// Boss resolves the boss weak reference
func (w *World) Boss() (*component.Enemy, bool) {
	if w.Progress.Boss == core.EntityNone {
		return nil, false
	}
	e, ok := w.Enemies.Get(w.Progress.Boss)
	if !ok || !e.Alive() {
		return nil, false
	}
	return e, true
}
