package system

import (
	"sync/atomic"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/status"
)

// CullSystem is the end-of-tick compaction pass: every pool drops its marked entries
// in one sweep and enemy deaths produce their side effects
type CullSystem struct {
	pools []poolStat
}

type poolStat struct {
	count func() int
	stat  *atomic.Int64
}

func NewCullSystem(w *engine.World) *CullSystem {
	ints := w.Status.Ints
	return &CullSystem{
		pools: []poolStat{
			{w.Enemies.Len, ints.Get(status.MetricPoolEnemies)},
			{w.Daggers.Len, ints.Get(status.MetricPoolDaggers)},
			{w.Storms.Len, ints.Get(status.MetricPoolStorms)},
			{w.Bullets.Len, ints.Get(status.MetricPoolBullets)},
			{w.Orbs.Len, ints.Get(status.MetricPoolOrbs)},
			{w.Bats.Len, ints.Get(status.MetricPoolBats)},
			{w.Swings.Len, ints.Get(status.MetricPoolSwings)},
		},
	}
}

func (s *CullSystem) Name() string  { return "cull" }
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) Update(w *engine.World) {
	for _, e := range w.Enemies.Compact() {
		if e.Dead && !e.Expired {
			s.onDeath(w, e)
		}
	}
	w.Daggers.Compact()
	w.Storms.Compact()
	w.Bullets.Compact()
	w.Orbs.Compact()
	w.Bats.Compact()
	w.Swings.Compact()

	for _, p := range s.pools {
		p.stat.Store(int64(p.count()))
	}
}

func (s *CullSystem) onDeath(w *engine.World, e *component.Enemy) {
	payload := &event.KillPayload{Entity: e.Entity, X: e.X, Y: e.Y, Boss: e.IsBoss(), Minion: e.IsMinion()}
	switch {
	case e.IsBoss():
		s.onBossDeath(w, e)
		w.Emit(event.EventBossKilled, payload)
		return
	case e.IsMinion():
	default:
		w.Player.Kills++
		if !orbNear(w, e.X, e.Y) {
			dropOrb(w, e.X, e.Y)
		}
	}
	w.Emit(event.EventEnemyKilled, payload)
}

// onBossDeath pays out the boss: exp multiplier, an orb burst and the storm skill or its upgrades
func (s *CullSystem) onBossDeath(w *engine.World, boss *component.Enemy) {
	p := w.Player
	p.BossKills++
	p.ExpMultiplier *= w.Config.Player.BossExpMultiplier

	r := boss.Radius
	for i := 0; i < w.Config.Enemy.BossOrbCount; i++ {
		dropOrb(w, boss.X+w.Rand.Range(-r, r), boss.Y+w.Rand.Range(-r, r))
	}

	if p.Skill == nil {
		p.Skill = w.NewStorm()
		return
	}
	if opts := BossRewardOptions(w); len(opts) > 0 {
		p.Options = opts
		p.Selecting = component.SelectBossReward
	}
}

// orbNear reports whether an orb already waits within the dedup radius of (x, y)
func orbNear(w *engine.World, x, y float64) bool {
	limit := sq(w.Config.Progression.OrbCheckRadius)
	found := false
	w.Orbs.Each(func(o *component.ExpOrb) bool {
		if w.DistSq(x, y, o.X, o.Y) < limit {
			found = true
			return false
		}
		return true
	})
	return found
}

func dropOrb(w *engine.World, x, y float64) {
	pc := w.Config.Progression
	x, y = w.Wrap(x, y)
	w.Orbs.Add(&component.ExpOrb{
		Entity: w.CreateEntity(),
		X:      x,
		Y:      y,
		Radius: pc.OrbRadius,
		Speed:  pc.OrbSpeed,
		Value:  pc.OrbValue,
	})
}
