package engine

import (
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/core"
)

// resolve maps a grid candidate to its live enemy
// An id the grid knows but the pool does not is a desync: fatal in debug builds,
// otherwise treated as absent and logged once per id
func (w *World) resolve(id core.Entity) (*component.Enemy, bool) {
	e, owned := w.Enemies.Lookup(id)
	if !owned {
		w.ReportDesync(id)
		return nil, false
	}
	if !e.Alive() {
		return nil, false
	}
	return e, true
}

// ReportDesync surfaces a grid/pool disagreement for id
func (w *World) ReportDesync(id core.Entity) {
	if DebugAsserts {
		panic(fmt.Sprintf("spatial grid and enemy pool disagree on enemy %d", id))
	}
	w.desyncMetric.Add(1)
	if _, seen := w.desynced[id]; seen {
		return
	}
	w.desynced[id] = struct{}{}
	log.Printf("[grid] desync: enemy %d indexed inconsistently with its pool", id)
}

// NearbyEnemies appends live enemies whose circle may reach within reach of (x, y)
// Candidates come from the grid; callers still run the exact wrapped test
func (w *World) NearbyEnemies(dst []*component.Enemy, x, y, reach float64) []*component.Enemy {
	r := w.Grid.RadiusInCells(reach + w.maxEnemyRadius)
	for _, id := range w.Grid.QueryNear(x, y, r) {
		if e, ok := w.resolve(id); ok {
			dst = append(dst, e)
		}
	}
	return dst
}

// NearestEnemies returns up to n live enemies closest to (x, y), nearest first
// The search widens ring by ring; a hit within the guaranteed radius of a block is final
func (w *World) NearestEnemies(x, y float64, n int) []*component.Enemy {
	if n <= 0 || w.Enemies.Len() == 0 {
		return nil
	}
	type cand struct {
		e *component.Enemy
		d float64
	}
	var found []cand
	for r := 1; ; r *= 2 {
		found = found[:0]
		for _, id := range w.Grid.QueryNear(x, y, r) {
			if e, ok := w.resolve(id); ok {
				found = append(found, cand{e, w.DistSq(x, y, e.X, e.Y)})
			}
		}
		slices.SortFunc(found, func(a, b cand) int {
			if a.d != b.d {
				if a.d < b.d {
					return -1
				}
				return 1
			}
			return int(a.e.Entity) - int(b.e.Entity)
		})
		guaranteed := float64(r) * w.Grid.CellSize()
		if w.Grid.CoversAll(r) || (len(found) >= n && math.Sqrt(found[n-1].d) <= guaranteed) {
			break
		}
	}
	out := make([]*component.Enemy, 0, min(n, len(found)))
	for i := 0; i < len(found) && i < n; i++ {
		out = append(out, found[i].e)
	}
	return out
}

// NearestEnemy returns the closest live enemy, if any
func (w *World) NearestEnemy(x, y float64) (*component.Enemy, bool) {
	near := w.NearestEnemies(x, y, 1)
	if len(near) == 0 {
		return nil, false
	}
	return near[0], true
}

// ValidateGrid lists indexed ids whose cell disagrees with their pooled position or that have no pool entry
func (w *World) ValidateGrid() []core.Entity {
	return w.Grid.Validate(func(id core.Entity) (float64, float64, bool) {
		e, ok := w.Enemies.Lookup(id)
		if !ok {
			return 0, 0, false
		}
		return e.X, e.Y, true
	})
}

// RepairGrid re-files a misfiled id from its pooled position, or drops it when unpooled
func (w *World) RepairGrid(id core.Entity) {
	if e, ok := w.Enemies.Lookup(id); ok {
		w.Grid.UpdatePosition(id, e.X, e.Y)
		return
	}
	w.Grid.Remove(id)
}
