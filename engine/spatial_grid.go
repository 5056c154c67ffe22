package engine

import (
	"math"

	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// SpatialGrid is a uniform bucket index over a toroidal world
// Cells are addressed modulo the per-axis cell count, so queries crossing a map edge
// pick up the mirrored cells without special cases
type SpatialGrid struct {
	cellW  float64
	cellH  float64
	worldW float64
	worldH float64
	cols   int
	rows   int

	// Buckets are created on first insert; cost scales with live ids, not grid extent
	buckets map[int][]core.Entity
	// where maps id -> bucket index it is filed under
	where map[core.Entity]int
}

// NewSpatialGrid creates a grid over a worldW x worldH torus
// cellSize is an upper bound: each axis is split into equal cells no wider than it,
// so a block of r cells always spans at least r cell edges of world distance
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(1, int(math.Ceil(worldW/cellSize)))
	rows := max(1, int(math.Ceil(worldH/cellSize)))
	return &SpatialGrid{
		cellW:   worldW / float64(cols),
		cellH:   worldH / float64(rows),
		worldW:  worldW,
		worldH:  worldH,
		cols:    cols,
		rows:    rows,
		buckets: make(map[int][]core.Entity),
		where:   make(map[core.Entity]int),
	}
}

// Dims returns the cell count per axis
func (g *SpatialGrid) Dims() (cols, rows int) { return g.cols, g.rows }

// CellSize returns the shorter cell edge, the world distance one ring of cells is guaranteed to cover
func (g *SpatialGrid) CellSize() float64 { return min(g.cellW, g.cellH) }

// CellOf maps a world position to its cell; positions are wrapped first and boundaries floor
func (g *SpatialGrid) CellOf(x, y float64) (cx, cy int) {
	x, y = vmath.WrapPoint(x, y, g.worldW, g.worldH)
	cx = min(int(math.Floor(x/g.cellW)), g.cols-1)
	cy = min(int(math.Floor(y/g.cellH)), g.rows-1)
	return cx, cy
}

func (g *SpatialGrid) key(cx, cy int) int { return cy*g.cols + cx }

// Insert files id under the cell of (x, y); re-inserting an indexed id moves it
func (g *SpatialGrid) Insert(id core.Entity, x, y float64) {
	if _, ok := g.where[id]; ok {
		g.UpdatePosition(id, x, y)
		return
	}
	k := g.key(g.CellOf(x, y))
	g.buckets[k] = append(g.buckets[k], id)
	g.where[id] = k
}

// Remove drops id from the index; unknown ids are ignored
func (g *SpatialGrid) Remove(id core.Entity) {
	k, ok := g.where[id]
	if !ok {
		return
	}
	delete(g.where, id)
	g.detach(id, k)
}

// UpdatePosition re-files id after a position change; no-op when the cell is unchanged
// Unknown ids are inserted
func (g *SpatialGrid) UpdatePosition(id core.Entity, x, y float64) {
	k := g.key(g.CellOf(x, y))
	old, ok := g.where[id]
	if ok && old == k {
		return
	}
	if ok {
		g.detach(id, old)
	}
	g.buckets[k] = append(g.buckets[k], id)
	g.where[id] = k
}

// detach swap-removes id from bucket k, dropping the bucket when empty
func (g *SpatialGrid) detach(id core.Entity, k int) {
	bucket := g.buckets[k]
	for i, e := range bucket {
		if e == id {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = 0
			bucket = bucket[:last]
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.buckets, k)
		return
	}
	g.buckets[k] = bucket
}

// QueryNear returns the ids filed in the (2r+1)^2 block of cells around the cell of (x, y)
// Candidates only: callers must still run an exact wrapped distance check
func (g *SpatialGrid) QueryNear(x, y float64, radiusInCells int) []core.Entity {
	return g.AppendNear(nil, x, y, radiusInCells)
}

// AppendNear is QueryNear appending into dst to let hot paths reuse a buffer
func (g *SpatialGrid) AppendNear(dst []core.Entity, x, y float64, radiusInCells int) []core.Entity {
	if len(g.where) == 0 {
		return dst
	}
	cx, cy := g.CellOf(x, y)
	xs := span(cx, radiusInCells, g.cols)
	ys := span(cy, radiusInCells, g.rows)
	for _, yy := range ys {
		for _, xx := range xs {
			dst = append(dst, g.buckets[g.key(xx, yy)]...)
		}
	}
	return dst
}

// span lists the distinct cell indices within r of c on a wrapped axis of n cells
// A block wider than the axis collapses to every index once
func span(c, r, n int) []int {
	if r < 0 {
		r = 0
	}
	if 2*r+1 >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, 2*r+1)
	for d := -r; d <= r; d++ {
		out = append(out, ((c+d)%n+n)%n)
	}
	return out
}

// RadiusInCells converts a world radius into the cell radius whose block covers it
func (g *SpatialGrid) RadiusInCells(r float64) int {
	if r <= 0 {
		return 0
	}
	return int(math.Ceil(r / g.CellSize()))
}

// CoversAll reports whether a block of the given radius already spans the whole grid
func (g *SpatialGrid) CoversAll(radiusInCells int) bool {
	return 2*radiusInCells+1 >= g.cols && 2*radiusInCells+1 >= g.rows
}

// CellFor returns the cell id is filed under
func (g *SpatialGrid) CellFor(id core.Entity) (cx, cy int, ok bool) {
	k, ok := g.where[id]
	if !ok {
		return 0, 0, false
	}
	return k % g.cols, k / g.cols, true
}

// Has reports whether id is indexed
func (g *SpatialGrid) Has(id core.Entity) bool {
	_, ok := g.where[id]
	return ok
}

// Len returns the number of indexed ids
func (g *SpatialGrid) Len() int { return len(g.where) }

// Clear empties the index
func (g *SpatialGrid) Clear() {
	clear(g.buckets)
	clear(g.where)
}

// Each visits every indexed id
func (g *SpatialGrid) Each(fn func(id core.Entity)) {
	for id := range g.where {
		fn(id)
	}
}

// Validate returns ids whose filed cell differs from the cell of the position reported by lookup,
// plus ids lookup does not know
func (g *SpatialGrid) Validate(lookup func(core.Entity) (x, y float64, ok bool)) []core.Entity {
	var bad []core.Entity
	for id, k := range g.where {
		x, y, ok := lookup(id)
		if !ok || g.key(g.CellOf(x, y)) != k {
			bad = append(bad, id)
		}
	}
	return bad
}
