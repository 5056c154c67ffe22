package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/vmath"
)

func TestSpatialGrid_CellOf(t *testing.T) {
	g := NewSpatialGrid(1000, 600, 100)
	cols, rows := g.Dims()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 6, rows)

	cx, cy := g.CellOf(100, 99.999)
	assert.Equal(t, 1, cx, "boundary floors into the upper cell")
	assert.Equal(t, 0, cy)

	cx, cy = g.CellOf(-1, 600)
	assert.Equal(t, 9, cx, "negative x wraps")
	assert.Equal(t, 0, cy, "y == H wraps to 0")
}

func TestSpatialGrid_UnevenWorldSplitsIntoEqualCells(t *testing.T) {
	g := NewSpatialGrid(250, 250, 100)
	cols, rows := g.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, rows)
	assert.InDelta(t, 250.0/3, g.CellSize(), 1e-9)

	cx, _ := g.CellOf(249.9, 0)
	assert.Equal(t, 2, cx)
	cx, _ = g.CellOf(170, 0)
	assert.Equal(t, 2, cx, "cells are uniform, not 100 wide with a partial tail")
	assert.Equal(t, 2, g.RadiusInCells(150))
}

func TestSpatialGrid_UnevenWorldQueryCoversRadiusAcrossSeam(t *testing.T) {
	g := NewSpatialGrid(3000, 3000, 128)
	g.Insert(1, 2935, 1500)

	// 70 units away across the seam
	near := g.QueryNear(5, 1500, g.RadiusInCells(70))
	assert.Contains(t, near, core.Entity(1))
}

func TestSpatialGrid_EmptyQuery(t *testing.T) {
	g := NewSpatialGrid(1000, 1000, 100)
	assert.Empty(t, g.QueryNear(500, 500, 3))
}

func TestSpatialGrid_QueryWrapsAcrossEdge(t *testing.T) {
	g := NewSpatialGrid(1000, 1000, 100)
	g.Insert(1, 995, 10)
	g.Insert(2, 500, 500)

	near := g.QueryNear(10, 10, 1)
	assert.Contains(t, near, core.Entity(1))
	assert.NotContains(t, near, core.Entity(2))
}

func TestSpatialGrid_OversizedBlockReturnsEachIDOnce(t *testing.T) {
	g := NewSpatialGrid(300, 300, 100)
	g.Insert(1, 10, 10)
	g.Insert(2, 250, 250)

	near := g.QueryNear(150, 150, 5)
	assert.ElementsMatch(t, []core.Entity{1, 2}, near)
	assert.True(t, g.CoversAll(1))
}

func TestSpatialGrid_UpdateAndRemove(t *testing.T) {
	g := NewSpatialGrid(1000, 1000, 100)
	g.Insert(7, 50, 50)

	g.UpdatePosition(7, 60, 60)
	cx, cy, ok := g.CellFor(7)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{cx, cy})

	g.UpdatePosition(7, 450, 950)
	cx, cy, _ = g.CellFor(7)
	assert.Equal(t, [2]int{4, 9}, [2]int{cx, cy})
	assert.Empty(t, g.QueryNear(50, 50, 0))

	g.Remove(7)
	assert.False(t, g.Has(7))
	assert.Equal(t, 0, g.Len())

	// Unknown ids are ignored
	g.Remove(42)
}

func TestSpatialGrid_InvariantUnderRandomOps(t *testing.T) {
	const w, h = 800.0, 600.0
	g := NewSpatialGrid(w, h, 64)
	rng := vmath.NewFastRand(99)
	pos := make(map[core.Entity][2]float64)

	for i := 0; i < 5000; i++ {
		id := core.Entity(rng.Intn(200) + 1)
		x, y := rng.Range(-w, 2*w), rng.Range(-h, 2*h)
		switch rng.Intn(3) {
		case 0:
			g.Insert(id, x, y)
			pos[id] = [2]float64{x, y}
		case 1:
			if _, ok := pos[id]; ok {
				g.UpdatePosition(id, x, y)
				pos[id] = [2]float64{x, y}
			}
		default:
			g.Remove(id)
			delete(pos, id)
		}
	}

	require.Equal(t, len(pos), g.Len())
	bad := g.Validate(func(id core.Entity) (float64, float64, bool) {
		p, ok := pos[id]
		return p[0], p[1], ok
	})
	assert.Empty(t, bad)

	for id, p := range pos {
		cx, cy := g.CellOf(p[0], p[1])
		gx, gy, ok := g.CellFor(id)
		require.True(t, ok)
		assert.Equal(t, [2]int{cx, cy}, [2]int{gx, gy})
	}
}

func TestSpatialGrid_ValidateFlagsUnknown(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(1, 5, 5)
	g.Insert(2, 55, 55)

	bad := g.Validate(func(id core.Entity) (float64, float64, bool) {
		if id == 1 {
			return 95, 95, true
		}
		return 0, 0, false
	})
	assert.ElementsMatch(t, []core.Entity{1, 2}, bad)
}

func TestSpatialGrid_RadiusInCells(t *testing.T) {
	g := NewSpatialGrid(1000, 1000, 100)
	assert.Equal(t, 0, g.RadiusInCells(0))
	assert.Equal(t, 1, g.RadiusInCells(1))
	assert.Equal(t, 1, g.RadiusInCells(100))
	assert.Equal(t, 2, g.RadiusInCells(100.5))
}
