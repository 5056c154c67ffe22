package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/core"
)

type item struct {
	id   core.Entity
	life int
}

func (i *item) EntityID() core.Entity { return i.id }

func ids(items []*item) []core.Entity {
	out := make([]core.Entity, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func TestPool_EmptyAdvanceIsNoop(t *testing.T) {
	p := NewPool[*item]()
	calls := 0
	removed := p.Advance(func(*item) bool { calls++; return false })
	assert.Empty(t, removed)
	assert.Zero(t, calls)
	assert.Zero(t, p.Len())
	assert.Empty(t, p.Compact())
}

func TestPool_AdvanceDefersRemoval(t *testing.T) {
	p := NewPool[*item]()
	for i := 1; i <= 4; i++ {
		p.Add(&item{id: core.Entity(i), life: i})
	}

	removed := p.Advance(func(it *item) bool {
		it.life--
		return it.life > 0
	})
	assert.Equal(t, []core.Entity{1}, ids(removed))

	// Marked but still owned until compaction
	assert.True(t, p.Has(1))
	assert.False(t, p.Alive(1))
	_, ok := p.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, 3, p.Len())

	var released []core.Entity
	p.OnRemove(func(it *item) { released = append(released, it.id) })
	assert.Equal(t, []core.Entity{1}, ids(p.Compact()))
	assert.Equal(t, []core.Entity{1}, released)
	assert.False(t, p.Has(1))

	var order []core.Entity
	p.Each(func(it *item) bool { order = append(order, it.id); return true })
	assert.Equal(t, []core.Entity{2, 3, 4}, order)

	got, ok := p.Get(4)
	require.True(t, ok)
	assert.Equal(t, core.Entity(4), got.id)
}

func TestPool_AddDuringAdvanceWaits(t *testing.T) {
	p := NewPool[*item]()
	p.Add(&item{id: 1})

	visited := 0
	p.Advance(func(it *item) bool {
		visited++
		p.Add(&item{id: 2})
		_, ok := p.Lookup(2)
		assert.True(t, ok, "pending entries resolve")
		return true
	})
	assert.Equal(t, 1, visited)
	assert.Equal(t, 2, p.Len())

	visited = 0
	p.Advance(func(*item) bool { visited++; return true })
	assert.Equal(t, 2, visited)
}

func TestPool_KillSkipsLaterPasses(t *testing.T) {
	p := NewPool[*item]()
	p.Add(&item{id: 1})
	p.Add(&item{id: 2})

	assert.True(t, p.Kill(1))
	assert.False(t, p.Kill(1), "already marked")
	assert.False(t, p.Kill(9), "not owned")

	var seen []core.Entity
	p.Advance(func(it *item) bool { seen = append(seen, it.id); return true })
	assert.Equal(t, []core.Entity{2}, seen)
}

func TestPool_DuplicateAddIgnored(t *testing.T) {
	p := NewPool[*item]()
	a := &item{id: 1, life: 1}
	p.Add(a)
	p.Add(&item{id: 1, life: 99})
	got, _ := p.Get(1)
	assert.Same(t, a, got)
	assert.Equal(t, 1, p.Len())
}

func TestPool_ClearRunsHook(t *testing.T) {
	p := NewPool[*item]()
	n := 0
	p.OnRemove(func(*item) { n++ })
	p.Add(&item{id: 1})
	p.Add(&item{id: 2})
	p.Clear()
	assert.Equal(t, 2, n)
	assert.Zero(t, p.Len())
	assert.False(t, p.Has(1))
}
