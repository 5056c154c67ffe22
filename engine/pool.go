package engine

import "github.com/lixenwraith/slime-survivor/core"

// Identified is anything a Pool can own
type Identified interface {
	EntityID() core.Entity
}

// Pool owns the entities of one category in insertion order
// Removal is deferred: Kill and Advance only mark entries, Compact drops them in a single pass
// so indices stay valid while a tick's interactions resolve
type Pool[T Identified] struct {
	items  []T
	index  map[core.Entity]int
	doomed map[core.Entity]struct{}

	// Entities added while Advance runs wait here so they are not advanced that tick
	advancing bool
	pending   []T

	onRemove func(T)
}

func NewPool[T Identified]() *Pool[T] {
	return &Pool[T]{
		items:  make([]T, 0, 64),
		index:  make(map[core.Entity]int),
		doomed: make(map[core.Entity]struct{}),
	}
}

// OnRemove installs the hook run for every entry dropped by Compact or Clear,
// used to revoke index memberships
func (p *Pool[T]) OnRemove(fn func(T)) {
	p.onRemove = fn
}

// Add appends an entity; duplicate ids are ignored
func (p *Pool[T]) Add(item T) {
	id := item.EntityID()
	if _, ok := p.index[id]; ok {
		return
	}
	if p.advancing {
		p.index[id] = -1
		p.pending = append(p.pending, item)
		return
	}
	p.index[id] = len(p.items)
	p.items = append(p.items, item)
}

// Lookup returns the entry for id while it is still owned, doomed or not
func (p *Pool[T]) Lookup(id core.Entity) (T, bool) {
	i, ok := p.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	if i < 0 {
		for _, it := range p.pending {
			if it.EntityID() == id {
				return it, true
			}
		}
		var zero T
		return zero, false
	}
	return p.items[i], true
}

// Get resolves a weak reference: present and not marked for removal
func (p *Pool[T]) Get(id core.Entity) (T, bool) {
	if _, dead := p.doomed[id]; dead {
		var zero T
		return zero, false
	}
	return p.Lookup(id)
}

// Alive reports whether a weak reference still resolves
func (p *Pool[T]) Alive(id core.Entity) bool {
	_, ok := p.Get(id)
	return ok
}

// Has reports whether the pool still owns id, including entries awaiting compaction
func (p *Pool[T]) Has(id core.Entity) bool {
	_, ok := p.index[id]
	return ok
}

// Kill marks id for removal at the next Compact; returns false when not owned or already marked
func (p *Pool[T]) Kill(id core.Entity) bool {
	if _, ok := p.index[id]; !ok {
		return false
	}
	if _, dead := p.doomed[id]; dead {
		return false
	}
	p.doomed[id] = struct{}{}
	return true
}

// Advance runs update on every live entry; entries reporting false are marked for removal
// and returned in pool order. An empty pool returns nil and is left untouched
func (p *Pool[T]) Advance(update func(T) bool) []T {
	if len(p.items) == 0 {
		return nil
	}
	var removed []T
	p.advancing = true
	for _, it := range p.items {
		id := it.EntityID()
		if _, dead := p.doomed[id]; dead {
			continue
		}
		if !update(it) {
			p.doomed[id] = struct{}{}
			removed = append(removed, it)
		}
	}
	p.advancing = false

	for _, it := range p.pending {
		p.index[it.EntityID()] = len(p.items)
		p.items = append(p.items, it)
	}
	clear(p.pending)
	p.pending = p.pending[:0]
	return removed
}

// Compact drops every marked entry in one pass, running the OnRemove hook for each
func (p *Pool[T]) Compact() []T {
	if len(p.doomed) == 0 {
		return nil
	}
	removed := make([]T, 0, len(p.doomed))
	write := 0
	for _, it := range p.items {
		id := it.EntityID()
		if _, dead := p.doomed[id]; dead {
			delete(p.index, id)
			removed = append(removed, it)
			continue
		}
		p.items[write] = it
		p.index[id] = write
		write++
	}
	var zero T
	for i := write; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:write]
	clear(p.doomed)

	if p.onRemove != nil {
		for _, it := range removed {
			p.onRemove(it)
		}
	}
	return removed
}

// Each visits live entries in order until fn returns false
func (p *Pool[T]) Each(fn func(T) bool) {
	for _, it := range p.items {
		if _, dead := p.doomed[it.EntityID()]; dead {
			continue
		}
		if !fn(it) {
			return
		}
	}
}

// Len returns the number of live entries
func (p *Pool[T]) Len() int {
	return len(p.items) - len(p.doomed)
}

// Clear drops everything, running the OnRemove hook for each owned entry
func (p *Pool[T]) Clear() {
	if p.onRemove != nil {
		for _, it := range p.items {
			p.onRemove(it)
		}
	}
	clear(p.items)
	p.items = p.items[:0]
	clear(p.index)
	clear(p.doomed)
	p.pending = p.pending[:0]
}
