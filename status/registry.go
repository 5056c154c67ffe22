// Package status is the telemetry surface of the simulation
// Systems cache metric pointers once and write to atomics each tick; the HUD reads them
package status

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Well-known metric keys
const (
	MetricCombatHits    = "combat.hits"
	MetricPlayerHits    = "combat.player_hits"
	MetricBulletsKilled = "combat.bullets_destroyed"
	MetricPoolEnemies   = "pool.enemies"
	MetricPoolDaggers   = "pool.daggers"
	MetricPoolStorms    = "pool.storms"
	MetricPoolBullets   = "pool.bullets"
	MetricPoolOrbs      = "pool.orbs"
	MetricPoolBats      = "pool.bats"
	MetricPoolSwings    = "pool.swings"
	MetricGridDesync    = "grid.desync"
	MetricSpawned       = "progression.spawned"
	MetricExpired       = "progression.expired"
	MetricBaseHP        = "progression.base_hp"
	MetricTickNanos     = "tick.nanos"
	MetricEventsDropped = "events.dropped"
)

// AtomicFloat is a float64 gauge stored as its bit pattern; the zero value reads 0
type AtomicFloat struct{ bits atomic.Uint64 }

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines renders every metric as "key=value" in key order, ints first
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return out
}

// Reset zeroes every registered metric, keeping cached pointers valid
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
}
