package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/status"
)

// DiagnosticsSystem audits the grid against the enemy pool on an interval, repairing what it finds,
// and records the wall time between ticks
type DiagnosticsSystem struct {
	last      time.Time
	tickNanos *atomic.Int64
	dropped   *atomic.Int64
}

func NewDiagnosticsSystem(w *engine.World) *DiagnosticsSystem {
	return &DiagnosticsSystem{
		tickNanos: w.Status.Ints.Get(status.MetricTickNanos),
		dropped:   w.Status.Ints.Get(status.MetricEventsDropped),
	}
}

func (s *DiagnosticsSystem) Name() string  { return "diagnostics" }
func (s *DiagnosticsSystem) Priority() int { return parameter.PriorityDiagnostics }

func (s *DiagnosticsSystem) Update(w *engine.World) {
	now := time.Now()
	if !s.last.IsZero() {
		s.tickNanos.Store(now.Sub(s.last).Nanoseconds())
	}
	s.last = now
	s.dropped.Store(int64(w.Events.Dropped()))

	if w.Clock.Tick()%parameter.GridAuditInterval != 0 {
		return
	}
	if bad := w.ValidateGrid(); len(bad) > 0 {
		for _, id := range bad {
			w.ReportDesync(id)
			w.RepairGrid(id)
		}
		log.Printf("[diagnostics] grid audit: %d misfiled entries at tick %d", len(bad), w.Clock.Tick())
	}
}

func (s *DiagnosticsSystem) Reset(_ *engine.World) {
	s.last = time.Time{}
}
