package network

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
)

// Result is the outcome of one background submission
type Result struct {
	Summary engine.RunSummary
	Rank    int
	Err     error
}

// AsyncSubmitter hands summaries to a Board off the tick; completions are polled, never awaited
type AsyncSubmitter struct {
	board   Board
	timeout time.Duration
	results chan Result

	pending atomic.Int32
	dropped atomic.Int64
}

func NewAsyncSubmitter(board Board, cfg *Config) *AsyncSubmitter {
	return &AsyncSubmitter{
		board:   board,
		timeout: cfg.SubmitTimeout,
		results: make(chan Result, max(1, cfg.ResultQueueSize)),
	}
}

// Submit starts a background submission and returns immediately
func (a *AsyncSubmitter) Submit(s engine.RunSummary) {
	a.pending.Add(1)
	core.Go(func() {
		defer a.pending.Add(-1)

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		rank, err := a.board.Submit(ctx, s)
		if err != nil {
			log.Printf("[scoreboard] submit %s failed: %v", s.RunID, err)
		}
		select {
		case a.results <- Result{Summary: s, Rank: rank, Err: err}:
		default:
			a.dropped.Add(1)
		}
	})
}

// Poll returns a completed submission if one is ready
func (a *AsyncSubmitter) Poll() (Result, bool) {
	select {
	case r := <-a.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Pending is the number of submissions still in flight
func (a *AsyncSubmitter) Pending() int { return int(a.pending.Load()) }

// Dropped counts results discarded because nobody polled
func (a *AsyncSubmitter) Dropped() int64 { return a.dropped.Load() }
