package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/input"
	"github.com/lixenwraith/slime-survivor/network"
	"github.com/lixenwraith/slime-survivor/render"
)

// cuePlayer is the audio surface the frontend drives
type cuePlayer interface {
	Handle(events []event.GameEvent)
	ToggleMute() bool
}

// frontend owns everything outside the simulation: input, drawing, audio and the scoreboard
type frontend struct {
	world    *engine.World
	screen   tcell.Screen
	mapper   *input.Mapper
	renderer *render.Renderer
	cues     cuePlayer

	board     network.Board
	netCfg    *network.Config
	submitter *network.AsyncSubmitter
	submitted bool
	scores    chan []engine.RunSummary
}

func newFrontend(w *engine.World, screen tcell.Screen, cues cuePlayer, board network.Board, netCfg *network.Config) *frontend {
	f := &frontend{
		world:    w,
		screen:   screen,
		mapper:   input.NewMapper(nil),
		renderer: render.NewRenderer(screen, w.Config),
		cues:     cues,
		board:    board,
		netCfg:   netCfg,
		scores:   make(chan []engine.RunSummary, 1),
	}
	if board != nil {
		f.submitter = network.NewAsyncSubmitter(board, netCfg)
	}
	return f
}

// handle applies one terminal event; false means quit
func (f *frontend) handle(ev tcell.Event) bool {
	switch f.mapper.HandleEvent(ev) {
	case input.ActionQuit:
		return false
	case input.ActionToggleMute:
		f.renderer.SetMuted(f.cues.ToggleMute())
	case input.ActionRestart:
		if f.world.Session == engine.SessionOver {
			f.restart()
		}
	case input.ActionToggleDebug:
		f.renderer.ToggleDebug()
	case input.ActionResize:
		f.screen.Sync()
	}
	return true
}

// tick advances the simulation one step and presents the result
func (f *frontend) tick() {
	w := f.world
	if w.Session == engine.SessionPlaying {
		p := w.Player
		w.Step(f.mapper.Intent(p.X, p.Y, p.Facing, f.renderer))
	}

	f.pollScoreboard()

	events := w.Events.Consume()
	for _, ev := range events {
		switch ev.Type {
		case event.EventGameOver:
			f.submit()
		case event.EventLeaderboardResult:
			f.showResult(ev.Payload)
		}
	}
	f.cues.Handle(events)

	snap := w.Snapshot()
	f.renderer.Draw(&snap)
}

// submit hands the finished run to the scoreboard once
func (f *frontend) submit() {
	if f.submitter == nil || f.submitted {
		return
	}
	f.submitted = true
	f.submitter.Submit(f.world.Summary())
}

// pollScoreboard turns completed background work into events and score rows
func (f *frontend) pollScoreboard() {
	if f.submitter != nil {
		if res, ok := f.submitter.Poll(); ok {
			f.world.Emit(event.EventLeaderboardResult, &event.LeaderboardPayload{Rank: res.Rank, Err: res.Err})
			f.loadScores()
		}
	}
	select {
	case top := <-f.scores:
		f.renderer.SetScores(top)
	default:
	}
}

func (f *frontend) showResult(payload any) {
	lp, ok := payload.(*event.LeaderboardPayload)
	if !ok {
		return
	}
	if lp.Err != nil {
		f.renderer.SetNotice("scoreboard unavailable")
		return
	}
	f.renderer.SetNotice(fmt.Sprintf("run ranked #%d", lp.Rank))
}

// loadScores reads the top runs in the background
func (f *frontend) loadScores() {
	board, n, timeout := f.board, f.netCfg.TopCount, f.netCfg.SubmitTimeout
	core.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		top, err := board.Top(ctx, n)
		if err != nil {
			log.Printf("[scoreboard] top: %v", err)
			return
		}
		select {
		case f.scores <- top:
		default:
		}
	})
}

// restart begins a fresh run in the same world
func (f *frontend) restart() {
	f.world.Reset()
	f.mapper.Reset()
	f.submitted = false
	f.renderer.SetScores(nil)
	log.Printf("[frontend] restart as run %s", f.world.RunID)
}
