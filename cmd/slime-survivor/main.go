package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-survivor/audio"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/core"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/network"
	"github.com/lixenwraith/slime-survivor/system"
)

func defaultName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func main() {
	configPath := flag.String("config", "", "TOML file overlaying the default tuning")
	logPath := flag.String("log", "slime-survivor.log", "log file, empty to discard")
	seed := flag.Uint64("seed", 0, "simulation seed, 0 picks one from the clock")
	name := flag.String("name", defaultName(), "name recorded on the scoreboard")
	scoresPath := flag.String("scores", "slime-survivor.scores", "local scoreboard file, empty to disable")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	w, err := engine.NewWorld(cfg, *seed, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := system.Install(w); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to install systems: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[main] run %s seed %d", w.RunID, *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashHook(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	cues := audio.NewCuePlayer(*mute)
	if err := cues.Initialize(); err != nil {
		log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
	}
	defer cues.Cleanup()

	var board network.Board
	netCfg := network.DefaultConfig(*scoresPath)
	if netCfg.Path != "" {
		board = network.NewFileBoard(netCfg.Path)
	}

	f := newFrontend(w, screen, cues, board, netCfg)
	f.renderer.SetMuted(*mute)
	run(f, cfg.Tick.Rate)
}

// run drives the fixed-rate tick loop until the player quits
func run(f *frontend, rate int) {
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev := <-events:
			if !f.handle(ev) {
				return
			}
		case <-ticker.C:
			f.tick()
		}
	}
}
