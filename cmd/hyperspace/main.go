package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hyperspace/config"
	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/core"
	"github.com/lixenwraith/hyperspace/engine"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/input"
	"github.com/lixenwraith/hyperspace/record"
	"github.com/lixenwraith/hyperspace/render"
	"github.com/lixenwraith/hyperspace/spectate"
	"github.com/lixenwraith/hyperspace/status"
	"github.com/lixenwraith/hyperspace/track"
)

var (
	configFlag   = flag.String("config", "", "Tuning and keymap ini file")
	recordFlag   = flag.String("record", defaultRecordPath(), "High score file")
	seedFlag     = flag.Uint64("seed", 0, "Spawn seed (0 = time based)")
	fpsFlag      = flag.Int("fps", 0, "Frame cap override")
	spectateFlag = flag.String("spectate", "", "Serve the spectator feed on addr (e.g. :8080)")
	debugFlag    = flag.Bool("debug", false, "Log to logs/hyperspace.log and show metrics")
	colorFlag    = flag.String("color", "auto", "Exit summary color: auto, always, never")
)

func defaultRecordPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "record.ini"
	}
	return filepath.Join(home, ".hyperspace", "record.ini")
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := applyColorMode(*colorFlag); err != nil {
		fail(2, "%v", err)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fail(1, "Failed to load config: %v", err)
	}
	if *fpsFlag > 0 {
		cfg.Loop.FPS = *fpsFlag
	}

	keys, err := loadKeys(*configFlag)
	if err != nil {
		fail(1, "Failed to load keymap: %v", err)
	}

	keeper := record.NewKeeper(record.NewStore(*recordFlag))

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[game] seed %d", seed)

	// Core wiring
	path := track.Default()
	queue := events.NewEventQueue()
	session := game.NewSession(cfg, path, queue, seed)
	source := input.NewSource(keys, constants.InputHoldWindow)
	wall := engine.NewMonotonicTimeProvider()
	clock := engine.NewPausableClock(wall)
	limiter := engine.NewFrameLimiter(cfg.FrameInterval(), cfg.Loop.MaxDelta)
	metrics := status.NewRegistry()
	loop := engine.NewLoop(session, source, clock, limiter, queue, metrics)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fail(1, "Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fail(1, "Failed to initialize terminal: %v", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	core.SetCrashScreen(screen)

	term := render.NewTerminal(screen, render.Options{
		Path:           path,
		TubeRadius:     cfg.Tunnel.Radius,
		ForwardEpsilon: cfg.Loop.ForwardEpsilon,
		RingStep:       constants.TunnelRingSpacing / path.Length(),
		RingCount:      constants.TunnelRingCount,
		Debug:          *debugFlag,
	}, wall, keeper, metrics)

	loop.RegisterHandler(keeper)
	loop.RegisterHandler(term.Effects())
	loop.AddSink(term)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *spectateFlag != "" {
		hub := spectate.NewHub(metrics, constants.SpectatePublishInterval)
		loop.RegisterHandler(hub)
		loop.AddSink(hub)
		addr := *spectateFlag
		core.Go(func() {
			// Spectating is optional; the game keeps running without it
			if err := hub.Serve(ctx, addr); err != nil {
				log.Printf("[spectate] server stopped: %v", err)
			}
		})
	}

	run(screen, loop, source, clock)

	screen.Fini()
	core.SetCrashScreen(nil)
	cancel()

	if err := keeper.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save record: %v\n", err)
	}
	printSummary(os.Stdout, loop.Snapshot().Run, keeper.Record(), keeper.LastRunWasBest())
}

// loadKeys overlays the config file's [keys] and [special_keys] sections onto the defaults
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	if _, err := os.Stat(path); err != nil {
		return keys, nil
	}
	override, err := input.LoadKeyConfig(path)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}

// run drives the loop until quit: terminal events on one channel, driver ticks on another
func run(screen tcell.Screen, loop *engine.Loop, source *input.Source, clock *engine.PausableClock) {
	ticker := time.NewTicker(constants.DriverTickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := source.HandleKey(ev, clock.RealTime())
				if loop.HandleAction(action) {
					log.Printf("[loop] quit requested")
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			loop.Frame(clock.RealTime())
		}
	}
}
