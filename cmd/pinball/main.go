package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pinball/audio"
	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/input"
	"github.com/lixenwraith/pinball/level"
	"github.com/lixenwraith/pinball/parameter"
	"github.com/lixenwraith/pinball/render"
	"github.com/lixenwraith/pinball/replay"
	"github.com/lixenwraith/pinball/status"
)

var (
	levelFlag     = flag.String("level", "", "Level TOML file (default: built-in table)")
	keymapFlag    = flag.String("keymap", "", "Keymap TOML file overriding the default bindings")
	speedFlag     = flag.Float64("speed", 0, "Simulation speed multiplier (0 keeps the level's value)")
	debugFlag     = flag.Bool("debug", false, "Write logs/pinball.log and show contact points")
	statsFlag     = flag.Bool("stats", false, "Show the metrics overlay")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	recordFlag    = flag.String("record", "", "Record input to a replay file")
	replayFlag    = flag.String("replay", "", "Play back a replay file")
	dumpLevelFlag = flag.Bool("dump-level", false, "Print the built-in level as TOML and exit")
)

func main() {
	flag.Parse()

	if *dumpLevelFlag {
		if err := level.Default().Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "dump level: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	layout := level.Default()
	if *levelFlag != "" {
		l, err := level.Load(*levelFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
			os.Exit(1)
		}
		layout = l
	}
	cfg := layout.EngineConfig()
	if *speedFlag > 0 {
		cfg.SpeedMultiplier = *speedFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		data, err := os.ReadFile(*keymapFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read keymap: %v\n", err)
			os.Exit(1)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
			os.Exit(1)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	var player *replay.Player
	if *replayFlag != "" {
		rp, err := replay.LoadFile(*replayFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load replay: %v\n", err)
			os.Exit(1)
		}
		if rp.Header.Level != layout.Name {
			log.Printf("replay %s was recorded on level %q, playing on %q", rp.Header.Session, rp.Header.Level, layout.Name)
		}
		player = replay.NewPlayer(rp)
	}

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(layout.Name)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	stats := status.NewRegistry()
	world := engine.NewWorld(cfg, layout.Build(), stats)

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	renderer := render.NewRenderer(screen)
	renderer.Title = layout.Name
	renderer.ShowDebug = *debugFlag
	renderer.ShowStats = *statsFlag

	latch := input.NewLatch(engine.SystemClock{})
	timer := engine.NewFrameTimer(engine.SystemClock{})

	log.Printf("level %q loaded: %d colliders, speed x%.2f", layout.Name, len(world.Colliders()), cfg.SpeedMultiplier)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := keys.Lookup(ev)
				switch action {
				case input.ActionNone:
				case input.ActionQuit:
					saveRecording(recorder, *recordFlag)
					return
				case input.ActionToggleDebug:
					renderer.ShowDebug = !renderer.ShowDebug
				case input.ActionToggleStats:
					renderer.ShowStats = !renderer.ShowStats
				case input.ActionToggleMute:
					log.Printf("sound muted: %v", sound.ToggleMute())
				default:
					if c, ok := action.Control(); ok && (player == nil || player.Done()) {
						latch.Press(c)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			elapsed := timer.Elapsed()
			var in engine.InputState
			if player != nil && !player.Done() {
				elapsed, in, _ = player.Next()
			} else {
				in = latch.Sample()
				if recorder != nil {
					recorder.Record(elapsed, in)
				}
			}

			world.Tick(elapsed, in)

			events := world.DrainEvents()
			sound.HandleEvents(events)
			for _, e := range events {
				switch e.Type {
				case engine.EventBallLost, engine.EventGameOver, engine.EventFullReset:
					log.Printf("%s: score %.0f, lives %d", e.Type, world.Score(), world.Lives())
				}
			}

			renderer.Draw(world)
			world.AgeDebugPoints()
		}
	}
}

// saveRecording writes the recorded session when recording was requested
func saveRecording(rec *replay.Recorder, path string) {
	if rec == nil {
		return
	}
	if err := rec.Replay().SaveFile(path); err != nil {
		log.Printf("save replay: %v", err)
		return
	}
	log.Printf("replay saved to %s: %d frames", path, rec.Len())
}
