package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/engine/status"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/systems"
)

var (
	configFlag = flag.String("config", "", "path to TOML config (default $VIPONG_CONFIG, then ./vi-pong.toml)")
	debugFlag  = flag.Bool("debug", false, "enable debug logging to the log directory")
	muteFlag   = flag.Bool("mute", false, "start with audio muted")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromSources(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}

	log, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	keys, err := input.LoadKeyConfig(cfg.KeyBindings())
	if err != nil {
		return err
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, log, "VI-PONG CRASHED", r)
		}
	}()

	screen.HideCursor()

	// Audio is optional: without a device the game plays silently
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}
	// -mute keeps the speaker open and silences the master
	sound.SetMuted(*muteFlag)
	log.Info("audio",
		zap.Bool("initialized", sound.IsInitialized()),
		zap.Bool("muted", sound.IsMuted()),
		zap.Float64("volume", cfg.Audio.Volume),
	)

	match := engine.NewMatch(engine.DefaultCourtConfig())
	renderer := render.NewTerminalRenderer(screen, render.Options{
		CenterLine: cfg.Display.CenterLine,
		Monochrome: cfg.Display.Monochrome,
	})
	tracker := input.NewTracker(keys, cfg.Input.HoldWindow)

	game := engine.NewGame(match, renderer, tracker, engine.WithLogger(log))
	game.AddSystem(systems.NewInputSystem())
	game.AddSystem(systems.NewPhysicsSystem())
	game.AddSystem(systems.NewScoreSystem())
	game.RegisterEventHandler(engine.NewLogHandler(log))
	stats := status.NewRegistry()
	game.RegisterEventHandler(engine.NewStatsHandler(stats))
	game.RegisterEventHandler(audio.NewEventHandler(sound))

	events := make(chan tcell.Event, constants.EventChannelSize)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, log, "EVENT POLLER CRASHED", r)
			}
		}()
		defer close(events)

		for {
			ev := screen.PollEvent()
			// Nil on screen finalization
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("match started",
		zap.Float64("court_width", match.Court.Width),
		zap.Float64("court_height", match.Court.Height),
		zap.Int("winning_score", match.Court.WinningScore),
	)

	err = game.Run(ctx, events)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logStats(log, match, stats)
	return err
}

// logStats writes the session counters on exit
func logStats(log *zap.Logger, match *engine.Match, stats *status.Registry) {
	fields := []zap.Field{
		zap.Int("left", match.LeftScore),
		zap.Int("right", match.RightScore),
		zap.Int64("frames", match.Frame),
	}
	stats.Range(func(key string, value int64) {
		fields = append(fields, zap.Int64(key, value))
	})
	log.Info("exiting", fields...)
}

// crash restores the terminal, reports the panic with a stack trace and exits
func crash(screen tcell.Screen, log *zap.Logger, label string, r any) {
	screen.Fini()
	log.Error(label, zap.Any("panic", r), zap.Stack("stack"))
	log.Sync()

	// Print error and stack trace to stderr so it's visible after reset
	fmt.Fprintf(os.Stderr, "\n\x1b[31m%s: %v\x1b[0m\n", label, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}
