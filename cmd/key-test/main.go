// key-test shows how each key press resolves against the configured key bindings
// and how long the held state lasts. Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/input"
)

const maxLog = 10

var configFlag = flag.String("config", "", "path to TOML config")

func main() {
	flag.Parse()

	cfg, err := config.LoadFromSources(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	table, err := input.LoadKeyConfig(cfg.KeyBindings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "keys: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tracker := input.NewTracker(table, cfg.Input.HoldWindow)
	eventLog := make([]string, 0, maxLog)

	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	// Refresh often enough to watch the hold window expire
	ticker := time.NewTicker(cfg.Input.HoldWindow / 4)
	defer ticker.Stop()

	for {
		draw(screen, eventLog, tracker.Snapshot(time.Now()), cfg.Input.HoldWindow)

		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return
				}
				tracker.HandleEvent(ev, time.Now())
				addLog(formatKeyEvent(ev, table.Lookup(ev)))
			case *tcell.EventResize:
				w, h := ev.Size()
				addLog(fmt.Sprintf("RESIZE: %dx%d", w, h))
				screen.Sync()
			}
		case <-ticker.C:
		}
	}
}

// formatKeyEvent describes a key and the intent it resolves to
func formatKeyEvent(ev *tcell.EventKey, intent input.IntentType) string {
	keyName := ev.Name()
	if ev.Key() == tcell.KeyRune {
		if r := ev.Rune(); r >= 0x20 && r < 0x7f {
			keyName = fmt.Sprintf("'%c'", r)
		} else {
			keyName = fmt.Sprintf("U+%04X", r)
		}
	}
	if intent == input.IntentNone {
		return fmt.Sprintf("KEY: %-12s (unbound)", keyName)
	}
	return fmt.Sprintf("KEY: %-12s -> %s", keyName, intent)
}

func draw(screen tcell.Screen, eventLog []string, snap input.Snapshot, hold time.Duration) {
	w, h := screen.Size()
	bg := tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 30))
	screen.Fill(' ', bg)

	title := bg.Foreground(tcell.NewRGBColor(200, 200, 200)).Bold(true)
	drawText(screen, 1, 0, "Key Test - press bound keys - Ctrl+C to quit", title)

	logStyle := bg.Foreground(tcell.NewRGBColor(180, 180, 180))
	for i, entry := range eventLog {
		y := 2 + i
		if y >= h-3 {
			break
		}
		drawText(screen, 1, y, entry, logStyle)
	}

	held := bg.Foreground(tcell.NewRGBColor(100, 255, 100)).Bold(true)
	idle := bg.Foreground(tcell.NewRGBColor(90, 90, 110))
	x := 1
	for _, s := range []struct {
		name string
		on   bool
	}{
		{"left_up", snap.LeftUp},
		{"left_down", snap.LeftDown},
		{"right_up", snap.RightUp},
		{"right_down", snap.RightDown},
		{"quit", snap.Quit},
	} {
		style := idle
		if s.on {
			style = held
		}
		x = drawText(screen, x, h-2, "["+s.name+"]", style) + 1
	}

	status := fmt.Sprintf("Size: %dx%d | Hold window: %v", w, h, hold)
	drawText(screen, 1, h-1, status, bg.Foreground(tcell.NewRGBColor(140, 140, 160)))

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
