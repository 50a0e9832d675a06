package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/input"
)

func TestFormatKeyEvent(t *testing.T) {
	table := input.DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"bound rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "'w'"},
		{"bound special", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "right_up"},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), "(unbound)"},
		{"quit", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatKeyEvent(tt.ev, table.Lookup(tt.ev))
			if !strings.Contains(got, tt.want) {
				t.Errorf("Expected %q in %q", tt.want, got)
			}
		})
	}
}

func TestDrawShowsHeldState(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	draw(screen, []string{"KEY: 'w' -> left_up"}, input.Snapshot{LeftUp: true}, 0)

	r, _, style, _ := screen.GetContent(2, 22)
	if r != 'l' {
		t.Fatalf("Expected held indicator text at (2,22), got %q", r)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected held indicator in bold")
	}

	r, _, _, _ = screen.GetContent(1, 2)
	if r != 'K' {
		t.Errorf("Expected event log on row 2, got %q", r)
	}
}
