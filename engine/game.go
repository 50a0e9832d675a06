package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/input"
)

// Renderer draws the match onto its render target
type Renderer interface {
	// Render draws the full frame, including the winner banner in PhaseWon
	Render(m *Match)

	// Resize adapts to new terminal dimensions
	Resize(width, height int)
}

// Game is the host loop: it owns the match, the systems, the render target and the input tracker
type Game struct {
	match    *Match
	systems  []System
	renderer Renderer
	input    *input.Tracker
	clock    TimeProvider
	events   *EventQueue
	router   *EventRouter
	log      *zap.Logger

	frameInterval time.Duration
	winPause      time.Duration
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger, default is a no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithTimeProvider replaces the monotonic clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) { g.clock = tp }
}

// WithWinPause overrides the winner banner duration
func WithWinPause(d time.Duration) Option {
	return func(g *Game) { g.winPause = d }
}

// NewGame wires a loop around the match
func NewGame(match *Match, renderer Renderer, tracker *input.Tracker, opts ...Option) *Game {
	events := NewEventQueue(constants.EventQueueSize)
	g := &Game{
		match:         match,
		renderer:      renderer,
		input:         tracker,
		clock:         NewMonotonicTimeProvider(),
		events:        events,
		router:        NewEventRouter(events),
		log:           zap.NewNop(),
		frameInterval: constants.FrameUpdateInterval,
		winPause:      constants.WinPauseDuration,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddSystem appends a system; systems run in the order added
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
}

// RegisterEventHandler subscribes a handler to its event types
func (g *Game) RegisterEventHandler(h EventHandler) {
	g.router.Register(h)
}

// Match returns the owned match
func (g *Game) Match() *Match {
	return g.match
}

// Tick runs one frame: input snapshot, systems, event dispatch, win handling, render.
// Returns false when quit was requested.
func (g *Game) Tick() bool {
	if g.input.QuitRequested() {
		return false
	}
	snap := g.input.Snapshot(g.clock.Now())

	g.match.Frame++

	if g.match.Phase == PhasePlaying {
		tc := &TickContext{
			Match:  g.match,
			Input:  snap,
			Events: g.events,
		}
		for _, s := range g.systems {
			s.Update(tc)
		}
	}
	g.router.DispatchAll(g.match)

	if g.match.Phase == PhaseWon {
		g.finishMatch()
	}

	g.renderer.Render(g.match)
	return true
}

// finishMatch shows the banner, blocks for the win pause, then resets everything
func (g *Game) finishMatch() {
	g.log.Info("match won",
		zap.Stringer("winner", g.match.Winner),
		zap.Int("left", g.match.LeftScore),
		zap.Int("right", g.match.RightScore),
		zap.Int64("frame", g.match.Frame),
	)

	g.renderer.Render(g.match)
	g.clock.Sleep(g.winPause)

	g.match.Reset()
	g.input.Release()

	g.events.Push(GameEvent{Type: EventMatchReset, Frame: g.match.Frame})
	g.router.DispatchAll(g.match)
}

// Run drives Tick at the fixed frame rate until quit, channel close or context cancellation.
// Terminal events are applied as they arrive; quit ends the loop immediately.
func (g *Game) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	g.renderer.Render(g.match)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				w, h := resize.Size()
				g.renderer.Resize(w, h)
				g.renderer.Render(g.match)
				continue
			}
			if g.input.HandleEvent(ev, g.clock.Now()) {
				g.log.Debug("quit requested", zap.Int64("frame", g.match.Frame))
				return nil
			}

		case <-ticker.C:
			if !g.Tick() {
				return nil
			}
		}
	}
}
