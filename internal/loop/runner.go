// Package loop drives a game at a fixed tick rate and publishes its state.
package loop

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/cyberattack/internal/game"
	"github.com/tomz197/cyberattack/internal/input"
)

// Options configures a Runner.
type Options struct {
	TickTime       time.Duration // Wall time per tick; zero runs as fast as possible
	MaxTicks       int           // Stop after this many ticks; zero means no limit
	StopOnGameOver bool
	Script         *input.Script // Optional scripted key timeline
	Logger         *log.Logger   // Defaults to a discarding logger
}

// keyEvent is a key press or release queued for the next tick.
type keyEvent struct {
	key  input.Key
	down bool
}

// Runner owns one game and advances it on a single goroutine. Other
// goroutines feed it input through SendKey and SendCommand and read the
// latest state through Snapshot.
type Runner struct {
	game     *game.Game
	opts     Options
	log      *log.Logger
	id       uuid.UUID
	keys     input.State
	snapshot atomic.Pointer[game.Snapshot]
	ticks    atomic.Int64
	keyCh    chan keyEvent
	cmdCh    chan input.Command
}

// New creates a runner for g and publishes its initial snapshot.
func New(g *game.Game, opts Options) *Runner {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		game:  g,
		opts:  opts,
		log:   logger.With("run", id.String()),
		id:    id,
		keyCh: make(chan keyEvent, 64),
		cmdCh: make(chan input.Command, 16),
	}
	r.snapshot.Store(g.Snapshot())
	return r
}

// ID identifies this run in logs.
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// SendKey queues a key event. Dropped if the queue is full.
func (r *Runner) SendKey(k input.Key, down bool) {
	select {
	case r.keyCh <- keyEvent{key: k, down: down}:
	default:
	}
}

// SendCommand queues a command. Dropped if the queue is full.
func (r *Runner) SendCommand(c input.Command) {
	select {
	case r.cmdCh <- c:
	default:
	}
}

// Snapshot returns the state published after the last tick.
func (r *Runner) Snapshot() *game.Snapshot {
	return r.snapshot.Load()
}

// Ticks returns the number of ticks stepped so far.
func (r *Runner) Ticks() int {
	return int(r.ticks.Load())
}

// Run steps the game until ctx is cancelled, MaxTicks is reached, or the
// game ends with StopOnGameOver set. Only a failed tick is reported as an error.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("run started", "tick_time", r.opts.TickTime, "max_ticks", r.opts.MaxTicks)

	for {
		select {
		case <-ctx.Done():
			r.stopped("cancelled")
			return nil
		default:
		}

		frameStart := time.Now()

		if err := r.Step(); err != nil {
			r.log.Error("tick failed", "err", err)
			return err
		}

		if r.opts.MaxTicks > 0 && r.Ticks() >= r.opts.MaxTicks {
			r.stopped("max ticks")
			return nil
		}
		if r.opts.StopOnGameOver && r.game.GameOver() {
			r.stopped("game over")
			return nil
		}

		if elapsed := time.Since(frameStart); elapsed < r.opts.TickTime {
			select {
			case <-ctx.Done():
			case <-time.After(r.opts.TickTime - elapsed):
			}
		}
	}
}

// Step runs exactly one tick: queued input, scripted input, the game
// update, event logging and snapshot publication.
func (r *Runner) Step() error {
	tick := r.Ticks()

	r.collectInput()
	if r.opts.Script != nil {
		for _, c := range r.opts.Script.Apply(tick, &r.keys) {
			r.apply(c)
		}
	}
	r.game.SetIntent(r.keys.Intent)

	err := r.game.Update()

	r.logEvents()
	r.snapshot.Store(r.game.Snapshot())
	r.ticks.Add(1)

	if err != nil {
		return fmt.Errorf("tick %d: %w", tick, err)
	}
	return nil
}

// collectInput drains every pending key event and command.
func (r *Runner) collectInput() {
	for {
		select {
		case ev := <-r.keyCh:
			var (
				c  input.Command
				ok bool
			)
			if ev.down {
				c, ok = r.keys.Press(ev.key)
			} else {
				c, ok = r.keys.Release(ev.key)
			}
			if ok {
				r.apply(c)
			}
		case c := <-r.cmdCh:
			r.apply(c)
		default:
			return
		}
	}
}

func (r *Runner) apply(c input.Command) {
	r.log.Debug("command", "cmd", c, "phase", r.game.Phase())
	switch c {
	case input.CommandStart:
		r.game.Start()
	case input.CommandPause:
		r.game.TogglePause()
	case input.CommandRestart:
		r.game.Restart()
	case input.CommandMenu:
		r.game.Menu()
		r.keys.Clear()
	}
}

func (r *Runner) logEvents() {
	for _, e := range r.game.Events() {
		kv := []any{"type", e.Type, "frame", e.Frame, "wave", e.Wave, "score", e.Score, "hearts", e.Hearts}
		if e.Detail != "" {
			kv = append(kv, "detail", e.Detail)
		}
		switch e.Type {
		case game.EventPlayerHit, game.EventPowerUpCollected:
			r.log.Debug("event", kv...)
		default:
			r.log.Info("event", kv...)
		}
	}
}

func (r *Runner) stopped(reason string) {
	s := r.Snapshot()
	r.log.Info("run stopped",
		"reason", reason,
		"ticks", r.Ticks(),
		"frame", s.Frame,
		"score", s.Score,
		"wave", s.Wave,
		"hearts", s.Player.Hearts,
	)
}
