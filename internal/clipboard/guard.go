// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/lazypass/lazypass/internal/logger"
)

// DefaultClearDelay is how long a delivered password stays on the clipboard.
const DefaultClearDelay = 10 * time.Second

// Guard delivers text to a Clipboard and schedules its removal.
//
// Every Deliver schedules its own clear. A clear only empties the clipboard
// if it still holds exactly the text that clear was scheduled for, so a
// newer delivery or anything the user copied in between survives. Scheduled
// clears are never cancelled.
type Guard struct {
	board Clipboard
	clock clock.Clock
	delay time.Duration
	log   *logger.Logger

	pending sync.WaitGroup
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock replaces the wall clock, mostly with clock.NewMock in tests.
func WithClock(c clock.Clock) Option {
	return func(g *Guard) {
		g.clock = c
	}
}

// WithLogger sets the logger used to report clear outcomes.
func WithLogger(l *logger.Logger) Option {
	return func(g *Guard) {
		g.log = l
	}
}

// NewGuard returns a Guard that clears after delay. A non-positive delay
// falls back to DefaultClearDelay.
func NewGuard(board Clipboard, delay time.Duration, opts ...Option) *Guard {
	if delay <= 0 {
		delay = DefaultClearDelay
	}
	g := &Guard{
		board: board,
		clock: clock.New(),
		delay: delay,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Delay returns the time a delivered text stays on the clipboard.
func (g *Guard) Delay() time.Duration {
	return g.delay
}

// Available reports whether the clipboard has a usable backend. Clipboards
// that cannot tell are assumed to work.
func (g *Guard) Available() bool {
	if a, ok := g.board.(availability); ok {
		return a.Available()
	}
	return true
}

// Deliver writes text to the clipboard and schedules a conditional clear.
// If the write fails nothing is scheduled.
func (g *Guard) Deliver(text string) error {
	if !g.Available() {
		return &ClipboardError{Op: OpWrite, Err: ErrUnsupported}
	}
	if err := g.board.WriteAll(text); err != nil {
		return &ClipboardError{Op: OpWrite, Err: err}
	}

	g.pending.Add(1)
	g.clock.AfterFunc(g.delay, func() {
		defer g.pending.Done()
		g.clear(text)
	})
	g.log.Debug().Dur("delay", g.delay).Msg("clipboard clear scheduled")
	return nil
}

// Wait blocks until every clear scheduled so far has run.
func (g *Guard) Wait() {
	g.pending.Wait()
}

func (g *Guard) clear(expected string) {
	current, err := g.board.ReadAll()
	if err != nil {
		g.log.Debug().Err(&ClipboardError{Op: OpRead, Err: err}).Msg("clipboard left untouched")
		return
	}
	if current != expected {
		g.log.Debug().Msg("clipboard changed since delivery, left untouched")
		return
	}
	if err = g.board.WriteAll(""); err != nil {
		g.log.Debug().Err(&ClipboardError{Op: OpWrite, Err: err}).Msg("clipboard clear failed")
		return
	}
	g.log.Debug().Msg("clipboard cleared")
}
